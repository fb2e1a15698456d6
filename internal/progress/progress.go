// Package progress aggregates per-word memory state into word, set and multi-set views.
package progress

import (
	"math"
	"time"

	"github.com/kvgkvg/MEnglish/internal/learning"
	"github.com/kvgkvg/MEnglish/internal/srs"
)

// IsDueForReview reports whether a word needs review at now.
// A word without progress is always due.
func IsDueForReview(p *learning.WordProgress, now time.Time) bool {
	p = learning.Sanitize(p)
	if p == nil {
		return true
	}
	return !now.Before(p.NextReviewDate)
}

// WordsNeedingReview returns the IDs of the due words, in input order.
func WordsNeedingReview(words []learning.WordWithProgress, now time.Time) []string {
	ids := make([]string, 0, len(words))
	for _, w := range words {
		if IsDueForReview(w.Progress, now) {
			ids = append(ids, w.Word.ID)
		}
	}
	return ids
}

// SetMemoryScore averages the scores of a set, counting unstudied words as the default score.
func SetMemoryScore(progresses []*learning.WordProgress) int {
	if len(progresses) == 0 {
		return 0
	}

	total := 0
	for _, p := range progresses {
		if p = learning.Sanitize(p); p != nil {
			total += p.MemoryScore
		} else {
			total += learning.DefaultMemoryScore
		}
	}
	return int(math.Round(float64(total) / float64(len(progresses))))
}

// RetentionRate is the percentage of correct reviews, 0 for an unreviewed word.
func RetentionRate(p *learning.WordProgress) int {
	p = learning.Sanitize(p)
	if p == nil || p.ReviewCount == 0 {
		return 0
	}
	return int(math.Round(float64(p.CorrectCount) / float64(p.ReviewCount) * 100))
}

// Mastery is the display classification of a memory score.
type Mastery struct {
	Level srs.Band
	Label string
	Color string
}

// MasteryLevel classifies score using the memory model bands.
func MasteryLevel(score int) Mastery {
	switch level := srs.BandOf(score); level {
	case srs.BandMastered:
		return Mastery{Level: level, Label: "Mastered", Color: "green"}
	case srs.BandStrong:
		return Mastery{Level: level, Label: "Strong", Color: "blue"}
	case srs.BandLearning:
		return Mastery{Level: level, Label: "Learning", Color: "yellow"}
	default:
		return Mastery{Level: level, Label: "Needs Work", Color: "red"}
	}
}

// ReviewInterval describes when a word with score comes back.
func ReviewInterval(score int) string {
	switch srs.BandOf(score) {
	case srs.BandMastered:
		return "Review in 7 days"
	case srs.BandStrong:
		return "Review in 3 days"
	case srs.BandLearning:
		return "Review tomorrow"
	default:
		return "Review today"
	}
}

// SetNextReviewDate returns the earliest due date among the studied words.
// It returns now when no word is studied yet and nil for an empty set.
func SetNextReviewDate(progresses []*learning.WordProgress, now time.Time) *time.Time {
	if len(progresses) == 0 {
		return nil
	}

	var earliest *time.Time
	for _, p := range progresses {
		if p = learning.Sanitize(p); p == nil {
			continue
		}
		if earliest == nil || p.NextReviewDate.Before(*earliest) {
			next := p.NextReviewDate
			earliest = &next
		}
	}
	if earliest == nil {
		return &now
	}
	return earliest
}
