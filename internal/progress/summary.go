package progress

import (
	"sort"
	"time"

	"github.com/kvgkvg/MEnglish/internal/learning"
	"github.com/kvgkvg/MEnglish/internal/srs"
)

// SetReviewSummary is the review status of one set, derived from its words.
type SetReviewSummary struct {
	SetID         string
	Name          string
	WordCount     int
	StudiedCount  int
	MasteredCount int
	MemoryScore   int
	// NextReviewDate is nil for a set without words. Such a set is still due.
	NextReviewDate *time.Time
	IsDue          bool
	Level          Mastery
}

// Summarize builds the summary of a set at now.
// Any unstudied word makes the whole set due now, as does having no words at all.
func Summarize(setID string, words []learning.WordWithProgress, now time.Time) SetReviewSummary {
	summary := SetReviewSummary{
		SetID:     setID,
		WordCount: len(words),
	}

	progresses := make([]*learning.WordProgress, len(words))
	hasUnstudied := false
	for i, w := range words {
		p := learning.Sanitize(w.Progress)
		progresses[i] = p
		if p == nil {
			hasUnstudied = true
			continue
		}
		summary.StudiedCount++
		if p.MemoryScore >= srs.MasteredThreshold {
			summary.MasteredCount++
		}
	}

	summary.MemoryScore = SetMemoryScore(progresses)
	summary.Level = MasteryLevel(summary.MemoryScore)

	if hasUnstudied {
		summary.NextReviewDate = &now
	} else {
		summary.NextReviewDate = SetNextReviewDate(progresses, now)
	}
	summary.IsDue = summary.NextReviewDate == nil || !now.Before(*summary.NextReviewDate)
	return summary
}

// SummarizeSets summarizes every set, keeping the order of sets.
// wordsBySet is keyed by set ID; a set missing from it has no words.
func SummarizeSets(sets []learning.VocabSet, wordsBySet map[string][]learning.WordWithProgress, now time.Time) []SetReviewSummary {
	summaries := make([]SetReviewSummary, 0, len(sets))
	for _, set := range sets {
		summary := Summarize(set.ID, wordsBySet[set.ID], now)
		summary.Name = set.Name
		summaries = append(summaries, summary)
	}
	return summaries
}

// DueSets returns the summaries that need review.
func DueSets(summaries []SetReviewSummary) []SetReviewSummary {
	due := make([]SetReviewSummary, 0, len(summaries))
	for _, s := range summaries {
		if s.IsDue {
			due = append(due, s)
		}
	}
	return due
}

// DayReview is the sets falling due on one calendar day.
type DayReview struct {
	// Date is formatted as 2006-01-02 in the location of the due dates.
	Date      string
	Sets      []SetReviewSummary
	WordCount int
}

// ReviewForecast groups sets by the day they fall due, earliest day first.
// Sets without a due date are left out.
func ReviewForecast(summaries []SetReviewSummary) []DayReview {
	days := make(map[string]*DayReview)
	for _, s := range summaries {
		if s.NextReviewDate == nil {
			continue
		}
		key := s.NextReviewDate.Format(time.DateOnly)
		day, ok := days[key]
		if !ok {
			day = &DayReview{Date: key}
			days[key] = day
		}
		day.Sets = append(day.Sets, s)
		day.WordCount += s.WordCount
	}

	forecast := make([]DayReview, 0, len(days))
	for _, day := range days {
		forecast = append(forecast, *day)
	}
	sort.Slice(forecast, func(i, j int) bool {
		return forecast[i].Date < forecast[j].Date
	})
	return forecast
}
