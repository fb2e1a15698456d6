// Package srs implements the memory-score spaced repetition model.
//
// Memory score bands:
//   - 85-100: mastered, review in 7 days
//   - 70-84: strong, review in 3 days
//   - 50-69: learning, review in 1 day
//   - 0-49: needs work, review in 4 hours
package srs

import (
	"math"
	"time"

	"github.com/kvgkvg/MEnglish/internal/learning"
)

const (
	MasteredThreshold = 85
	StrongThreshold   = 70
	LearningThreshold = 50

	DefaultDifficulty = 0.5
)

// Band is the classification of a memory score.
type Band string

const (
	BandMastered  Band = "mastered"
	BandStrong    Band = "strong"
	BandLearning  Band = "learning"
	BandNeedsWork Band = "needs-work"
)

// BandOf returns the band a score falls into.
func BandOf(score int) Band {
	switch {
	case score >= MasteredThreshold:
		return BandMastered
	case score >= StrongThreshold:
		return BandStrong
	case score >= LearningThreshold:
		return BandLearning
	default:
		return BandNeedsWork
	}
}

// ReviewInterval returns how long after a review a word with score is due again.
func ReviewInterval(score int) time.Duration {
	switch BandOf(score) {
	case BandMastered:
		return 7 * 24 * time.Hour
	case BandStrong:
		return 3 * 24 * time.Hour
	case BandLearning:
		return 24 * time.Hour
	default:
		return 4 * time.Hour
	}
}

// ReviewContext describes how an answer was given.
// Zero values mean the information is unavailable.
type ReviewContext struct {
	QuestionType     learning.QuestionType
	ResponseTimeMs   int64
	PreviousAttempts int
}

// CalculateDifficulty weighs how diagnostic a review was, in [0, 1].
func CalculateDifficulty(c ReviewContext) float64 {
	difficulty := DefaultDifficulty
	switch c.QuestionType {
	case learning.QuestionTypeWrite:
		difficulty = 0.8
	case learning.QuestionTypeMultipleChoice:
		difficulty = 0.3
	case learning.QuestionTypeTrueFalse:
		difficulty = 0.2
	}

	if c.ResponseTimeMs > 0 {
		if c.ResponseTimeMs < 3000 {
			difficulty -= 0.1
		} else if c.ResponseTimeMs > 10000 {
			difficulty += 0.1
		}
	}

	if c.PreviousAttempts > 0 {
		difficulty -= 0.1 * float64(c.PreviousAttempts)
	}

	return math.Max(0, math.Min(1, difficulty))
}

// CalculateMemoryScore returns the score after one review.
// A correct answer gains 15-25 points and a wrong one loses 10-20; harder reviews gain more and lose less.
func CalculateMemoryScore(current int, wasCorrect bool, difficulty float64) int {
	difficulty = math.Max(0, math.Min(1, difficulty))

	score := math.Max(0, math.Min(100, float64(current)))
	if wasCorrect {
		score = math.Min(100, score+15+difficulty*10)
	} else {
		score = math.Max(0, score-(20-difficulty*10))
	}
	return int(math.Round(score))
}

// CalculateNextReviewDate returns when a word with score is due, counted from now.
func CalculateNextReviewDate(score int, now time.Time) time.Time {
	switch BandOf(score) {
	case BandMastered:
		return now.AddDate(0, 0, 7)
	case BandStrong:
		return now.AddDate(0, 0, 3)
	case BandLearning:
		return now.AddDate(0, 0, 1)
	default:
		return now.Add(4 * time.Hour)
	}
}
