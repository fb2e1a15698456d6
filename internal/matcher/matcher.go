// Package matcher grades free-text answers with typo tolerance.
package matcher

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

const (
	// CloseThreshold is the minimum similarity accepted as a typo of the correct answer.
	CloseThreshold = 85.0
	// HintThreshold is the minimum similarity worth a "did you mean" hint.
	HintThreshold = 70.0
)

// Feedback classifies how close an answer was.
type Feedback string

const (
	FeedbackExact Feedback = "exact"
	FeedbackClose Feedback = "close"
	FeedbackWrong Feedback = "wrong"
)

// Result is the verdict for one answer.
type Result struct {
	IsCorrect bool
	// Similarity is a percentage in [0, 100].
	Similarity float64
	Feedback   Feedback
	Message    string
}

// Match compares userAnswer with correctAnswer after normalization.
// Answers within CloseThreshold similarity are accepted as typos.
func Match(userAnswer, correctAnswer string) Result {
	user := Normalize(userAnswer)
	correct := Normalize(correctAnswer)

	if user == correct {
		return Result{
			IsCorrect:  true,
			Similarity: 100,
			Feedback:   FeedbackExact,
			Message:    "Perfect! That's exactly right.",
		}
	}

	similarity := Similarity(user, correct)
	if similarity >= CloseThreshold {
		return Result{
			IsCorrect:  true,
			Similarity: similarity,
			Feedback:   FeedbackClose,
			Message:    fmt.Sprintf("Close enough! You had a minor typo. The correct spelling is %q.", correctAnswer),
		}
	}

	return Result{
		IsCorrect:  false,
		Similarity: similarity,
		Feedback:   FeedbackWrong,
		Message:    fmt.Sprintf("Not quite. The correct answer is %q.", correctAnswer),
	}
}

// HasAcceptableTypos reports whether a rejected answer is close enough to hint at the correct one.
// It never changes the verdict of Match.
func HasAcceptableTypos(userAnswer, correctAnswer string) bool {
	user := Normalize(userAnswer)
	correct := Normalize(correctAnswer)
	if user == correct {
		return false
	}

	similarity := Similarity(user, correct)
	return similarity >= HintThreshold && similarity < CloseThreshold
}

// Normalize lowercases s, trims it and collapses whitespace runs into one space.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// Similarity returns 100 * (maxLen - distance) / maxLen for the two strings as given.
// Lengths are counted in runes.
func Similarity(a, b string) float64 {
	maxLen := max(len([]rune(a)), len([]rune(b)))
	if maxLen == 0 {
		return 100
	}
	return float64(maxLen-Distance(a, b)) / float64(maxLen) * 100
}

// Distance returns the Levenshtein edit distance between a and b, in runes.
func Distance(a, b string) int {
	return levenshtein.ComputeDistance(a, b)
}
