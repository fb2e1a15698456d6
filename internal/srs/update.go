package srs

import (
	"errors"
	"fmt"
	"time"

	"github.com/kvgkvg/MEnglish/internal/learning"
)

// ErrDuplicateWord is returned when a batch reviews the same word twice.
var ErrDuplicateWord = errors.New("srs: word reviewed more than once in a batch")

// ReviewResult is the outcome of one review.
// Build it with NewReviewResult or ReviewEvent.Result; a literal without
// Difficulty scores the review as trivially easy.
type ReviewResult struct {
	WasCorrect bool
	// Difficulty is in [0, 1].
	Difficulty float64
}

// NewReviewResult returns a result at DefaultDifficulty.
func NewReviewResult(wasCorrect bool) ReviewResult {
	return ReviewResult{WasCorrect: wasCorrect, Difficulty: DefaultDifficulty}
}

// UpdatedProgress is the memory state produced by a review.
type UpdatedProgress struct {
	MemoryScore    int
	NextReviewDate time.Time
	ReviewCount    int
	CorrectCount   int
	IncorrectCount int
	LastReviewed   time.Time
}

// WordProgress returns the record to persist for userID and wordID.
func (u UpdatedProgress) WordProgress(userID, wordID string) learning.WordProgress {
	lastReviewed := u.LastReviewed
	return learning.WordProgress{
		UserID:         userID,
		WordID:         wordID,
		MemoryScore:    u.MemoryScore,
		NextReviewDate: u.NextReviewDate,
		LastReviewed:   &lastReviewed,
		ReviewCount:    u.ReviewCount,
		CorrectCount:   u.CorrectCount,
		IncorrectCount: u.IncorrectCount,
	}
}

// UpdateLearningProgress applies one review to current, which is nil for an unseen word.
// Malformed rows are treated as unseen.
func UpdateLearningProgress(current *learning.WordProgress, result ReviewResult, now time.Time) UpdatedProgress {
	current = learning.Sanitize(current)

	score := learning.DefaultMemoryScore
	var reviewCount, correctCount, incorrectCount int
	if current != nil {
		score = current.MemoryScore
		reviewCount = current.ReviewCount
		correctCount = current.CorrectCount
		incorrectCount = current.IncorrectCount
	}

	reviewCount++
	if result.WasCorrect {
		correctCount++
	} else {
		incorrectCount++
	}

	memoryScore := CalculateMemoryScore(score, result.WasCorrect, result.Difficulty)
	return UpdatedProgress{
		MemoryScore:    memoryScore,
		NextReviewDate: CalculateNextReviewDate(memoryScore, now),
		ReviewCount:    reviewCount,
		CorrectCount:   correctCount,
		IncorrectCount: incorrectCount,
		LastReviewed:   now,
	}
}

// ReviewEvent is one graded answer about a word.
type ReviewEvent struct {
	WordID     string
	WasCorrect bool
	ReviewContext
}

// Result converts the event into a ReviewResult with its derived difficulty.
func (e ReviewEvent) Result() ReviewResult {
	return ReviewResult{
		WasCorrect: e.WasCorrect,
		Difficulty: CalculateDifficulty(e.ReviewContext),
	}
}

// UpdateBatch applies each event to the current progress of its word.
// Words are independent, so the output follows the order of events.
func UpdateBatch(userID string, events []ReviewEvent, current map[string]learning.WordProgress, now time.Time) ([]learning.WordProgress, error) {
	if err := ValidateBatch(events); err != nil {
		return nil, err
	}

	updated := make([]learning.WordProgress, 0, len(events))
	for _, e := range events {
		var progress *learning.WordProgress
		if p, ok := current[e.WordID]; ok {
			progress = &p
		}
		updated = append(updated, UpdateLearningProgress(progress, e.Result(), now).WordProgress(userID, e.WordID))
	}
	return updated, nil
}

// ValidateBatch checks that no word is reviewed twice.
func ValidateBatch(events []ReviewEvent) error {
	seen := make(map[string]struct{}, len(events))
	for _, e := range events {
		if _, ok := seen[e.WordID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateWord, e.WordID)
		}
		seen[e.WordID] = struct{}{}
	}
	return nil
}

// WordIDs returns the word of every event, in order.
func WordIDs(events []ReviewEvent) []string {
	ids := make([]string, len(events))
	for i, e := range events {
		ids[i] = e.WordID
	}
	return ids
}
