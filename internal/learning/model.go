// Package learning provides the vocabulary domain models and their storage.
package learning

import "time"

// DefaultMemoryScore is the score assumed for a word that has never been reviewed.
const DefaultMemoryScore = 50

// QuestionType is the kind of exercise that produced a review.
type QuestionType string

const (
	QuestionTypeFlashcard      QuestionType = "flashcard"
	QuestionTypeMultipleChoice QuestionType = "multiple-choice"
	QuestionTypeTrueFalse      QuestionType = "true-false"
	QuestionTypeWrite          QuestionType = "write"
	QuestionTypeMatching       QuestionType = "matching"
)

// SessionType is the learning mode recorded in the session log.
type SessionType string

const (
	SessionTypeFlashcard      SessionType = "flashcard"
	SessionTypeMultipleChoice SessionType = "multiple_choice"
	SessionTypeWrite          SessionType = "write"
	SessionTypeMatching       SessionType = "matching"
	SessionTypeTest           SessionType = "test"
)

// SessionTypes lists every valid SessionType.
var SessionTypes = []SessionType{
	SessionTypeFlashcard,
	SessionTypeMultipleChoice,
	SessionTypeWrite,
	SessionTypeMatching,
	SessionTypeTest,
}

// Word is a single vocabulary entry of a set.
type Word struct {
	ID              string    `db:"id" yaml:"id" validate:"required"`
	SetID           string    `db:"set_id" yaml:"-"`
	Word            string    `db:"word" yaml:"word" validate:"required"`
	Definition      string    `db:"definition" yaml:"definition" validate:"required"`
	ExampleSentence *string   `db:"example_sentence" yaml:"example,omitempty"`
	CreatedAt       time.Time `db:"created_at" yaml:"-"`
}

// VocabSet groups words that are studied together.
type VocabSet struct {
	ID          string    `db:"id"`
	UserID      string    `db:"user_id"`
	FolderID    *string   `db:"folder_id"`
	Name        string    `db:"name"`
	Description *string   `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// WordProgress is the memory state of one word for one user.
// ReviewCount is always CorrectCount + IncorrectCount.
type WordProgress struct {
	UserID         string     `db:"user_id"`
	WordID         string     `db:"word_id"`
	MemoryScore    int        `db:"memory_score"`
	NextReviewDate time.Time  `db:"next_review_date"`
	LastReviewed   *time.Time `db:"last_reviewed"`
	ReviewCount    int        `db:"review_count"`
	CorrectCount   int        `db:"correct_count"`
	IncorrectCount int        `db:"incorrect_count"`
}

// Valid reports whether the row satisfies the score and counter invariants.
func (p WordProgress) Valid() bool {
	if p.MemoryScore < 0 || p.MemoryScore > 100 {
		return false
	}
	if p.CorrectCount < 0 || p.IncorrectCount < 0 {
		return false
	}
	return p.ReviewCount == p.CorrectCount+p.IncorrectCount
}

// Sanitize returns nil for a missing or malformed row, so that callers treat
// the word as unstudied.
func Sanitize(p *WordProgress) *WordProgress {
	if p == nil || !p.Valid() {
		return nil
	}
	return p
}

// WordWithProgress pairs a word with its progress, which is nil when unstudied.
type WordWithProgress struct {
	Word     Word
	Progress *WordProgress
}

// LearningSession is one completed learning activity on a set.
type LearningSession struct {
	ID          string      `db:"id"`
	UserID      string      `db:"user_id"`
	SetID       string      `db:"set_id"`
	SessionType SessionType `db:"session_type"`
	Score       *int        `db:"score"`
	CompletedAt time.Time   `db:"completed_at"`
}

// UserStats holds the per-user activity counters.
type UserStats struct {
	UserID            string     `db:"user_id"`
	TotalWordsLearned int        `db:"total_words_learned"`
	CurrentStreak     int        `db:"current_streak"`
	LongestStreak     int        `db:"longest_streak"`
	LastActivityDate  *time.Time `db:"last_activity_date"`
}
