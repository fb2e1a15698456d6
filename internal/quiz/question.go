// Package quiz builds mixed-format vocabulary tests and grades the answers.
package quiz

import (
	"strings"

	"github.com/kvgkvg/MEnglish/internal/learning"
)

// Word is a quiz input. It carries no knowledge of sets or users.
type Word struct {
	ID         string
	Word       string
	Definition string
}

// FromLearningWords converts stored words into quiz words.
func FromLearningWords(words []learning.Word) []Word {
	result := make([]Word, len(words))
	for i, w := range words {
		result[i] = Word{ID: w.ID, Word: w.Word, Definition: w.Definition}
	}
	return result
}

// Question is one of *TrueFalseQuestion, *MultipleChoiceQuestion,
// *WriteQuestion or *MatchingQuestion.
type Question interface {
	ID() string
	Type() learning.QuestionType
	// WordIDs returns the words the question is about.
	WordIDs() []string

	question()
}

// TrueFalseQuestion asks whether Definition belongs to Word.
type TrueFalseQuestion struct {
	WordID     string
	Word       string
	Definition string
	IsCorrect  bool
	// CorrectDefinition is set when Definition was taken from another word.
	CorrectDefinition string
}

func (q *TrueFalseQuestion) ID() string                  { return "tf-" + q.WordID }
func (q *TrueFalseQuestion) Type() learning.QuestionType { return learning.QuestionTypeTrueFalse }
func (q *TrueFalseQuestion) WordIDs() []string           { return []string{q.WordID} }
func (q *TrueFalseQuestion) question()                   {}

// MultipleChoiceQuestion asks for the definition of Word among four Options.
type MultipleChoiceQuestion struct {
	WordID        string
	Word          string
	Options       []string
	CorrectAnswer string
}

func (q *MultipleChoiceQuestion) ID() string { return "mc-" + q.WordID }
func (q *MultipleChoiceQuestion) Type() learning.QuestionType {
	return learning.QuestionTypeMultipleChoice
}
func (q *MultipleChoiceQuestion) WordIDs() []string { return []string{q.WordID} }
func (q *MultipleChoiceQuestion) question()         {}

// WriteQuestion shows a definition and expects the word to be typed.
type WriteQuestion struct {
	WordID        string
	Definition    string
	CorrectAnswer string
}

func (q *WriteQuestion) ID() string                  { return "write-" + q.WordID }
func (q *WriteQuestion) Type() learning.QuestionType { return learning.QuestionTypeWrite }
func (q *WriteQuestion) WordIDs() []string           { return []string{q.WordID} }
func (q *WriteQuestion) question()                   {}

// MatchingPair is one word of a matching group with its true definition.
type MatchingPair struct {
	WordID     string
	Word       string
	Definition string
}

// MatchingQuestion asks to assign each definition of the group to its word.
type MatchingQuestion struct {
	Pairs []MatchingPair
}

func (q *MatchingQuestion) ID() string {
	return "match-" + strings.Join(q.WordIDs(), "-")
}
func (q *MatchingQuestion) Type() learning.QuestionType { return learning.QuestionTypeMatching }
func (q *MatchingQuestion) WordIDs() []string {
	ids := make([]string, len(q.Pairs))
	for i, p := range q.Pairs {
		ids[i] = p.WordID
	}
	return ids
}
func (q *MatchingQuestion) question() {}

// Definitions returns the definitions of the group shuffled for display.
func (q *MatchingQuestion) Definitions(r Random) []string {
	defs := make([]string, len(q.Pairs))
	for i, p := range q.Pairs {
		defs[i] = p.Definition
	}
	return shuffle(r, defs)
}
