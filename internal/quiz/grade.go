package quiz

import (
	"errors"
	"fmt"

	"github.com/kvgkvg/MEnglish/internal/learning"
	"github.com/kvgkvg/MEnglish/internal/matcher"
)

var (
	// ErrAnswerMismatch is returned when an answer does not fit the type of its question.
	ErrAnswerMismatch = errors.New("quiz: answer does not match the question type")
	// ErrIncompleteMatching is returned when a matching answer does not assign every word of the group.
	ErrIncompleteMatching = errors.New("quiz: matching answer does not cover every pair")
)

// Answer is one of TrueFalseAnswer, MultipleChoiceAnswer, WriteAnswer or MatchingAnswer.
type Answer interface {
	answer()
}

// TrueFalseAnswer is whether the shown definition was judged to be right.
type TrueFalseAnswer bool

// MultipleChoiceAnswer is the chosen option.
type MultipleChoiceAnswer string

// WriteAnswer is the typed text.
type WriteAnswer string

// MatchingAnswer assigns a definition to each word ID of the group.
type MatchingAnswer map[string]string

func (TrueFalseAnswer) answer()      {}
func (MultipleChoiceAnswer) answer() {}
func (WriteAnswer) answer()          {}
func (MatchingAnswer) answer()       {}

// Result is the graded outcome of one question.
type Result struct {
	QuestionID    string
	QuestionType  learning.QuestionType
	IsCorrect     bool
	UserAnswer    string
	CorrectAnswer string
	Message       string

	// Match is set for write questions.
	Match *matcher.Result
	// Pairs is the correctness of each word of a matching question.
	Pairs map[string]bool
	// ResponseTimeMs is 0 when the time was not measured.
	ResponseTimeMs int64
}

// Grade checks answer against q.
// A matching answer that leaves pairs unassigned is graded as incorrect.
func Grade(q Question, answer Answer) (Result, error) {
	result := Result{
		QuestionID:   q.ID(),
		QuestionType: q.Type(),
	}

	switch q := q.(type) {
	case *TrueFalseQuestion:
		a, ok := answer.(TrueFalseAnswer)
		if !ok {
			return Result{}, fmt.Errorf("%w: %s got %T", ErrAnswerMismatch, q.ID(), answer)
		}
		result.IsCorrect = bool(a) == q.IsCorrect
		result.UserAnswer = trueFalseLabel(bool(a))
		result.CorrectAnswer = trueFalseLabel(q.IsCorrect)
		result.Message = trueFalseMessage(q, result.IsCorrect)

	case *MultipleChoiceQuestion:
		a, ok := answer.(MultipleChoiceAnswer)
		if !ok {
			return Result{}, fmt.Errorf("%w: %s got %T", ErrAnswerMismatch, q.ID(), answer)
		}
		result.IsCorrect = string(a) == q.CorrectAnswer
		result.UserAnswer = string(a)
		result.CorrectAnswer = q.CorrectAnswer
		if result.IsCorrect {
			result.Message = "Correct!"
		} else {
			result.Message = fmt.Sprintf("Not quite. The correct answer is %q.", q.CorrectAnswer)
		}

	case *WriteQuestion:
		a, ok := answer.(WriteAnswer)
		if !ok {
			return Result{}, fmt.Errorf("%w: %s got %T", ErrAnswerMismatch, q.ID(), answer)
		}
		match := matcher.Match(string(a), q.CorrectAnswer)
		result.IsCorrect = match.IsCorrect
		result.UserAnswer = string(a)
		result.CorrectAnswer = q.CorrectAnswer
		result.Message = match.Message
		result.Match = &match

	case *MatchingQuestion:
		a, ok := answer.(MatchingAnswer)
		if !ok {
			return Result{}, fmt.Errorf("%w: %s got %T", ErrAnswerMismatch, q.ID(), answer)
		}
		result.Pairs = make(map[string]bool, len(q.Pairs))
		correct := 0
		for _, p := range q.Pairs {
			chosen, ok := a[p.WordID]
			result.Pairs[p.WordID] = ok && chosen == p.Definition
			if result.Pairs[p.WordID] {
				correct++
			}
		}
		total := len(q.Pairs)
		result.IsCorrect = len(a) == total && correct == total
		result.UserAnswer = fmt.Sprintf("%d/%d correct", correct, total)
		result.CorrectAnswer = fmt.Sprintf("%d/%d correct", total, total)
		if result.IsCorrect {
			result.Message = "All pairs matched!"
		} else {
			result.Message = fmt.Sprintf("You matched %s.", result.UserAnswer)
		}

	default:
		return Result{}, fmt.Errorf("%w: unknown question %T", ErrAnswerMismatch, q)
	}

	return result, nil
}

// covers reports whether answer assigns every word of q and nothing else.
func (a MatchingAnswer) covers(q *MatchingQuestion) bool {
	if len(a) != len(q.Pairs) {
		return false
	}
	for _, p := range q.Pairs {
		if _, ok := a[p.WordID]; !ok {
			return false
		}
	}
	return true
}

func trueFalseLabel(v bool) string {
	if v {
		return "True"
	}
	return "False"
}

func trueFalseMessage(q *TrueFalseQuestion, correct bool) string {
	switch {
	case correct:
		return "Correct!"
	case q.IsCorrect:
		return "Not quite. That definition is right."
	default:
		return fmt.Sprintf("Not quite. %q means %q.", q.Word, q.CorrectDefinition)
	}
}
