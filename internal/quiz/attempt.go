package quiz

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/kvgkvg/MEnglish/internal/learning"
	"github.com/kvgkvg/MEnglish/internal/srs"
)

var (
	ErrAttemptComplete = errors.New("quiz: attempt is already complete")
	ErrAlreadyAnswered = errors.New("quiz: question is already answered")
	ErrUnknownQuestion = errors.New("quiz: question is not part of the attempt")
)

// AttemptState is the progress of an attempt.
type AttemptState int

const (
	AttemptNotStarted AttemptState = iota
	AttemptInProgress
	AttemptComplete
)

func (s AttemptState) String() string {
	switch s {
	case AttemptNotStarted:
		return "not started"
	case AttemptInProgress:
		return "in progress"
	case AttemptComplete:
		return "complete"
	}
	return fmt.Sprintf("AttemptState(%d)", int(s))
}

// Attempt is one run through a generated test.
// Each question is answered exactly once; answering the last one completes the attempt.
type Attempt struct {
	ID        string
	questions []Question
	index     map[string]int
	results   map[string]Result
}

// NewAttempt starts a fresh attempt over questions.
func NewAttempt(questions []Question) *Attempt {
	index := make(map[string]int, len(questions))
	for i, q := range questions {
		index[q.ID()] = i
	}
	return &Attempt{
		ID:        uuid.NewString(),
		questions: questions,
		index:     index,
		results:   make(map[string]Result, len(questions)),
	}
}

// Questions returns the questions in presentation order.
func (a *Attempt) Questions() []Question {
	return a.questions
}

// State returns where the attempt stands. An attempt without questions is complete.
func (a *Attempt) State() AttemptState {
	switch {
	case len(a.results) == len(a.questions):
		return AttemptComplete
	case len(a.results) == 0:
		return AttemptNotStarted
	default:
		return AttemptInProgress
	}
}

// Current returns the first unanswered question and its position.
func (a *Attempt) Current() (Question, int, bool) {
	for i, q := range a.questions {
		if _, ok := a.results[q.ID()]; !ok {
			return q, i, true
		}
	}
	return nil, len(a.questions), false
}

// Answer grades answer for the question with questionID and records the result.
// responseTime is 0 when it was not measured.
func (a *Attempt) Answer(questionID string, answer Answer, responseTime time.Duration) (Result, error) {
	if a.State() == AttemptComplete {
		return Result{}, ErrAttemptComplete
	}
	i, ok := a.index[questionID]
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownQuestion, questionID)
	}
	if _, ok := a.results[questionID]; ok {
		return Result{}, fmt.Errorf("%w: %s", ErrAlreadyAnswered, questionID)
	}

	q := a.questions[i]
	if m, ok := q.(*MatchingQuestion); ok {
		if ma, ok := answer.(MatchingAnswer); ok && !ma.covers(m) {
			return Result{}, fmt.Errorf("%w: %s", ErrIncompleteMatching, questionID)
		}
	}

	result, err := Grade(q, answer)
	if err != nil {
		return Result{}, fmt.Errorf("Grade() > %w", err)
	}
	result.ResponseTimeMs = responseTime.Milliseconds()
	a.results[questionID] = result
	return result, nil
}

// Results returns the answered results in question order.
func (a *Attempt) Results() []Result {
	results := make([]Result, 0, len(a.results))
	for _, q := range a.questions {
		if r, ok := a.results[q.ID()]; ok {
			results = append(results, r)
		}
	}
	return results
}

// Score returns the percentage of answered questions that are correct.
func (a *Attempt) Score() int {
	correct := 0
	for _, r := range a.results {
		if r.IsCorrect {
			correct++
		}
	}
	return Score(correct, len(a.results))
}

// TypeScore counts the results of one question type.
type TypeScore struct {
	Correct int
	Total   int
}

// Breakdown returns the answered results grouped by question type.
func (a *Attempt) Breakdown() map[learning.QuestionType]TypeScore {
	breakdown := make(map[learning.QuestionType]TypeScore)
	for _, r := range a.results {
		s := breakdown[r.QuestionType]
		s.Total++
		if r.IsCorrect {
			s.Correct++
		}
		breakdown[r.QuestionType] = s
	}
	return breakdown
}

// ReviewEvents converts the answered questions into memory updates.
// A matching question yields one event per pair with that pair's correctness.
func (a *Attempt) ReviewEvents() []srs.ReviewEvent {
	events := make([]srs.ReviewEvent, 0, len(a.results))
	for _, q := range a.questions {
		r, ok := a.results[q.ID()]
		if !ok {
			continue
		}
		reviewContext := srs.ReviewContext{
			QuestionType:   q.Type(),
			ResponseTimeMs: r.ResponseTimeMs,
		}
		for _, wordID := range q.WordIDs() {
			wasCorrect := r.IsCorrect
			if r.Pairs != nil {
				wasCorrect = r.Pairs[wordID]
			}
			events = append(events, srs.ReviewEvent{
				WordID:        wordID,
				WasCorrect:    wasCorrect,
				ReviewContext: reviewContext,
			})
		}
	}
	return events
}

// Score is round(100 * correct / total), 0 when nothing was answered.
func Score(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}
