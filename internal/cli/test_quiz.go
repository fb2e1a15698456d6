package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/kvgkvg/MEnglish/internal/learning"
	"github.com/kvgkvg/MEnglish/internal/matcher"
	"github.com/kvgkvg/MEnglish/internal/quiz"
	"github.com/kvgkvg/MEnglish/internal/review"
)

var errInvalidInput = errors.New("invalid input")

// TestQuizCLI walks through the questions of a generated test.
type TestQuizCLI struct {
	*InteractiveQuizCLI
	attempt *quiz.Attempt
	random  quiz.Random
}

// NewTestQuizCLI creates a test session over attempt.
// random only orders the definitions of matching questions.
func NewTestQuizCLI(
	userID, setID string,
	attempt *quiz.Attempt,
	random quiz.Random,
	recorder review.Recorder,
	stdin io.Reader,
	stdout io.Writer,
) *TestQuizCLI {
	return &TestQuizCLI{
		InteractiveQuizCLI: newInteractiveQuizCLI(userID, setID, recorder, stdin, stdout),
		attempt:            attempt,
		random:             random,
	}
}

func (r *TestQuizCLI) Session(ctx context.Context) error {
	question, index, ok := r.attempt.Current()
	if !ok {
		return r.finish(ctx)
	}

	_, _ = fmt.Fprintf(r.stdoutWriter, "\nQuestion %d/%d\n", index+1, len(r.attempt.Questions()))
	start := time.Now()
	answer, err := r.ask(question)
	if errors.Is(err, errInvalidInput) {
		_, _ = fmt.Fprintf(r.stdoutWriter, "%v, try again\n", err)
		return nil
	}
	if err != nil {
		return err
	}

	result, err := r.attempt.Answer(question.ID(), answer, time.Since(start))
	if errors.Is(err, quiz.ErrIncompleteMatching) {
		_, _ = fmt.Fprintln(r.stdoutWriter, "Every word needs a definition, try again")
		return nil
	}
	if err != nil {
		return fmt.Errorf("attempt.Answer(%s) > %w", question.ID(), err)
	}
	r.printResult(result)
	return nil
}

func (r *TestQuizCLI) ask(question quiz.Question) (quiz.Answer, error) {
	switch q := question.(type) {
	case *quiz.TrueFalseQuestion:
		_, _ = fmt.Fprintf(r.stdoutWriter, "%s means %q\n", r.bold.Sprint(q.Word), q.Definition)
		_, _ = r.bold.Fprint(r.stdoutWriter, "True or false? [t/f]: ")
		line, err := r.readLine()
		if err != nil {
			return nil, err
		}
		switch strings.ToLower(line) {
		case "t", "true", "y", "yes":
			return quiz.TrueFalseAnswer(true), nil
		case "f", "false", "n", "no":
			return quiz.TrueFalseAnswer(false), nil
		}
		return nil, fmt.Errorf("%w: %q is not t or f", errInvalidInput, line)

	case *quiz.MultipleChoiceQuestion:
		_, _ = fmt.Fprintf(r.stdoutWriter, "What does %s mean?\n", r.bold.Sprint(q.Word))
		for i, option := range q.Options {
			_, _ = fmt.Fprintf(r.stdoutWriter, "  %d. %s\n", i+1, option)
		}
		_, _ = r.bold.Fprint(r.stdoutWriter, "Your choice: ")
		n, err := r.readChoice(len(q.Options))
		if err != nil {
			return nil, err
		}
		return quiz.MultipleChoiceAnswer(q.Options[n]), nil

	case *quiz.WriteQuestion:
		_, _ = fmt.Fprintf(r.stdoutWriter, "Which word means %s?\n", r.italic.Sprintf("%q", q.Definition))
		_, _ = r.bold.Fprint(r.stdoutWriter, "Your answer: ")
		line, err := r.readLine()
		if err != nil {
			return nil, err
		}
		return quiz.WriteAnswer(line), nil

	case *quiz.MatchingQuestion:
		definitions := q.Definitions(r.random)
		_, _ = fmt.Fprintln(r.stdoutWriter, "Match each word with its definition")
		for i, definition := range definitions {
			_, _ = fmt.Fprintf(r.stdoutWriter, "  %d. %s\n", i+1, definition)
		}
		answer := make(quiz.MatchingAnswer, len(q.Pairs))
		for _, pair := range q.Pairs {
			_, _ = r.bold.Fprintf(r.stdoutWriter, "%s: ", pair.Word)
			n, err := r.readChoice(len(definitions))
			if err != nil {
				return nil, err
			}
			answer[pair.WordID] = definitions[n]
		}
		return answer, nil
	}
	return nil, fmt.Errorf("unsupported question %T", question)
}

// readChoice reads a 1-based option number and returns it 0-based.
func (r *TestQuizCLI) readChoice(options int) (int, error) {
	line, err := r.readLine()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(line)
	if err != nil || n < 1 || n > options {
		return 0, fmt.Errorf("%w: choose a number from 1 to %d", errInvalidInput, options)
	}
	return n - 1, nil
}

func (r *TestQuizCLI) printResult(result quiz.Result) {
	if result.IsCorrect {
		r.printCorrect("%s", result.Message)
	} else {
		r.printWrong("%s", result.Message)
	}
	if result.Match != nil && result.Match.Feedback != matcher.FeedbackExact {
		_, _ = fmt.Fprintf(r.stdoutWriter, "   Similarity: %.0f%%\n", result.Match.Similarity)
		if matcher.HasAcceptableTypos(result.UserAnswer, result.CorrectAnswer) {
			_, _ = fmt.Fprintln(r.stdoutWriter, "   You were close, check the spelling.")
		}
	}
}

func (r *TestQuizCLI) finish(ctx context.Context) error {
	_, _ = fmt.Fprintln(r.stdoutWriter)
	_, _ = r.bold.Fprintf(r.stdoutWriter, "Score: %d%%\n", r.attempt.Score())

	breakdown := r.attempt.Breakdown()
	types := make([]learning.QuestionType, 0, len(breakdown))
	for t := range breakdown {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool {
		return types[i] < types[j]
	})
	for _, t := range types {
		score := breakdown[t]
		_, _ = fmt.Fprintf(r.stdoutWriter, "  %s: %d/%d\n", t, score.Correct, score.Total)
	}

	session, err := r.recorder.CompleteAttempt(ctx, r.userID, r.setID, r.attempt)
	if err != nil {
		return fmt.Errorf("recorder.CompleteAttempt() > %w", err)
	}
	r.completed = session
	slog.Debug("test finished", "attempt_id", r.attempt.ID, "session_id", session.ID, "score", r.attempt.Score())
	return errEnd
}
