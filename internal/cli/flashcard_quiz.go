package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/kvgkvg/MEnglish/internal/quiz"
	"github.com/kvgkvg/MEnglish/internal/review"
)

// FlashcardQuizCLI shows each word, reveals its definition and asks whether it was known.
type FlashcardQuizCLI struct {
	*InteractiveQuizCLI
	session *quiz.FlashcardSession
}

func NewFlashcardQuizCLI(
	userID, setID string,
	session *quiz.FlashcardSession,
	recorder review.Recorder,
	stdin io.Reader,
	stdout io.Writer,
) *FlashcardQuizCLI {
	return &FlashcardQuizCLI{
		InteractiveQuizCLI: newInteractiveQuizCLI(userID, setID, recorder, stdin, stdout),
		session:            session,
	}
}

func (r *FlashcardQuizCLI) Session(ctx context.Context) error {
	card, ok := r.session.Current()
	if !ok {
		return r.finish(ctx)
	}

	_, _ = fmt.Fprintf(r.stdoutWriter, "\n%d cards left\n", r.session.Remaining())
	_, _ = r.bold.Fprintf(r.stdoutWriter, "%s\n", card.Word)
	_, _ = fmt.Fprint(r.stdoutWriter, "Press Enter to reveal the definition")
	if _, err := r.readLine(); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(r.stdoutWriter, "%s\n", r.italic.Sprint(card.Definition))

	_, _ = r.bold.Fprint(r.stdoutWriter, "Did you know it? [y/n]: ")
	line, err := r.readLine()
	if err != nil {
		return err
	}

	var known bool
	switch strings.ToLower(line) {
	case "y", "yes":
		known = true
	case "n", "no":
		known = false
	default:
		_, _ = fmt.Fprintf(r.stdoutWriter, "%q is not y or n, try again\n", line)
		return nil
	}
	if err := r.session.Mark(known); err != nil {
		return fmt.Errorf("session.Mark() > %w", err)
	}
	return nil
}

func (r *FlashcardQuizCLI) finish(ctx context.Context) error {
	results := r.session.Results()
	if len(results) == 0 {
		_, _ = fmt.Fprintln(r.stdoutWriter, "No cards to practice!")
		return errEnd
	}

	known := 0
	for _, result := range results {
		if result.Known {
			known++
		}
	}
	_, _ = fmt.Fprintln(r.stdoutWriter)
	_, _ = r.bold.Fprintf(r.stdoutWriter, "You knew %d of %d cards (%d%%)\n", known, len(results), r.session.Score())

	session, err := r.recorder.CompleteFlashcards(ctx, r.userID, r.setID, r.session)
	if err != nil {
		return fmt.Errorf("recorder.CompleteFlashcards() > %w", err)
	}
	r.completed = session
	slog.Debug("flashcards finished", "session_id", session.ID, "cards", len(results))
	return errEnd
}
