// Package cli runs interactive learning sessions in the terminal.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"

	"github.com/kvgkvg/MEnglish/internal/learning"
	"github.com/kvgkvg/MEnglish/internal/review"
)

var (
	errEnd = errors.New("end")
)

// InteractiveQuizCLI contains shared logic for interactive quiz CLIs
type InteractiveQuizCLI struct {
	userID       string
	setID        string
	recorder     review.Recorder
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	italic       *color.Color

	completed *learning.LearningSession
}

func newInteractiveQuizCLI(
	userID, setID string,
	recorder review.Recorder,
	stdin io.Reader,
	stdout io.Writer,
) *InteractiveQuizCLI {
	return &InteractiveQuizCLI{
		userID:       userID,
		setID:        setID,
		recorder:     recorder,
		stdinReader:  bufio.NewReader(stdin),
		stdoutWriter: stdout,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
	}
}

//go:generate mockgen -source=interactive_quiz_cli.go -destination=../mocks/cli/mock_session.go -package=mock_cli Session

type Session interface {
	Session(ctx context.Context) error
}

func (cli *InteractiveQuizCLI) Run(ctx context.Context, session Session) error {
	ctx, cancel := signal.NotifyContext(
		ctx,
		os.Interrupt,
	)
	defer cancel()

	errCh := runSessions(ctx, session)
	select {
	case <-ctx.Done():
		_, _ = fmt.Fprintln(cli.stdoutWriter, "Received interrupt signal, exiting...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("error: %w", err)
		}
	}
	return nil
}

// runSessions calls session until it ends, fails or ctx is done.
// The channel buffers the one error and is closed when the loop stops.
func runSessions(ctx context.Context, session Session) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)

	LOOP:
		for {
			select {
			case <-ctx.Done():
				break LOOP
			default:
			}

			if err := session.Session(ctx); err != nil {
				if errors.Is(err, errEnd) {
					break
				}
				errCh <- err
				break
			}
		}
	}()
	return errCh
}

// Completed returns the logged session once the run has finished, or nil.
func (cli *InteractiveQuizCLI) Completed() *learning.LearningSession {
	return cli.completed
}

func (cli *InteractiveQuizCLI) readLine() (string, error) {
	line, err := cli.stdinReader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("error reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func (cli *InteractiveQuizCLI) printCorrect(format string, a ...any) {
	_, _ = fmt.Fprint(cli.stdoutWriter, "✅ ")
	_, _ = color.New(color.FgGreen).Fprintf(cli.stdoutWriter, format+"\n", a...)
}

func (cli *InteractiveQuizCLI) printWrong(format string, a ...any) {
	_, _ = fmt.Fprint(cli.stdoutWriter, "❌ ")
	_, _ = color.New(color.FgRed).Fprintf(cli.stdoutWriter, format+"\n", a...)
}
