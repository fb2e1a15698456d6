package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/kvgkvg/MEnglish/internal/learning"
)

type SessionTypeFlag learning.SessionType

// Set implements pflag.Value.
func (s *SessionTypeFlag) Set(v string) error {
	for _, t := range learning.SessionTypes {
		if v == string(t) {
			*s = SessionTypeFlag(t)
			return nil
		}
	}

	valid := make([]string, len(learning.SessionTypes))
	for i, t := range learning.SessionTypes {
		valid[i] = string(t)
	}
	return fmt.Errorf("invalid value %q, valid values are %s", v, strings.Join(valid, ", "))
}

// String implements pflag.Value.
func (s *SessionTypeFlag) String() string {
	if s == nil {
		return ""
	}
	return string(*s)
}

// Type implements pflag.Value.
func (s *SessionTypeFlag) Type() string {
	return "SessionTypeFlag"
}

var (
	_ pflag.Value = (*SessionTypeFlag)(nil)
)

func newSessionsCommand() *cobra.Command {
	sessionsCommand := &cobra.Command{
		Use:   "sessions",
		Short: "Learning session log",
	}

	sessionsCommand.AddCommand(newSessionsLogCommand())

	return sessionsCommand
}

func newSessionsLogCommand() *cobra.Command {
	sessionType := SessionTypeFlag(learning.SessionTypeFlashcard)
	var score int

	command := &cobra.Command{
		Use:   "log <set-id>",
		Short: "Record a session studied outside of menglish",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var scorePtr *int
			if cmd.Flags().Changed("score") {
				if score < 0 || score > 100 {
					return fmt.Errorf("score must be between 0 and 100, got %d", score)
				}
				scorePtr = &score
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			defer func() {
				_ = a.Close()
			}()

			session, err := a.service.RecordSession(cmd.Context(), a.cfg.User.ID, args[0], learning.SessionType(sessionType), scorePtr)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s session %s\n", session.SessionType, session.ID)
			return nil
		},
	}
	command.Flags().Var(&sessionType, "type", "session type (flashcard, multiple_choice, write, matching, test)")
	command.Flags().IntVar(&score, "score", 0, "score of the session in percent")

	return command
}
