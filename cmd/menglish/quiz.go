package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kvgkvg/MEnglish/internal/cli"
	"github.com/kvgkvg/MEnglish/internal/learning"
	"github.com/kvgkvg/MEnglish/internal/quiz"
)

func newQuizCommand() *cobra.Command {
	quizCommand := &cobra.Command{
		Use:   "quiz",
		Short: "Quiz commands for practicing a word set",
	}

	quizCommand.AddCommand(newQuizTestCommand())
	quizCommand.AddCommand(newQuizFlashcardCommand())

	return quizCommand
}

func newQuizTestCommand() *cobra.Command {
	var count int
	var dueOnly bool

	command := &cobra.Command{
		Use:   "test <set-file|set-id>",
		Short: "Mixed test of true/false, multiple choice, write and matching questions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer func() {
				_ = a.Close()
			}()

			ctx := cmd.Context()
			setID, words, err := a.loadWords(ctx, args[0], dueOnly)
			if err != nil {
				return err
			}

			if count == 0 {
				count = a.cfg.Quiz.QuestionCount
			}
			random := newRandom(a.cfg.Quiz.Seed)
			questions, err := quiz.Generate(quiz.FromLearningWords(words), count, random)
			if err != nil {
				return fmt.Errorf("quiz.Generate() > %w", err)
			}

			attempt := quiz.NewAttempt(questions)
			testCLI := cli.NewTestQuizCLI(a.cfg.User.ID, setID, attempt, random, a.service, os.Stdin, os.Stdout)
			fmt.Printf("Starting a test with %d questions\n", len(questions))
			return testCLI.Run(ctx, testCLI)
		},
	}
	command.Flags().IntVar(&count, "count", 0, "number of questions (default from config)")
	command.Flags().BoolVar(&dueOnly, "due", false, "only use words that are due for review")

	return command
}

func newQuizFlashcardCommand() *cobra.Command {
	var dueOnly bool

	command := &cobra.Command{
		Use:   "flashcard <set-file|set-id>",
		Short: "Go through the words of a set and mark the ones you knew",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer func() {
				_ = a.Close()
			}()

			ctx := cmd.Context()
			setID, words, err := a.loadWords(ctx, args[0], dueOnly)
			if err != nil {
				return err
			}

			session := quiz.NewFlashcardSession(quiz.FromLearningWords(words), newRandom(a.cfg.Quiz.Seed))
			flashcardCLI := cli.NewFlashcardQuizCLI(a.cfg.User.ID, setID, session, a.service, os.Stdin, os.Stdout)
			fmt.Printf("Starting flashcards with %d cards\n", session.Remaining())
			return flashcardCLI.Run(ctx, flashcardCLI)
		},
	}
	command.Flags().BoolVar(&dueOnly, "due", false, "only use words that are due for review")

	return command
}

// loadWords returns the words of ref, restricted to the due ones when dueOnly is set.
func (a *app) loadWords(ctx context.Context, ref string, dueOnly bool) (string, []learning.Word, error) {
	setID, words, err := a.source.Load(ctx, ref)
	if err != nil {
		return "", nil, fmt.Errorf("source.Load(%s) > %w", ref, err)
	}
	if !dueOnly {
		return setID, words, nil
	}

	due, err := a.service.DueWords(ctx, a.cfg.User.ID, setID)
	if err != nil {
		return "", nil, fmt.Errorf("service.DueWords(%s) > %w", setID, err)
	}
	return setID, filterWords(words, due), nil
}

func filterWords(words []learning.Word, ids []string) []learning.Word {
	keep := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		keep[id] = struct{}{}
	}

	var result []learning.Word
	for _, w := range words {
		if _, ok := keep[w.ID]; ok {
			result = append(result, w)
		}
	}
	return result
}
