package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kvgkvg/MEnglish/internal/matcher"
)

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <answer> <expected>",
		Short: "Show how a typed answer would be graded",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			printCheck(cmd.OutOrStdout(), args[0], args[1])
			return nil
		},
	}
}

func printCheck(w io.Writer, answer, expected string) {
	result := matcher.Match(answer, expected)
	if result.IsCorrect {
		_, _ = color.New(color.FgGreen).Fprintln(w, result.Message)
	} else {
		_, _ = color.New(color.FgRed).Fprintln(w, result.Message)
	}
	_, _ = fmt.Fprintf(w, "Feedback: %s\n", result.Feedback)
	_, _ = fmt.Fprintf(w, "Similarity: %.1f%%\n", result.Similarity)
	_, _ = fmt.Fprintf(w, "Distance: %d\n", matcher.Distance(matcher.Normalize(answer), matcher.Normalize(expected)))
	if matcher.HasAcceptableTypos(answer, expected) {
		_, _ = fmt.Fprintln(w, "The answer is close but not accepted.")
	}
}
