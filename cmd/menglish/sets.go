package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kvgkvg/MEnglish/internal/vocab"
)

func newSetsCommand() *cobra.Command {
	setsCommand := &cobra.Command{
		Use:   "sets",
		Short: "Manage word sets",
	}

	setsCommand.AddCommand(newSetsImportCommand())
	setsCommand.AddCommand(newSetsExportCommand())

	return setsCommand
}

func newSetsImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Store the word set of a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer func() {
				_ = a.Close()
			}()

			set, err := a.source.ReadFile(args[0])
			if err != nil {
				return err
			}
			words, err := a.source.Import(cmd.Context(), set)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported %s (%s) with %d words\n", set.ID, set.Name, len(words))
			return nil
		},
	}
}

func newSetsExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export <set-id> <file>",
		Short: "Write a stored word set to a YAML file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer func() {
				_ = a.Close()
			}()

			set, err := a.source.Export(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := vocab.WriteFile(args[1], set); err != nil {
				return fmt.Errorf("vocab.WriteFile(%s) > %w", args[1], err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %s with %d words to %s\n", set.ID, len(set.Words), args[1])
			return nil
		},
	}
}
