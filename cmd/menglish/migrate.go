package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kvgkvg/MEnglish/internal/database"
	"github.com/kvgkvg/MEnglish/schemas"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer func() {
				_ = a.Close()
			}()

			if err := database.Migrate(cmd.Context(), a.db, schemas.Migrations); err != nil {
				return fmt.Errorf("database.Migrate() > %w", err)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date")
			return nil
		},
	}
}
