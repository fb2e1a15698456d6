package database

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"

	"github.com/jmoiron/sqlx"
)

// Migrate executes every *.sql file of migrations in lexical order.
// The statements are expected to be idempotent.
func Migrate(ctx context.Context, db *sqlx.DB, migrations fs.FS) error {
	files, err := fs.Glob(migrations, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("fs.Glob() > %w", err)
	}
	sort.Strings(files)

	for _, file := range files {
		content, err := fs.ReadFile(migrations, file)
		if err != nil {
			return fmt.Errorf("fs.ReadFile(%s) > %w", file, err)
		}
		if _, err := db.ExecContext(ctx, string(content)); err != nil {
			return fmt.Errorf("apply migration %s: %w", file, err)
		}
		slog.Default().Debug("applied migration", slog.String("file", file))
	}
	return nil
}
