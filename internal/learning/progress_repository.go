package learning

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/kvgkvg/MEnglish/internal/database"
)

//go:generate mockgen -source=progress_repository.go -destination=../mocks/learning/mock_progress_repository.go -package=mock_learning

// ProgressRepository stores exactly one WordProgress per user and word.
type ProgressRepository interface {
	FindByWord(ctx context.Context, userID, wordID string) (*WordProgress, error)
	FindByWords(ctx context.Context, userID string, wordIDs []string) (map[string]WordProgress, error)
	Upsert(ctx context.Context, progress WordProgress) error
	BatchUpsert(ctx context.Context, progresses []WordProgress) error
}

var progressColumns = []string{
	"user_id", "word_id", "memory_score", "next_review_date", "last_reviewed",
	"review_count", "correct_count", "incorrect_count",
}

var progressKeyColumns = []string{"user_id", "word_id"}

const selectProgress = "SELECT user_id, word_id, memory_score, next_review_date, last_reviewed, review_count, correct_count, incorrect_count FROM learning_progress"

// DBProgressRepository implements ProgressRepository using sqlx.
type DBProgressRepository struct {
	db      *sqlx.DB
	dialect database.Dialect
}

// NewDBProgressRepository creates a new DBProgressRepository.
func NewDBProgressRepository(db *sqlx.DB) *DBProgressRepository {
	return &DBProgressRepository{db: db, dialect: database.DialectOf(db)}
}

// FindByWord returns the progress of a word, or nil if the user has never reviewed it.
func (r *DBProgressRepository) FindByWord(ctx context.Context, userID, wordID string) (*WordProgress, error) {
	var progress WordProgress
	err := r.db.GetContext(ctx, &progress, selectProgress+" WHERE user_id = ? AND word_id = ?", userID, wordID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(learning_progress) > %w", err)
	}
	return &progress, nil
}

// FindByWords returns the progress of the given words keyed by word ID.
// Words without progress are absent from the map.
func (r *DBProgressRepository) FindByWords(ctx context.Context, userID string, wordIDs []string) (map[string]WordProgress, error) {
	result := make(map[string]WordProgress, len(wordIDs))
	if len(wordIDs) == 0 {
		return result, nil
	}

	query, args, err := sqlx.In(selectProgress+" WHERE user_id = ? AND word_id IN (?)", userID, wordIDs)
	if err != nil {
		return nil, fmt.Errorf("sqlx.In() > %w", err)
	}

	var progresses []WordProgress
	if err := r.db.SelectContext(ctx, &progresses, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("db.SelectContext(learning_progress by words) > %w", err)
	}
	for _, p := range progresses {
		result[p.WordID] = p
	}
	return result, nil
}

// Upsert inserts or replaces the progress of a single word.
func (r *DBProgressRepository) Upsert(ctx context.Context, progress WordProgress) error {
	query := database.BuildUpsert(r.dialect, "learning_progress", progressColumns, progressKeyColumns, 1)
	if _, err := r.db.ExecContext(ctx, query, progressArgs(progress)...); err != nil {
		return fmt.Errorf("db.ExecContext(upsert learning_progress) > %w", err)
	}
	return nil
}

// BatchUpsert writes all progresses with one multi-row statement in a single transaction,
// so either every word is updated or none is.
func (r *DBProgressRepository) BatchUpsert(ctx context.Context, progresses []WordProgress) error {
	if len(progresses) == 0 {
		return nil
	}

	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		query := database.BuildUpsert(r.dialect, "learning_progress", progressColumns, progressKeyColumns, len(progresses))

		var args []interface{}
		for _, p := range progresses {
			args = append(args, progressArgs(p)...)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("tx.ExecContext(batch upsert learning_progress) > %w", err)
		}
		return nil
	})
}

func progressArgs(p WordProgress) []interface{} {
	return []interface{}{
		p.UserID, p.WordID, p.MemoryScore, p.NextReviewDate, p.LastReviewed,
		p.ReviewCount, p.CorrectCount, p.IncorrectCount,
	}
}
