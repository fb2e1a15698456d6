package learning

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/kvgkvg/MEnglish/internal/database"
)

//go:generate mockgen -source=session_repository.go -destination=../mocks/learning/mock_session_repository.go -package=mock_learning

// SessionRepository stores the session log and the per-user activity stats.
type SessionRepository interface {
	Create(ctx context.Context, session *LearningSession) error
	FindByUser(ctx context.Context, userID string, since time.Time) ([]LearningSession, error)
	FindStats(ctx context.Context, userID string) (*UserStats, error)
	UpsertStats(ctx context.Context, stats UserStats) error
}

// DBSessionRepository implements SessionRepository using sqlx.
type DBSessionRepository struct {
	db      *sqlx.DB
	dialect database.Dialect
}

// NewDBSessionRepository creates a new DBSessionRepository.
func NewDBSessionRepository(db *sqlx.DB) *DBSessionRepository {
	return &DBSessionRepository{db: db, dialect: database.DialectOf(db)}
}

// Create inserts a new session log entry.
func (r *DBSessionRepository) Create(ctx context.Context, session *LearningSession) error {
	if _, err := r.db.ExecContext(ctx,
		"INSERT INTO learning_sessions (id, user_id, set_id, session_type, score, completed_at) VALUES (?, ?, ?, ?, ?, ?)",
		session.ID, session.UserID, session.SetID, session.SessionType, session.Score, session.CompletedAt); err != nil {
		return fmt.Errorf("db.ExecContext(insert learning_session) > %w", err)
	}
	return nil
}

// FindByUser returns the sessions completed at or after since, newest first.
func (r *DBSessionRepository) FindByUser(ctx context.Context, userID string, since time.Time) ([]LearningSession, error) {
	var sessions []LearningSession
	if err := r.db.SelectContext(ctx, &sessions,
		"SELECT id, user_id, set_id, session_type, score, completed_at FROM learning_sessions WHERE user_id = ? AND completed_at >= ? ORDER BY completed_at DESC",
		userID, since); err != nil {
		return nil, fmt.Errorf("db.SelectContext(learning_sessions) > %w", err)
	}
	return sessions, nil
}

// FindStats returns the stats of a user, or nil if the user has no activity yet.
func (r *DBSessionRepository) FindStats(ctx context.Context, userID string) (*UserStats, error) {
	var stats UserStats
	err := r.db.GetContext(ctx, &stats,
		"SELECT user_id, total_words_learned, current_streak, longest_streak, last_activity_date FROM user_stats WHERE user_id = ?",
		userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(user_stats) > %w", err)
	}
	return &stats, nil
}

// UpsertStats inserts or replaces the stats of a user.
func (r *DBSessionRepository) UpsertStats(ctx context.Context, stats UserStats) error {
	columns := []string{"user_id", "total_words_learned", "current_streak", "longest_streak", "last_activity_date"}
	query := database.BuildUpsert(r.dialect, "user_stats", columns, []string{"user_id"}, 1)
	if _, err := r.db.ExecContext(ctx, query,
		stats.UserID, stats.TotalWordsLearned, stats.CurrentStreak, stats.LongestStreak, stats.LastActivityDate); err != nil {
		return fmt.Errorf("db.ExecContext(upsert user_stats) > %w", err)
	}
	return nil
}
