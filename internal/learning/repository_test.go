package learning

import (
	"context"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var progressRowColumns = []string{
	"user_id", "word_id", "memory_score", "next_review_date", "last_reviewed",
	"review_count", "correct_count", "incorrect_count",
}

func newMockDB(t *testing.T, driver string) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return sqlx.NewDb(db, driver), mock
}

func TestDBProgressRepository_FindByWord(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(selectProgress + " WHERE user_id = ? AND word_id = ?")

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		want      *WordProgress
		wantErr   bool
	}{
		{
			name: "found",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(progressRowColumns).
					AddRow("u1", "w1", 70, now, now, 3, 2, 1)
				mock.ExpectQuery(query).WithArgs("u1", "w1").WillReturnRows(rows)
			},
			want: &WordProgress{
				UserID:         "u1",
				WordID:         "w1",
				MemoryScore:    70,
				NextReviewDate: now,
				LastReviewed:   &now,
				ReviewCount:    3,
				CorrectCount:   2,
				IncorrectCount: 1,
			},
		},
		{
			name: "not found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).WithArgs("u1", "w1").WillReturnRows(sqlmock.NewRows(progressRowColumns))
			},
			want: nil,
		},
		{
			name: "db error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).WithArgs("u1", "w1").WillReturnError(fmt.Errorf("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t, "mysql")
			repo := NewDBProgressRepository(db)
			tt.setupMock(mock)

			got, err := repo.FindByWord(context.Background(), "u1", "w1")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBProgressRepository_FindByWords(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(selectProgress + " WHERE user_id = ? AND word_id IN (?, ?)")

	tests := []struct {
		name      string
		wordIDs   []string
		setupMock func(mock sqlmock.Sqlmock)
		want      map[string]WordProgress
		wantErr   bool
	}{
		{
			name:    "keys results by word id",
			wordIDs: []string{"w1", "w2"},
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(progressRowColumns).
					AddRow("u1", "w2", 90, now, nil, 1, 1, 0)
				mock.ExpectQuery(query).WithArgs("u1", "w1", "w2").WillReturnRows(rows)
			},
			want: map[string]WordProgress{
				"w2": {UserID: "u1", WordID: "w2", MemoryScore: 90, NextReviewDate: now, ReviewCount: 1, CorrectCount: 1},
			},
		},
		{
			name:      "no words skips the query",
			wordIDs:   nil,
			setupMock: func(mock sqlmock.Sqlmock) {},
			want:      map[string]WordProgress{},
		},
		{
			name:    "db error",
			wordIDs: []string{"w1", "w2"},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).WillReturnError(fmt.Errorf("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t, "mysql")
			repo := NewDBProgressRepository(db)
			tt.setupMock(mock)

			got, err := repo.FindByWords(context.Background(), "u1", tt.wordIDs)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBProgressRepository_BatchUpsert(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	progresses := []WordProgress{
		{UserID: "u1", WordID: "w1", MemoryScore: 68, NextReviewDate: now.AddDate(0, 0, 1), LastReviewed: &now, ReviewCount: 1, CorrectCount: 1},
		{UserID: "u1", WordID: "w2", MemoryScore: 35, NextReviewDate: now.Add(4 * time.Hour), LastReviewed: &now, ReviewCount: 1, IncorrectCount: 1},
	}

	tests := []struct {
		name       string
		driver     string
		progresses []WordProgress
		setupMock  func(mock sqlmock.Sqlmock)
		wantErr    bool
	}{
		{
			name:       "writes every row in one statement",
			driver:     "mysql",
			progresses: progresses,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO learning_progress (user_id, word_id, memory_score, next_review_date, last_reviewed, review_count, correct_count, incorrect_count) VALUES (?, ?, ?, ?, ?, ?, ?, ?), (?, ?, ?, ?, ?, ?, ?, ?) ON DUPLICATE KEY UPDATE")).
					WithArgs(
						"u1", "w1", 68, now.AddDate(0, 0, 1), now, 1, 1, 0,
						"u1", "w2", 35, now.Add(4*time.Hour), now, 1, 0, 1,
					).
					WillReturnResult(sqlmock.NewResult(0, 2))
				mock.ExpectCommit()
			},
		},
		{
			name:       "uses ON CONFLICT for sqlite",
			driver:     "sqlite3",
			progresses: progresses[:1],
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (user_id, word_id) DO UPDATE SET memory_score = excluded.memory_score")).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name:       "empty batch is a no-op",
			driver:     "mysql",
			progresses: nil,
			setupMock:  func(mock sqlmock.Sqlmock) {},
		},
		{
			name:       "failure rolls back",
			driver:     "mysql",
			progresses: progresses,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO learning_progress").WillReturnError(fmt.Errorf("deadlock"))
				mock.ExpectRollback()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t, tt.driver)
			repo := NewDBProgressRepository(db)
			tt.setupMock(mock)

			err := repo.BatchUpsert(context.Background(), tt.progresses)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBProgressRepository_Upsert(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	db, mock := newMockDB(t, "mysql")
	repo := NewDBProgressRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO learning_progress")).
		WithArgs("u1", "w1", 50, now, sqlmock.AnyArg(), 0, 0, 0).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Upsert(context.Background(), WordProgress{UserID: "u1", WordID: "w1", MemoryScore: 50, NextReviewDate: now})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBWordRepository_FindBySet(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	example := "A happy serendipity."

	db, mock := newMockDB(t, "mysql")
	repo := NewDBWordRepository(db)

	rows := sqlmock.NewRows([]string{"id", "set_id", "word", "definition", "example_sentence", "created_at"}).
		AddRow("w1", "s1", "serendipity", "a fortunate accident", example, now).
		AddRow("w2", "s1", "ephemeral", "lasting a very short time", nil, now)
	mock.ExpectQuery(regexp.QuoteMeta("FROM vocab_words WHERE set_id = ?")).WithArgs("s1").WillReturnRows(rows)

	got, err := repo.FindBySet(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, []Word{
		{ID: "w1", SetID: "s1", Word: "serendipity", Definition: "a fortunate accident", ExampleSentence: &example, CreatedAt: now},
		{ID: "w2", SetID: "s1", Word: "ephemeral", Definition: "lasting a very short time", CreatedAt: now},
	}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBWordRepository_CreateSet(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	set := &VocabSet{ID: "s1", UserID: "u1", Name: "GRE", CreatedAt: now, UpdatedAt: now}
	words := []Word{
		{ID: "w1", Word: "serendipity", Definition: "a fortunate accident", CreatedAt: now},
		{ID: "w2", Word: "ephemeral", Definition: "lasting a very short time", CreatedAt: now},
	}

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   bool
	}{
		{
			name: "inserts set and words",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO vocab_sets")).
					WithArgs("s1", "u1", nil, "GRE", nil, now, now).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO vocab_words (id, set_id, word, definition, example_sentence, created_at) VALUES (?, ?, ?, ?, ?, ?), (?, ?, ?, ?, ?, ?)")).
					WillReturnResult(sqlmock.NewResult(0, 2))
				mock.ExpectCommit()
			},
		},
		{
			name: "word insert failure rolls back the set",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO vocab_sets")).WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO vocab_words")).WillReturnError(fmt.Errorf("duplicate entry"))
				mock.ExpectRollback()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t, "mysql")
			repo := NewDBWordRepository(db)
			tt.setupMock(mock)

			err := repo.CreateSet(context.Background(), set, words)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBSessionRepository_Create(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	score := 70

	db, mock := newMockDB(t, "mysql")
	repo := NewDBSessionRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO learning_sessions (id, user_id, set_id, session_type, score, completed_at) VALUES (?, ?, ?, ?, ?, ?)")).
		WithArgs("sess1", "u1", "s1", "test", 70, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), &LearningSession{
		ID:          "sess1",
		UserID:      "u1",
		SetID:       "s1",
		SessionType: SessionTypeTest,
		Score:       &score,
		CompletedAt: now,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBSessionRepository_FindStats(t *testing.T) {
	day := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta("FROM user_stats WHERE user_id = ?")
	columns := []string{"user_id", "total_words_learned", "current_streak", "longest_streak", "last_activity_date"}

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		want      *UserStats
		wantErr   bool
	}{
		{
			name: "found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).WithArgs("u1").
					WillReturnRows(sqlmock.NewRows(columns).AddRow("u1", 12, 3, 5, day))
			},
			want: &UserStats{UserID: "u1", TotalWordsLearned: 12, CurrentStreak: 3, LongestStreak: 5, LastActivityDate: &day},
		},
		{
			name: "not found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).WithArgs("u1").WillReturnRows(sqlmock.NewRows(columns))
			},
		},
		{
			name: "db error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).WithArgs("u1").WillReturnError(fmt.Errorf("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t, "mysql")
			repo := NewDBSessionRepository(db)
			tt.setupMock(mock)

			got, err := repo.FindStats(context.Background(), "u1")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBSessionRepository_UpsertStats(t *testing.T) {
	day := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	db, mock := newMockDB(t, "mysql")
	repo := NewDBSessionRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO user_stats (user_id, total_words_learned, current_streak, longest_streak, last_activity_date) VALUES (?, ?, ?, ?, ?) ON DUPLICATE KEY UPDATE")).
		WithArgs("u1", 0, 1, 1, day).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpsertStats(context.Background(), UserStats{UserID: "u1", CurrentStreak: 1, LongestStreak: 1, LastActivityDate: &day})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
