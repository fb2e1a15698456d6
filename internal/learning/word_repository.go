package learning

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/kvgkvg/MEnglish/internal/database"
)

//go:generate mockgen -source=word_repository.go -destination=../mocks/learning/mock_word_repository.go -package=mock_learning

// WordRepository reads and writes vocabulary words and sets.
type WordRepository interface {
	FindSetsByUser(ctx context.Context, userID string) ([]VocabSet, error)
	FindBySet(ctx context.Context, setID string) ([]Word, error)
	CreateSet(ctx context.Context, set *VocabSet, words []Word) error
}

// DBWordRepository implements WordRepository using sqlx.
type DBWordRepository struct {
	db *sqlx.DB
}

// NewDBWordRepository creates a new DBWordRepository.
func NewDBWordRepository(db *sqlx.DB) *DBWordRepository {
	return &DBWordRepository{db: db}
}

// FindSetsByUser returns the sets owned by a user, oldest first.
func (r *DBWordRepository) FindSetsByUser(ctx context.Context, userID string) ([]VocabSet, error) {
	var sets []VocabSet
	if err := r.db.SelectContext(ctx, &sets,
		"SELECT id, user_id, folder_id, name, description, created_at, updated_at FROM vocab_sets WHERE user_id = ? ORDER BY created_at, id",
		userID); err != nil {
		return nil, fmt.Errorf("db.SelectContext(vocab_sets) > %w", err)
	}
	return sets, nil
}

// FindBySet returns the words of a set in insertion order.
func (r *DBWordRepository) FindBySet(ctx context.Context, setID string) ([]Word, error) {
	var words []Word
	if err := r.db.SelectContext(ctx, &words,
		"SELECT id, set_id, word, definition, example_sentence, created_at FROM vocab_words WHERE set_id = ? ORDER BY created_at, id",
		setID); err != nil {
		return nil, fmt.Errorf("db.SelectContext(vocab_words) > %w", err)
	}
	return words, nil
}

// CreateSet inserts a set and its words in a single transaction.
func (r *DBWordRepository) CreateSet(ctx context.Context, set *VocabSet, words []Word) error {
	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO vocab_sets (id, user_id, folder_id, name, description, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
			set.ID, set.UserID, set.FolderID, set.Name, set.Description, set.CreatedAt, set.UpdatedAt); err != nil {
			return fmt.Errorf("tx.ExecContext(insert vocab_set) > %w", err)
		}
		if len(words) == 0 {
			return nil
		}

		columns := []string{"id", "set_id", "word", "definition", "example_sentence", "created_at"}
		query := database.BuildMultiRowInsert("vocab_words", columns, len(words))
		var args []interface{}
		for _, w := range words {
			args = append(args, w.ID, set.ID, w.Word, w.Definition, w.ExampleSentence, w.CreatedAt)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("tx.ExecContext(insert vocab_words) > %w", err)
		}
		return nil
	})
}
