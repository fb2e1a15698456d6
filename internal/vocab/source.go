package vocab

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/kvgkvg/MEnglish/internal/learning"
)

// Source finds the words of a set in storage, and falls back to set files
// which are stored on first use.
type Source struct {
	repo   learning.WordRepository
	reader *Reader
	dir    string
	userID string
	now    func() time.Time
}

// NewSource creates a Source. dir may be empty when there is no sets directory.
func NewSource(repo learning.WordRepository, dir, userID string) (*Source, error) {
	reader, err := NewReader()
	if err != nil {
		return nil, fmt.Errorf("NewReader() > %w", err)
	}
	return &Source{
		repo:   repo,
		reader: reader,
		dir:    dir,
		userID: userID,
		now:    time.Now,
	}, nil
}

// Load returns the set ID and words for ref, which is either a set file path or a set ID.
func (s *Source) Load(ctx context.Context, ref string) (string, []learning.Word, error) {
	var set SetFile
	if isSetFile(ref) {
		var err error
		set, err = s.reader.ReadFile(ref)
		if err != nil {
			return "", nil, err
		}
	} else {
		words, err := s.repo.FindBySet(ctx, ref)
		if err != nil {
			return "", nil, fmt.Errorf("repo.FindBySet(%s) > %w", ref, err)
		}
		if len(words) > 0 {
			return ref, words, nil
		}
		if s.dir == "" {
			return "", nil, fmt.Errorf("%w: %s", ErrSetNotFound, ref)
		}
		set, err = s.reader.Find(s.dir, ref)
		if err != nil {
			return "", nil, err
		}
	}

	words, err := s.repo.FindBySet(ctx, set.ID)
	if err != nil {
		return "", nil, fmt.Errorf("repo.FindBySet(%s) > %w", set.ID, err)
	}
	if len(words) > 0 {
		return set.ID, words, nil
	}

	words, err = s.Import(ctx, set)
	if err != nil {
		return "", nil, err
	}
	return set.ID, words, nil
}

// Import stores set with its words and returns the stored words.
func (s *Source) Import(ctx context.Context, set SetFile) ([]learning.Word, error) {
	now := s.now()
	vocabSet := set.VocabSet(s.userID, now)
	words := set.LearningWords(now)
	if err := s.repo.CreateSet(ctx, &vocabSet, words); err != nil {
		return nil, fmt.Errorf("repo.CreateSet(%s) > %w", set.ID, err)
	}
	slog.Debug("imported set", "set_id", set.ID, "words", len(words))
	return words, nil
}

// ReadFile reads and validates the set file at path.
func (s *Source) ReadFile(path string) (SetFile, error) {
	return s.reader.ReadFile(path)
}

// Export returns the stored set with id in its file form.
func (s *Source) Export(ctx context.Context, id string) (SetFile, error) {
	sets, err := s.repo.FindSetsByUser(ctx, s.userID)
	if err != nil {
		return SetFile{}, fmt.Errorf("repo.FindSetsByUser() > %w", err)
	}
	for _, set := range sets {
		if set.ID != id {
			continue
		}
		words, err := s.repo.FindBySet(ctx, id)
		if err != nil {
			return SetFile{}, fmt.Errorf("repo.FindBySet(%s) > %w", id, err)
		}
		return FromLearning(set, words), nil
	}
	return SetFile{}, fmt.Errorf("%w: %s", ErrSetNotFound, id)
}

func isSetFile(ref string) bool {
	if !isYamlFile(ref) {
		return false
	}
	info, err := os.Stat(ref)
	return err == nil && !info.IsDir()
}
