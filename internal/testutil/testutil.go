// Package testutil provides shared test helpers for creating config files and word set fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kvgkvg/MEnglish/internal/learning"
	"github.com/kvgkvg/MEnglish/internal/vocab"
)

// SetupTestConfig creates a config file backed by an SQLite database and a sets directory in tmpDir.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	setsDir := filepath.Join(tmpDir, "sets")
	require.NoError(t, os.MkdirAll(setsDir, 0755))

	configContent := fmt.Sprintf(`database:
  driver: sqlite3
  path: %s
  max_retry_attempts: 0
quiz:
  question_count: 4
  seed: 1
user:
  id: test-user
vocab:
  sets_directory: %s
`,
		filepath.Join(tmpDir, "menglish.db"),
		setsDir,
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// SetOption configures optional fields when creating a word set fixture.
type SetOption func(*vocab.SetFile)

// WithWords replaces the default words of the set.
func WithWords(words ...learning.Word) SetOption {
	return func(set *vocab.SetFile) {
		set.Words = words
	}
}

// WithDescription sets the description of the set.
func WithDescription(description string) SetOption {
	return func(set *vocab.SetFile) {
		set.Description = description
	}
}

// CreateSetFile writes a set file named <id>.yml into setsDir and returns its path.
// By default the set holds four animal words whose IDs are prefixed with id.
func CreateSetFile(t *testing.T, setsDir, id string, opts ...SetOption) string {
	t.Helper()

	set := vocab.SetFile{
		ID:   id,
		Name: "Test Set " + id,
		Words: []learning.Word{
			{ID: id + "-1", Word: "cat", Definition: "a small furry animal"},
			{ID: id + "-2", Word: "dog", Definition: "a loyal animal"},
			{ID: id + "-3", Word: "bird", Definition: "an animal that flies"},
			{ID: id + "-4", Word: "fish", Definition: "an animal that swims"},
		},
	}
	for _, opt := range opts {
		opt(&set)
	}

	path := filepath.Join(setsDir, id+".yml")
	require.NoError(t, vocab.WriteFile(path, set))
	return path
}
