package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvgkvg/MEnglish/internal/config"
	"github.com/kvgkvg/MEnglish/internal/learning"
	"github.com/kvgkvg/MEnglish/internal/vocab"
)

func TestSetupTestConfig(t *testing.T) {
	tmpDir := t.TempDir()
	got := SetupTestConfig(t, tmpDir)

	want := filepath.Join(tmpDir, "config.yml")
	assert.Equal(t, want, got)

	info, err := os.Stat(filepath.Join(tmpDir, "sets"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	cfg, err := config.Load(got)
	require.NoError(t, err)
	assert.Equal(t, "sqlite3", cfg.Database.Driver)
	assert.Equal(t, filepath.Join(tmpDir, "menglish.db"), cfg.Database.Path)
	assert.Equal(t, "test-user", cfg.User.ID)
	assert.Equal(t, 4, cfg.Quiz.QuestionCount)
	assert.Equal(t, filepath.Join(tmpDir, "sets"), cfg.Vocab.SetsDirectory)
}

func TestCreateSetFile(t *testing.T) {
	tests := []struct {
		name            string
		opts            []SetOption
		wantWords       int
		wantDescription string
	}{
		{
			name:      "default words",
			wantWords: 4,
		},
		{
			name: "custom words and description",
			opts: []SetOption{
				WithWords(learning.Word{ID: "c1", Word: "red", Definition: "the colour of blood"}),
				WithDescription("Colours"),
			},
			wantWords:       1,
			wantDescription: "Colours",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := CreateSetFile(t, dir, "animals", tt.opts...)
			assert.Equal(t, filepath.Join(dir, "animals.yml"), path)

			reader, err := vocab.NewReader()
			require.NoError(t, err)
			set, err := reader.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, "animals", set.ID)
			assert.Len(t, set.Words, tt.wantWords)
			assert.Equal(t, tt.wantDescription, set.Description)
		})
	}
}
