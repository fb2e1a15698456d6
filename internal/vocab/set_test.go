package vocab

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvgkvg/MEnglish/internal/learning"
)

const animalsYaml = `id: animals
name: Animals
description: Zoo words
words:
  - id: w1
    word: cat
    definition: a small furry animal
    example: The cat sleeps.
  - id: w2
    word: dog
    definition: a loyal animal
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReader_ReadFile(t *testing.T) {
	example := "The cat sleeps."

	tests := []struct {
		name      string
		content   string
		want      SetFile
		wantError string
	}{
		{
			name:    "valid set",
			content: animalsYaml,
			want: SetFile{
				ID:          "animals",
				Name:        "Animals",
				Description: "Zoo words",
				Words: []learning.Word{
					{ID: "w1", Word: "cat", Definition: "a small furry animal", ExampleSentence: &example},
					{ID: "w2", Word: "dog", Definition: "a loyal animal"},
				},
			},
		},
		{
			name: "missing name",
			content: `id: animals
words:
  - id: w1
    word: cat
    definition: a small furry animal
`,
			wantError: "name is a required field",
		},
		{
			name: "no words",
			content: `id: animals
name: Animals
words: []
`,
			wantError: "words must contain at least 1 item",
		},
		{
			name: "duplicate word ids",
			content: `id: animals
name: Animals
words:
  - id: w1
    word: cat
    definition: a small furry animal
  - id: w1
    word: dog
    definition: a loyal animal
`,
			wantError: "words must contain unique values",
		},
		{
			name: "word without definition",
			content: `id: animals
name: Animals
words:
  - id: w1
    word: cat
`,
			wantError: "definition is a required field",
		},
		{
			name:      "broken yaml",
			content:   "id: [",
			wantError: "yaml.NewDecoder().Decode",
		},
	}

	reader, err := NewReader()
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "set.yml", tt.content)

			got, err := reader.ReadFile(path)
			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReader_ReadDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "animals.yml", animalsYaml)
	writeFile(t, dir, "nested/colors.yaml", `id: colors
name: Colors
words:
  - id: c1
    word: red
    definition: the colour of blood
`)
	writeFile(t, dir, "README.md", "not a set")

	reader, err := NewReader()
	require.NoError(t, err)

	sets, err := reader.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, sets, 2)
	assert.Equal(t, "animals", sets[0].ID)
	assert.Equal(t, "colors", sets[1].ID)

	t.Run("duplicate set id across files", func(t *testing.T) {
		writeFile(t, dir, "zoo.yml", animalsYaml)

		_, err := reader.ReadDir(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "set animals is defined in both")
	})
}

func TestReader_Find(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "animals.yml", animalsYaml)

	reader, err := NewReader()
	require.NoError(t, err)

	set, err := reader.Find(dir, "animals")
	require.NoError(t, err)
	assert.Equal(t, "Animals", set.Name)

	_, err = reader.Find(dir, "colors")
	assert.True(t, errors.Is(err, ErrSetNotFound))
}

func TestWriteFile(t *testing.T) {
	description := "Zoo words"
	set := learning.VocabSet{ID: "animals", Name: "Animals", Description: &description}
	words := []learning.Word{
		{ID: "w1", SetID: "animals", Word: "cat", Definition: "a small furry animal"},
	}

	path := filepath.Join(t.TempDir(), "animals.yml")
	require.NoError(t, WriteFile(path, FromLearning(set, words)))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `id: animals
name: Animals
description: Zoo words
words:
  - id: w1
    word: cat
    definition: a small furry animal
`, string(content))

	reader, err := NewReader()
	require.NoError(t, err)
	got, err := reader.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "w1", got.Words[0].ID)
	assert.Empty(t, got.Words[0].SetID)
}

func TestSetFile_VocabSet(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	set := SetFile{
		ID:   "animals",
		Name: "Animals",
		Words: []learning.Word{
			{ID: "w1", Word: "cat", Definition: "a small furry animal"},
			{ID: "w2", Word: "dog", Definition: "a loyal animal"},
		},
	}

	got := set.VocabSet("user-1", now)
	assert.Equal(t, learning.VocabSet{
		ID:        "animals",
		UserID:    "user-1",
		Name:      "Animals",
		CreatedAt: now,
		UpdatedAt: now,
	}, got)

	words := set.LearningWords(now)
	require.Len(t, words, 2)
	for _, w := range words {
		assert.Equal(t, "animals", w.SetID)
		assert.Equal(t, now, w.CreatedAt)
	}
	assert.Empty(t, set.Words[0].SetID, "the file words are left untouched")
}
