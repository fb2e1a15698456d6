// Package vocab reads and writes word sets kept as YAML files.
package vocab

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/kvgkvg/MEnglish/internal/learning"
)

// ErrSetNotFound is returned when no file holds the requested set.
var ErrSetNotFound = errors.New("vocab: set not found")

// SetFile is the YAML form of a word set.
type SetFile struct {
	ID          string          `yaml:"id" validate:"required"`
	Name        string          `yaml:"name" validate:"required"`
	Description string          `yaml:"description,omitempty"`
	Words       []learning.Word `yaml:"words" validate:"min=1,unique=ID,dive"`
}

// VocabSet returns the stored form of the set owned by userID.
func (s SetFile) VocabSet(userID string, now time.Time) learning.VocabSet {
	set := learning.VocabSet{
		ID:        s.ID,
		UserID:    userID,
		Name:      s.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if s.Description != "" {
		description := s.Description
		set.Description = &description
	}
	return set
}

// LearningWords returns the words of the set ready to be stored.
func (s SetFile) LearningWords(now time.Time) []learning.Word {
	words := make([]learning.Word, len(s.Words))
	for i, w := range s.Words {
		w.SetID = s.ID
		w.CreatedAt = now
		words[i] = w
	}
	return words
}

// FromLearning builds the YAML form of a stored set.
func FromLearning(set learning.VocabSet, words []learning.Word) SetFile {
	file := SetFile{
		ID:    set.ID,
		Name:  set.Name,
		Words: words,
	}
	if set.Description != nil {
		file.Description = *set.Description
	}
	return file
}

// Reader loads and validates set files.
type Reader struct {
	validate   *validator.Validate
	translator ut.Translator
}

func NewReader() (*Reader, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, fmt.Errorf("failed to register default translations: %w", err)
	}
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Reader{
		validate:   validate,
		translator: trans,
	}, nil
}

// ReadFile reads the set stored at path.
func (r *Reader) ReadFile(path string) (SetFile, error) {
	set, err := readYamlFile[SetFile](path)
	if err != nil {
		return SetFile{}, err
	}
	if err := r.validateSet(set); err != nil {
		return SetFile{}, fmt.Errorf("invalid set %s: %w", path, err)
	}
	return set, nil
}

// ReadDir reads every set under dir. Set IDs must be unique across files.
func (r *Reader) ReadDir(dir string) ([]SetFile, error) {
	var sets []SetFile
	paths := make(map[string]string)
	err := walkYamlFiles(dir, func(path string) error {
		set, err := r.ReadFile(path)
		if err != nil {
			return err
		}
		if other, ok := paths[set.ID]; ok {
			return fmt.Errorf("set %s is defined in both %s and %s", set.ID, other, path)
		}
		paths[set.ID] = path
		sets = append(sets, set)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walkYamlFiles(%s) > %w", dir, err)
	}
	return sets, nil
}

// Find returns the set with id from dir.
func (r *Reader) Find(dir, id string) (SetFile, error) {
	sets, err := r.ReadDir(dir)
	if err != nil {
		return SetFile{}, err
	}
	for _, set := range sets {
		if set.ID == id {
			return set, nil
		}
	}
	return SetFile{}, fmt.Errorf("%w: %s", ErrSetNotFound, id)
}

// WriteFile stores set at path.
func WriteFile(path string, set SetFile) error {
	return writeYamlFile(path, set)
}

func (r *Reader) validateSet(set SetFile) error {
	err := r.validate.Struct(set)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("validator.Struct() > %w", err)
	}
	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, e.Translate(r.translator))
	}
	return errors.New(strings.Join(messages, ", "))
}
