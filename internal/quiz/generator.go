package quiz

import (
	"errors"
	"fmt"
)

const (
	// MinWords is the smallest pool a test can be generated from.
	MinWords = 4
	// MatchingGroupSize is the number of pairs in a matching question.
	MatchingGroupSize = 3

	distractorCount = 3
)

// ErrNotEnoughWords is returned when the pool is smaller than MinWords.
var ErrNotEnoughWords = errors.New("quiz: not enough words to generate a test")

// Distribution is the number of questions planned for each type.
type Distribution struct {
	TrueFalse      int
	MultipleChoice int
	Write          int
	Matching       int
}

// Distribute splits count into 25% true/false, 35% multiple-choice and 25% write,
// each rounded down. The remaining slots become matching questions of three words;
// slots that cannot fill a matching group go to multiple-choice.
func Distribute(count int) Distribution {
	if count <= 0 {
		return Distribution{}
	}

	d := Distribution{
		TrueFalse:      count * 25 / 100,
		MultipleChoice: count * 35 / 100,
		Write:          count * 25 / 100,
	}
	remaining := count - d.TrueFalse - d.MultipleChoice - d.Write
	d.Matching = remaining / MatchingGroupSize
	d.MultipleChoice += remaining % MatchingGroupSize
	return d
}

// Generate builds a test of up to count questions from words.
// Every word is used by at most one question, so a small pool yields fewer questions.
func Generate(words []Word, count int, r Random) ([]Question, error) {
	if len(words) < MinWords {
		return nil, fmt.Errorf("%w: got %d, need at least %d", ErrNotEnoughWords, len(words), MinWords)
	}

	d := Distribute(count)
	pool := shuffle(r, words)
	take := func(n int) []Word {
		taken := pool[:n]
		pool = pool[n:]
		return taken
	}

	questions := make([]Question, 0, count)
	for i := 0; i < d.TrueFalse && len(pool) > 0; i++ {
		questions = append(questions, newTrueFalseQuestion(take(1)[0], words, r))
	}
	for i := 0; i < d.MultipleChoice && len(pool) > 0; i++ {
		questions = append(questions, newMultipleChoiceQuestion(take(1)[0], words, r))
	}
	for i := 0; i < d.Write && len(pool) > 0; i++ {
		questions = append(questions, newWriteQuestion(take(1)[0]))
	}
	for i := 0; i < d.Matching && len(pool) >= MatchingGroupSize; i++ {
		questions = append(questions, newMatchingQuestion(take(MatchingGroupSize)))
	}

	return shuffle(r, questions), nil
}

func newTrueFalseQuestion(word Word, all []Word, r Random) *TrueFalseQuestion {
	q := &TrueFalseQuestion{
		WordID:     word.ID,
		Word:       word.Word,
		Definition: word.Definition,
		IsCorrect:  true,
	}
	if r.Float64() < 0.5 {
		return q
	}

	candidates := otherWords(all, word.ID)
	if len(candidates) == 0 {
		return q
	}
	wrong := candidates[intn(r, len(candidates))]
	q.Definition = wrong.Definition
	q.IsCorrect = false
	q.CorrectDefinition = word.Definition
	return q
}

func newMultipleChoiceQuestion(word Word, all []Word, r Random) *MultipleChoiceQuestion {
	distractors := shuffle(r, otherWords(all, word.ID))
	if len(distractors) > distractorCount {
		distractors = distractors[:distractorCount]
	}

	options := make([]string, 0, len(distractors)+1)
	options = append(options, word.Definition)
	for _, d := range distractors {
		options = append(options, d.Definition)
	}

	return &MultipleChoiceQuestion{
		WordID:        word.ID,
		Word:          word.Word,
		Options:       shuffle(r, options),
		CorrectAnswer: word.Definition,
	}
}

func newWriteQuestion(word Word) *WriteQuestion {
	return &WriteQuestion{
		WordID:        word.ID,
		Definition:    word.Definition,
		CorrectAnswer: word.Word,
	}
}

func newMatchingQuestion(words []Word) *MatchingQuestion {
	pairs := make([]MatchingPair, len(words))
	for i, w := range words {
		pairs[i] = MatchingPair{WordID: w.ID, Word: w.Word, Definition: w.Definition}
	}
	return &MatchingQuestion{Pairs: pairs}
}

func otherWords(words []Word, id string) []Word {
	others := make([]Word, 0, len(words))
	for _, w := range words {
		if w.ID != id {
			others = append(others, w)
		}
	}
	return others
}
