package quiz

import (
	"github.com/google/uuid"

	"github.com/kvgkvg/MEnglish/internal/learning"
	"github.com/kvgkvg/MEnglish/internal/srs"
)

// CardResult is the self-assessment of one flashcard.
type CardResult struct {
	WordID string
	Word   string
	Known  bool
}

// FlashcardSession walks through shuffled cards, one self-assessment per card.
type FlashcardSession struct {
	ID      string
	cards   []Word
	results []CardResult
}

// NewFlashcardSession shuffles words into a new session.
func NewFlashcardSession(words []Word, r Random) *FlashcardSession {
	return &FlashcardSession{
		ID:    uuid.NewString(),
		cards: shuffle(r, words),
	}
}

// Current returns the next card to assess.
func (s *FlashcardSession) Current() (Word, bool) {
	if s.Done() {
		return Word{}, false
	}
	return s.cards[len(s.results)], true
}

// Mark records whether the current card was known and moves on.
func (s *FlashcardSession) Mark(known bool) error {
	card, ok := s.Current()
	if !ok {
		return ErrAttemptComplete
	}
	s.results = append(s.results, CardResult{WordID: card.ID, Word: card.Word, Known: known})
	return nil
}

// Done reports whether every card has been assessed.
func (s *FlashcardSession) Done() bool {
	return len(s.results) >= len(s.cards)
}

// Remaining is the number of cards left.
func (s *FlashcardSession) Remaining() int {
	return len(s.cards) - len(s.results)
}

func (s *FlashcardSession) Results() []CardResult {
	return s.results
}

// Score is the percentage of assessed cards that were known.
func (s *FlashcardSession) Score() int {
	known := 0
	for _, r := range s.results {
		if r.Known {
			known++
		}
	}
	return Score(known, len(s.results))
}

// ReviewEvents returns a flashcard review for every assessed card.
func (s *FlashcardSession) ReviewEvents() []srs.ReviewEvent {
	events := make([]srs.ReviewEvent, len(s.results))
	for i, r := range s.results {
		events[i] = srs.ReviewEvent{
			WordID:     r.WordID,
			WasCorrect: r.Known,
			ReviewContext: srs.ReviewContext{
				QuestionType: learning.QuestionTypeFlashcard,
			},
		}
	}
	return events
}
