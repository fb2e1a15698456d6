package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name           string
		userAnswer     string
		correctAnswer  string
		wantCorrect    bool
		wantFeedback   Feedback
		wantSimilarity float64
	}{
		{
			name:           "exact match",
			userAnswer:     "serendipity",
			correctAnswer:  "serendipity",
			wantCorrect:    true,
			wantFeedback:   FeedbackExact,
			wantSimilarity: 100,
		},
		{
			name:           "case and whitespace are ignored",
			userAnswer:     "  Break   THE ice ",
			correctAnswer:  "break the ice",
			wantCorrect:    true,
			wantFeedback:   FeedbackExact,
			wantSimilarity: 100,
		},
		{
			name:           "one missing letter is a close match",
			userAnswer:     "serendipty",
			correctAnswer:  "serendipity",
			wantCorrect:    true,
			wantFeedback:   FeedbackClose,
			wantSimilarity: 100 * 10.0 / 11.0,
		},
		{
			name:           "completely different word",
			userAnswer:     "cat",
			correctAnswer:  "dog",
			wantCorrect:    false,
			wantFeedback:   FeedbackWrong,
			wantSimilarity: 0,
		},
		{
			name:           "both empty",
			userAnswer:     "",
			correctAnswer:  "   ",
			wantCorrect:    true,
			wantFeedback:   FeedbackExact,
			wantSimilarity: 100,
		},
		{
			name:           "empty answer",
			userAnswer:     "",
			correctAnswer:  "word",
			wantCorrect:    false,
			wantFeedback:   FeedbackWrong,
			wantSimilarity: 0,
		},
		{
			name:           "two typos in a short word are wrong",
			userAnswer:     "recieve",
			correctAnswer:  "receive",
			wantCorrect:    false,
			wantFeedback:   FeedbackWrong,
			wantSimilarity: 100 * 5.0 / 7.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Match(tt.userAnswer, tt.correctAnswer)
			assert.Equal(t, tt.wantCorrect, got.IsCorrect)
			assert.Equal(t, tt.wantFeedback, got.Feedback)
			assert.InDelta(t, tt.wantSimilarity, got.Similarity, 1e-9)
			assert.NotEmpty(t, got.Message)
		})
	}
}

func TestMatch_CloseMessageNamesCanonicalSpelling(t *testing.T) {
	got := Match("serendipty", "Serendipity")
	assert.Contains(t, got.Message, `"Serendipity"`)
}

func TestMatch_Identity(t *testing.T) {
	for _, s := range []string{"", "a", "ephemeral", "  mixed CASE  words ", "日本語", "naïve"} {
		got := Match(s, s)
		assert.True(t, got.IsCorrect, s)
		assert.Equal(t, FeedbackExact, got.Feedback, s)
	}
}

func TestMatch_SimilarityIsSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"serendipty", "serendipity"},
		{"cat", "dog"},
		{"kitten", "sitting"},
		{"", "abc"},
		{"flaw", "lawn"},
		{"break the ice", "brake the ice"},
	}
	for _, p := range pairs {
		assert.Equal(t, Match(p[0], p[1]).Similarity, Match(p[1], p[0]).Similarity, p)
		assert.Equal(t, Distance(p[0], p[1]), Distance(p[1], p[0]), p)
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"serendipty", "serendipity", 1},
		{"naïve", "naive", 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Distance(tt.a, tt.b), "%q vs %q", tt.a, tt.b)
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"", "", 100},
		{"house", "house", 100},
		{"hous", "house", 80},
		{"café", "cafe", 75},
		{"abc", "", 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, Similarity(tt.a, tt.b), 1e-9, "%q vs %q", tt.a, tt.b)
	}
}

func TestHasAcceptableTypos(t *testing.T) {
	tests := []struct {
		name          string
		userAnswer    string
		correctAnswer string
		want          bool
	}{
		{name: "exact match needs no hint", userAnswer: "receive", correctAnswer: "receive", want: false},
		{name: "close match is already accepted", userAnswer: "serendipty", correctAnswer: "serendipity", want: false},
		{name: "near miss gets a hint", userAnswer: "recieve", correctAnswer: "receive", want: true},
		{name: "wrong word gets no hint", userAnswer: "cat", correctAnswer: "dog", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasAcceptableTypos(tt.userAnswer, tt.correctAnswer))
			// hints never change the verdict
			if tt.want {
				assert.False(t, Match(tt.userAnswer, tt.correctAnswer).IsCorrect)
			}
		})
	}
}
