package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kvgkvg/MEnglish/internal/learning"
)

func TestFilterWords(t *testing.T) {
	words := []learning.Word{{ID: "w1"}, {ID: "w2"}, {ID: "w3"}}

	tests := []struct {
		name string
		ids  []string
		want []learning.Word
	}{
		{
			name: "keeps the order of the set",
			ids:  []string{"w3", "w1"},
			want: []learning.Word{{ID: "w1"}, {ID: "w3"}},
		},
		{
			name: "nothing due",
			ids:  nil,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, filterWords(words, tt.ids))
		})
	}
}

func TestNewRandom(t *testing.T) {
	a := newRandom(42)
	b := newRandom(42)
	for i := 0; i < 5; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}
