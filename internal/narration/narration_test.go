package narration

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/peekaboo/internal/catalog"
	"github.com/abhisek/peekaboo/internal/rng"
)

var owl = catalog.Item{ID: "owl", Name: "Owl", Emoji: "🦉"}

func TestPrompt(t *testing.T) {
	assert.Equal(t, "Can you find the Owl?", Prompt(owl))
}

func TestLines_Substitutes(t *testing.T) {
	l := NewLines(&rng.Sequence{Ints: []int{0, 4, 1}})
	assert.Equal(t, "Great job! You found the Owl!", l.Correct(owl))
	assert.Equal(t, "Good try! Look for the Owl!", l.Incorrect(owl))
	assert.Equal(t, "No worries! Here's another chance!", l.TimeUp(owl))
}

func TestLines_NoPlaceholderLeft(t *testing.T) {
	l := NewLines(rng.New(9))
	for i := 0; i < 200; i++ {
		for _, s := range []string{l.Correct(owl), l.Incorrect(owl), l.TimeUp(owl)} {
			assert.False(t, strings.Contains(s, "{item}"), "unreplaced placeholder in %q", s)
		}
	}
}

func TestCelebrate(t *testing.T) {
	assert.Contains(t, Celebrate(5, 5), "superstar")
	assert.Contains(t, Celebrate(3, 5), "lots of stars")
	assert.Contains(t, Celebrate(1, 5), "play again")
}

func TestCaption(t *testing.T) {
	c := NewCaption(slog.New(slog.DiscardHandler))
	assert.Empty(t, c.Last())
	c.Say("one")
	c.Say("two")
	assert.Equal(t, "two", c.Last())
}
