// Package narration turns game events into short spoken lines. Speech
// output is fire-and-forget; a narrator never reports failure.
package narration

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/abhisek/peekaboo/internal/catalog"
	"github.com/abhisek/peekaboo/internal/rng"
)

// Narrator speaks a line of text.
type Narrator interface {
	Say(text string)
}

// Nop discards every line.
type Nop struct{}

func (Nop) Say(string) {}

// Caption keeps the most recent line so the UI can show it as a subtitle,
// and logs it at debug level.
type Caption struct {
	mu     sync.Mutex
	last   string
	logger *slog.Logger
}

// NewCaption returns a caption narrator. A nil logger uses slog.Default().
func NewCaption(logger *slog.Logger) *Caption {
	if logger == nil {
		logger = slog.Default()
	}
	return &Caption{logger: logger}
}

func (c *Caption) Say(text string) {
	c.mu.Lock()
	c.last = text
	c.mu.Unlock()
	c.logger.Debug("narrate", "text", text)
}

// Last returns the most recent line.
func (c *Caption) Last() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}

// Recorder collects lines, for tests.
type Recorder struct {
	mu    sync.Mutex
	Lines []string
}

func (r *Recorder) Say(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Lines = append(r.Lines, text)
}

var (
	correctLines = []string{
		"Great job! You found the {item}!",
		"Excellent! That's the {item}!",
		"Perfect! You're amazing!",
		"Wonderful! You got it right!",
		"Fantastic work!",
	}
	incorrectLines = []string{
		"Not quite! Try again!",
		"Oops! Give it another try!",
		"Almost there! You can do it!",
		"That's okay! Try again!",
		"Good try! Look for the {item}!",
	}
	timeUpLines = []string{
		"Time's up! Let's try another one!",
		"No worries! Here's another chance!",
		"That's okay! Let's keep playing!",
	}
)

// Prompt is the question asked at the start of a round.
func Prompt(target catalog.Item) string {
	return "Can you find the " + target.Name + "?"
}

// Lines picks encouragement lines.
type Lines struct {
	rng rng.Source
}

// NewLines returns a line picker drawing from src.
func NewLines(src rng.Source) *Lines {
	return &Lines{rng: src}
}

// Correct praises a correct pick of target.
func (l *Lines) Correct(target catalog.Item) string {
	return l.pick(correctLines, target)
}

// Incorrect encourages another try at target.
func (l *Lines) Incorrect(target catalog.Item) string {
	return l.pick(incorrectLines, target)
}

// TimeUp softens a round that ran out of time.
func (l *Lines) TimeUp(target catalog.Item) string {
	return l.pick(timeUpLines, target)
}

// Celebrate closes a finished session.
func Celebrate(score, rounds int) string {
	switch {
	case rounds > 0 && score == rounds:
		return "Wow! You got them all! You're a superstar!"
	case score*2 >= rounds:
		return "Great playing! You earned lots of stars!"
	default:
		return "Good job! Let's play again soon!"
	}
}

func (l *Lines) pick(lines []string, target catalog.Item) string {
	line := lines[l.rng.IntN(len(lines))]
	return strings.ReplaceAll(line, "{item}", target.Name)
}
