// Package audio plays short sound cues. Playback never blocks or fails
// from the caller's point of view.
package audio

import (
	"log/slog"
	"strings"
	"sync"
)

// Event is a sound cue.
type Event string

const (
	EventCorrect     Event = "correct"
	EventIncorrect   Event = "incorrect"
	EventClick       Event = "click"
	EventWhoosh      Event = "whoosh"
	EventCelebration Event = "celebration"
)

// Player plays cues and item sounds.
type Player interface {
	Play(ev Event)
	PlayItem(itemID string)
}

// Nop plays nothing.
type Nop struct{}

func (Nop) Play(Event)      {}
func (Nop) PlayItem(string) {}

// Bell rings the terminal bell for the cues that matter to a child and
// logs the rest at debug level. Rings are queued rather than written: the
// terminal belongs to the UI, which sends them out with Drain.
type Bell struct {
	mu      sync.Mutex
	pending int
	logger  *slog.Logger
}

// NewBell returns a bell. A nil logger uses slog.Default().
func NewBell(logger *slog.Logger) *Bell {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bell{logger: logger}
}

func (b *Bell) Play(ev Event) {
	b.logger.Debug("sound", "event", ev)
	switch ev {
	case EventCorrect, EventCelebration:
	default:
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pending++
}

// Drain returns the queued rings as BEL characters and empties the queue.
func (b *Bell) Drain() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := b.pending
	b.pending = 0
	return strings.Repeat("\a", n)
}

func (b *Bell) PlayItem(itemID string) {
	b.logger.Debug("item sound", "item", itemID)
}

// Recorder collects played cues, for tests.
type Recorder struct {
	mu     sync.Mutex
	Events []Event
	Items  []string
}

func (r *Recorder) Play(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Events = append(r.Events, ev)
}

func (r *Recorder) PlayItem(itemID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Items = append(r.Items, itemID)
}
