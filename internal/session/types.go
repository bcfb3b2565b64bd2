package session

import (
	"slices"
	"time"

	"github.com/abhisek/peekaboo/internal/catalog"
)

// Mode is the kind of play session.
type Mode string

const (
	ModeFreePlay Mode = "free-play"
	ModeTimed    Mode = "timed"
	ModeStory    Mode = "story"
)

// AllModes returns the modes in menu order.
func AllModes() []Mode {
	return []Mode{ModeFreePlay, ModeStory, ModeTimed}
}

// ParseMode converts a string into a Mode.
func ParseMode(s string) (Mode, bool) {
	for _, m := range AllModes() {
		if string(m) == s {
			return m, true
		}
	}
	return "", false
}

// DisplayName returns a human-readable label for the mode.
func (m Mode) DisplayName() string {
	switch m {
	case ModeFreePlay:
		return "Free Play"
	case ModeTimed:
		return "Beat the Clock"
	case ModeStory:
		return "Story Adventure"
	default:
		return string(m)
	}
}

// Rounds returns the fixed number of rounds a session of this mode has.
func (m Mode) Rounds() int {
	switch m {
	case ModeTimed:
		return 10
	case ModeStory:
		return 8
	default:
		return 5
	}
}

// TimeLimit returns the per-round limit, zero when the mode is untimed.
func (m Mode) TimeLimit() time.Duration {
	if m == ModeTimed {
		return 15 * time.Second
	}
	return 0
}

// Config describes the session to build.
type Config struct {
	Mode       Mode
	Category   catalog.Category
	Difficulty catalog.Difficulty
	RoundCount int           // 0 uses Mode.Rounds()
	TimeLimit  time.Duration // 0 uses Mode.TimeLimit()
	Group      string        // optional; restricts targets to one group (story chapters)
}

// withDefaults fills zero fields from the mode.
func (c Config) withDefaults() Config {
	if c.Mode == "" {
		c.Mode = ModeFreePlay
	}
	if c.Difficulty == "" {
		c.Difficulty = catalog.DifficultyEasy
	}
	if c.RoundCount <= 0 {
		c.RoundCount = c.Mode.Rounds()
	}
	if c.TimeLimit <= 0 {
		c.TimeLimit = c.Mode.TimeLimit()
	}
	return c
}

// GameRound is one prompt and its option set. Rounds are immutable once
// generated.
type GameRound struct {
	ID         string
	Target     catalog.Item
	Options    []catalog.Item
	Difficulty catalog.Difficulty
	TimeLimit  time.Duration // zero when untimed
}

// Option returns the option with the given item ID.
func (r GameRound) Option(itemID string) (catalog.Item, bool) {
	for _, it := range r.Options {
		if it.ID == itemID {
			return it, true
		}
	}
	return catalog.Item{}, false
}

// GameSession is one play-through. Only the Engine mutates it.
type GameSession struct {
	ID                string
	Mode              Mode
	Category          catalog.Category
	Difficulty        catalog.Difficulty
	Group             string
	Rounds            []GameRound
	CurrentRoundIndex int
	Score             int
	Stars             int
	Misses            int // wrong picks, retries included
	Timeouts          int
	Abandoned         bool // ended early by Quit
	ScoredAtQuit      bool // the round in play was answered correctly before Quit
	StartTime         time.Time
	EndTime           *time.Time
}

// CurrentRound returns the round being played.
func (s *GameSession) CurrentRound() GameRound {
	return s.Rounds[s.CurrentRoundIndex]
}

// IsComplete reports whether the session reached its terminal state.
func (s *GameSession) IsComplete() bool {
	return s.EndTime != nil
}

// Finished reports whether every round was played, as opposed to quitting.
func (s *GameSession) Finished() bool {
	return s.IsComplete() && !s.Abandoned
}

func (s *GameSession) clone() *GameSession {
	cp := *s
	cp.Rounds = slices.Clone(s.Rounds)
	if s.EndTime != nil {
		end := *s.EndTime
		cp.EndTime = &end
	}
	return &cp
}

// Status is the engine's lifecycle state.
type Status int

const (
	StatusIdle     Status = iota // No session
	StatusActive                 // Round in play
	StatusPaused                 // Active, round suspended
	StatusComplete               // Session ended; terminal
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusActive:
		return "active"
	case StatusPaused:
		return "paused"
	case StatusComplete:
		return "complete"
	default:
		return "unknown"
	}
}
