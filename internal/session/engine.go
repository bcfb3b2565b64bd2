package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/peekaboo/internal/catalog"
)

var (
	// ErrInvalidState is returned when an operation does not apply to the
	// engine's current state. The engine is left unchanged.
	ErrInvalidState = errors.New("invalid session state")

	// ErrNotAnOption is returned when a selected item is not in the round.
	ErrNotAnOption = errors.New("item is not an option in this round")
)

// Answer is the outcome of a selection.
type Answer struct {
	Round   GameRound
	Item    catalog.Item
	Correct bool
}

// TickResult reports what a clock tick observed.
type TickResult struct {
	Remaining time.Duration
	Expired   bool // true once per round, when the countdown hits zero
}

// Engine drives one session at a time through
// Idle -> Active <-> Paused -> Complete.
//
// A round is open until it is answered correctly or its timer expires.
// Closing a round stops its timer; CompleteRound then advances, which lets
// callers show feedback between the answer and the next round.
type Engine struct {
	gen   *Generator
	clock Clock

	status  Status
	session *GameSession
	timer   RoundTimer
	closed  bool // current round answered or expired
	correct bool // current round answered correctly, not yet scored
}

// NewEngine returns an idle engine. A nil clock uses the wall clock.
func NewEngine(gen *Generator, clock Clock) *Engine {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Engine{gen: gen, clock: clock}
}

// Start builds a new session and makes its first round active, replacing
// any previous session.
func (e *Engine) Start(cfg Config, unlocked map[string]bool) (*GameSession, error) {
	s, err := e.gen.GenerateSession(cfg, unlocked)
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	now := e.clock.Now()
	s.StartTime = now
	s.CurrentRoundIndex = 0

	e.session = s
	e.status = StatusActive
	e.closed = false
	e.correct = false
	e.armTimer(now)
	return s.clone(), nil
}

// Status returns the lifecycle state.
func (e *Engine) Status() Status {
	return e.status
}

// Session returns a snapshot of the current session, or nil when idle.
func (e *Engine) Session() *GameSession {
	if e.session == nil {
		return nil
	}
	return e.session.clone()
}

// CurrentRound returns the round in play.
func (e *Engine) CurrentRound() (GameRound, bool) {
	if e.status != StatusActive && e.status != StatusPaused {
		return GameRound{}, false
	}
	return e.session.CurrentRound(), true
}

// RoundOpen reports whether the current round still accepts answers.
func (e *Engine) RoundOpen() bool {
	return e.status == StatusActive && !e.closed
}

// Select classifies a pick for the current round. A correct pick closes
// the round; a wrong pick leaves it open for another try.
func (e *Engine) Select(itemID string) (Answer, error) {
	if !e.RoundOpen() {
		return Answer{}, ErrInvalidState
	}
	round := e.session.CurrentRound()
	item, ok := round.Option(itemID)
	if !ok {
		return Answer{}, fmt.Errorf("%w: %q", ErrNotAnOption, itemID)
	}

	ans := Answer{Round: round, Item: item, Correct: item.ID == round.Target.ID}
	if ans.Correct {
		e.closed = true
		e.correct = true
		e.timer.Disarm(e.clock.Now())
	} else {
		e.session.Misses++
	}
	return ans, nil
}

// CompleteRound scores the current round and advances. On the last round
// it ends the session and returns the final snapshot; otherwise it returns
// nil. Outside an active session it returns ErrInvalidState.
func (e *Engine) CompleteRound(wasCorrect bool) (*GameSession, error) {
	if e.status != StatusActive && e.status != StatusPaused {
		return nil, ErrInvalidState
	}
	s := e.session
	now := e.clock.Now()

	if wasCorrect {
		s.Score++
		s.Stars++
	}
	e.correct = false

	if s.CurrentRoundIndex+1 >= len(s.Rounds) {
		e.finish(now)
		return s.clone(), nil
	}

	s.CurrentRoundIndex++
	e.status = StatusActive
	e.closed = false
	e.armTimer(now)
	return nil, nil
}

// Pause suspends the current round. It reports whether anything changed.
func (e *Engine) Pause() bool {
	if e.status != StatusActive {
		return false
	}
	e.status = StatusPaused
	e.timer.Pause(e.clock.Now())
	return true
}

// Resume continues a paused round. It reports whether anything changed.
func (e *Engine) Resume() bool {
	if e.status != StatusPaused {
		return false
	}
	e.status = StatusActive
	e.timer.Resume(e.clock.Now())
	return true
}

// Quit ends the session early, keeping the score earned so far. A round
// already answered correctly but not yet completed is scored.
func (e *Engine) Quit() (*GameSession, error) {
	if e.status != StatusActive && e.status != StatusPaused {
		return nil, ErrInvalidState
	}
	if e.correct {
		e.session.Score++
		e.session.Stars++
		e.session.ScoredAtQuit = true
		e.correct = false
	}
	e.session.Abandoned = true
	e.finish(e.clock.Now())
	return e.session.clone(), nil
}

// Reset discards the session and returns to idle.
func (e *Engine) Reset() {
	e.session = nil
	e.status = StatusIdle
	e.closed = false
	e.correct = false
	e.timer.Clear()
}

// Tick evaluates the round timer. Expiry closes the round and is reported
// once; the caller consumes it with CompleteRound(false). Ticks are
// ignored unless a timed round is open and not paused.
func (e *Engine) Tick(now time.Time) TickResult {
	if e.status != StatusActive || e.closed || !e.timer.Armed() {
		return TickResult{Remaining: e.timer.Remaining(now)}
	}
	if !e.timer.Expired(now) {
		return TickResult{Remaining: e.timer.Remaining(now)}
	}
	e.closed = true
	e.session.Timeouts++
	e.timer.Disarm(now)
	return TickResult{Remaining: 0, Expired: true}
}

// TimeRemaining returns the current round's remaining time, zero when
// untimed or idle.
func (e *Engine) TimeRemaining() time.Duration {
	return e.timer.Remaining(e.clock.Now())
}

// Timed reports whether the current session has a round time limit.
func (e *Engine) Timed() bool {
	return e.session != nil && len(e.session.Rounds) > 0 && e.session.Rounds[0].TimeLimit > 0
}

func (e *Engine) armTimer(now time.Time) {
	round := e.session.CurrentRound()
	if round.TimeLimit > 0 {
		e.timer.Arm(round.TimeLimit, now)
	} else {
		e.timer.Clear()
	}
}

func (e *Engine) finish(now time.Time) {
	end := now
	e.session.EndTime = &end
	e.status = StatusComplete
	e.closed = true
	e.timer.Clear()
}
