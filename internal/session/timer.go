package session

import (
	"sync"
	"time"
)

// Clock supplies the current time to the engine.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock is a Clock moved by hand, for tests and replays.
type ManualClock struct {
	mu sync.Mutex
	t  time.Time
}

// NewManualClock returns a clock stopped at t.
func NewManualClock(t time.Time) *ManualClock {
	return &ManualClock{t: t}
}

func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// RoundTimer is a per-round countdown. Remaining time is derived from the
// round start and the total paused duration, never decremented, so ticks
// can arrive late or twice without drift.
type RoundTimer struct {
	limit       time.Duration
	start       time.Time
	pausedAt    time.Time
	pausedTotal time.Duration
	paused      bool
	armed       bool
	frozen      time.Duration // remaining time captured when disarmed
}

// Arm starts a fresh countdown of limit at now.
func (t *RoundTimer) Arm(limit time.Duration, now time.Time) {
	*t = RoundTimer{limit: limit, start: now, armed: limit > 0}
}

// Armed reports whether the timer is counting a round.
func (t *RoundTimer) Armed() bool {
	return t.armed
}

// Pause freezes the countdown. No-op when already paused or disarmed.
func (t *RoundTimer) Pause(now time.Time) {
	if !t.armed || t.paused {
		return
	}
	t.paused = true
	t.pausedAt = now
}

// Resume continues the countdown from its frozen value.
func (t *RoundTimer) Resume(now time.Time) {
	if !t.armed || !t.paused {
		return
	}
	t.pausedTotal += now.Sub(t.pausedAt)
	t.paused = false
}

// Disarm stops the countdown, keeping the remaining time for display.
func (t *RoundTimer) Disarm(now time.Time) {
	if !t.armed {
		return
	}
	t.frozen = t.Remaining(now)
	t.armed = false
}

// Clear zeroes the timer.
func (t *RoundTimer) Clear() {
	*t = RoundTimer{}
}

// Remaining returns the time left with one-second resolution, never
// negative.
func (t *RoundTimer) Remaining(now time.Time) time.Duration {
	if !t.armed {
		return t.frozen
	}
	ref := now
	if t.paused {
		ref = t.pausedAt
	}
	elapsed := ref.Sub(t.start) - t.pausedTotal
	if elapsed < 0 {
		elapsed = 0
	}
	left := t.limit - elapsed.Truncate(time.Second)
	if left < 0 {
		return 0
	}
	return left
}

// Expired reports whether an armed countdown has reached zero.
func (t *RoundTimer) Expired(now time.Time) bool {
	return t.armed && t.Remaining(now) == 0
}
