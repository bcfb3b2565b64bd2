package session

import (
	"time"

	sess "github.com/abhisek/peekaboo/internal/session"
)

// Launch says which game to start.
type Launch struct {
	Config    sess.Config
	ChapterID string // story chapter; overrides Config when set
}

// timerTickMsg is sent every second to update the countdown.
type timerTickMsg time.Time

// feedbackDoneMsg is sent when the feedback display period for a round
// ends. Round guards against a stale message advancing a later round.
type feedbackDoneMsg struct {
	Round int
}
