package session

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/peekaboo/internal/game"
	"github.com/abhisek/peekaboo/internal/router"
	"github.com/abhisek/peekaboo/internal/screen"
	"github.com/abhisek/peekaboo/internal/screens/summary"
	sess "github.com/abhisek/peekaboo/internal/session"
	"github.com/abhisek/peekaboo/internal/ui/components"
	"github.com/abhisek/peekaboo/internal/ui/layout"
)

// SessionScreen implements screen.Screen for a game in play.
type SessionScreen struct {
	ctrl   *game.Controller
	launch Launch
	delay  time.Duration

	round    sess.GameRound
	choices  components.MultiChoice
	message  string // encouragement line for the last event
	feedback *game.Feedback
	timedOut bool
	waiting  bool // round closed, next one pending

	remaining          time.Duration
	showingQuitConfirm bool
	pausedForQuit      bool
	advancePending     bool // feedback ended while paused or asking to quit
	errMsg             string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.EscHandler = (*SessionScreen)(nil)

// New creates a SessionScreen that starts the launched game on Init.
func New(ctrl *game.Controller, launch Launch, feedbackDelay time.Duration) *SessionScreen {
	return &SessionScreen{
		ctrl:   ctrl,
		launch: launch,
		delay:  feedbackDelay,
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	ctx := context.Background()
	var err error
	if s.launch.ChapterID != "" {
		_, err = s.ctrl.StartChapter(ctx, s.launch.ChapterID)
	} else {
		_, err = s.ctrl.Start(ctx, s.launch.Config)
	}
	if err != nil {
		s.errMsg = friendlyError(err)
		return nil
	}

	s.loadRound()
	if s.ctrl.Timed() {
		return tickCmd()
	}
	return nil
}

func (s *SessionScreen) Title() string {
	if ses := s.ctrl.Session(); ses != nil {
		return ses.Mode.DisplayName()
	}
	return "Play"
}

func (s *SessionScreen) HandlesEsc() bool {
	return s.errMsg == ""
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.errMsg != "" {
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	}
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Stop playing"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.ctrl.Status() == sess.StatusPaused {
		return []layout.KeyHint{
			{Key: "P", Description: "Resume"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	if s.waiting {
		return []layout.KeyHint{
			{Key: "any key", Description: "Next"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-" + string(rune('0'+len(s.round.Options))), Description: "Pick"},
		{Key: "←→", Description: "Move"},
		{Key: "R", Description: "Repeat"},
		{Key: "P", Description: "Pause"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s.handleTimerTick(msg)

	case feedbackDoneMsg:
		return s.handleFeedbackDone(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

// loadRound resets per-round view state for the round in play.
func (s *SessionScreen) loadRound() {
	round, ok := s.ctrl.CurrentRound()
	if !ok {
		return
	}
	s.round = round

	opts := make([]components.Choice, len(round.Options))
	for i, it := range round.Options {
		opts[i] = components.Choice{Emoji: it.Emoji, Label: it.Name}
	}
	s.choices = components.NewMultiChoice(opts, 3)
	s.message = ""
	s.feedback = nil
	s.timedOut = false
	s.waiting = false
	s.advancePending = false
	s.remaining = s.ctrl.TimeRemaining()
}

func (s *SessionScreen) handleTimerTick(msg timerTickMsg) (screen.Screen, tea.Cmd) {
	switch s.ctrl.Status() {
	case sess.StatusActive, sess.StatusPaused:
	default:
		// Stale tick after the game ended.
		return s, nil
	}

	res, line := s.ctrl.Tick(context.Background(), time.Time(msg))
	s.remaining = res.Remaining
	if !res.Expired {
		return s, tickCmd()
	}

	s.timedOut = true
	s.waiting = true
	s.message = line
	s.choices.Reveal(s.targetIndex())
	return s, tea.Batch(tickCmd(), s.feedbackCmd())
}

func (s *SessionScreen) handleFeedbackDone(msg feedbackDoneMsg) (screen.Screen, tea.Cmd) {
	ses := s.ctrl.Session()
	if !s.waiting || ses == nil || ses.CurrentRoundIndex != msg.Round {
		return s, nil
	}
	// Advancing would start the next round's clock behind the pause.
	if s.showingQuitConfirm || s.ctrl.Status() == sess.StatusPaused {
		s.advancePending = true
		return s, nil
	}
	return s.advance()
}

// advance moves past a closed round, or ends the game after the last one.
func (s *SessionScreen) advance() (screen.Screen, tea.Cmd) {
	wasCorrect := s.feedback != nil && s.feedback.Answer.Correct
	fin, err := s.ctrl.Advance(context.Background(), wasCorrect)
	if err != nil {
		if errors.Is(err, sess.ErrInvalidState) {
			return s, nil
		}
		s.errMsg = friendlyError(err)
		return s, nil
	}
	if fin != nil {
		return s, showSummary(fin)
	}
	s.loadRound()
	return s, nil
}

// resumePending runs an advance that was held back while the game was
// paused.
func (s *SessionScreen) resumePending() (screen.Screen, tea.Cmd) {
	if !s.advancePending || s.ctrl.Status() != sess.StatusActive {
		return s, nil
	}
	s.advancePending = false
	return s.advance()
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state: any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			s.showingQuitConfirm = false
			return s.quit()
		case "n", "N", "esc":
			s.showingQuitConfirm = false
			if s.pausedForQuit {
				s.ctrl.Resume()
				s.pausedForQuit = false
			}
			return s.resumePending()
		}
		return s, nil
	}

	switch key {
	case "esc":
		s.showingQuitConfirm = true
		s.pausedForQuit = s.ctrl.Pause()
		return s, nil
	case "p", "P":
		if !s.ctrl.Pause() {
			s.ctrl.Resume()
			return s.resumePending()
		}
		return s, nil
	}

	if s.ctrl.Status() == sess.StatusPaused {
		return s, nil
	}

	// Round closed: any key skips the rest of the feedback.
	if s.waiting {
		return s.advance()
	}

	if key == "r" || key == "R" {
		s.ctrl.RepeatPrompt()
		return s, nil
	}

	if i, ok := s.choices.Pick(key); ok {
		return s.pick(i)
	}

	var cmd tea.Cmd
	s.choices, cmd = s.choices.Update(msg)
	return s, cmd
}

// pick answers the round with option i.
func (s *SessionScreen) pick(i int) (screen.Screen, tea.Cmd) {
	if i < 0 || i >= len(s.round.Options) || s.choices.Crossed[i] {
		return s, nil
	}
	fb, err := s.ctrl.Select(context.Background(), s.round.Options[i].ID)
	if err != nil {
		return s, nil
	}

	s.message = fb.Message
	if !fb.Answer.Correct {
		s.choices.Cross(i)
		return s, nil
	}

	s.feedback = &fb
	s.waiting = true
	s.choices.Reveal(i)
	return s, s.feedbackCmd()
}

func (s *SessionScreen) quit() (screen.Screen, tea.Cmd) {
	fin, err := s.ctrl.Quit(context.Background())
	if err != nil {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, showSummary(fin)
}

func (s *SessionScreen) targetIndex() int {
	for i, it := range s.round.Options {
		if it.ID == s.round.Target.ID {
			return i
		}
	}
	return -1
}

// feedbackCmd schedules the end of the feedback period for this round.
func (s *SessionScreen) feedbackCmd() tea.Cmd {
	round := 0
	if ses := s.ctrl.Session(); ses != nil {
		round = ses.CurrentRoundIndex
	}
	return tea.Tick(s.delay, func(time.Time) tea.Msg {
		return feedbackDoneMsg{Round: round}
	})
}

func showSummary(fin *game.Finish) tea.Cmd {
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(fin)}
	}
}

func friendlyError(err error) string {
	switch {
	case errors.Is(err, game.ErrChapterLocked):
		return "This adventure is still locked. Earn more stars to open it!"
	case errors.Is(err, sess.ErrNoItems):
		return "There is nothing to play here yet. Try another category!"
	default:
		return err.Error()
	}
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
