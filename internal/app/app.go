package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/peekaboo/internal/audio"
	"github.com/abhisek/peekaboo/internal/game"
	"github.com/abhisek/peekaboo/internal/router"
	"github.com/abhisek/peekaboo/internal/screen"
	"github.com/abhisek/peekaboo/internal/screens/home"
	sessionscreen "github.com/abhisek/peekaboo/internal/screens/session"
	"github.com/abhisek/peekaboo/internal/screens/welcome"
	"github.com/abhisek/peekaboo/internal/session"
	"github.com/abhisek/peekaboo/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	Controller    *game.Controller
	FeedbackDelay time.Duration

	// Bell, when set, has its queued rings written through the program.
	Bell *audio.Bell

	// Launch, when set, skips the welcome screen and starts a game.
	Launch *sessionscreen.Launch
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	ctrl   *game.Controller
	bell   *audio.Bell
	launch *sessionscreen.Launch
	delay  time.Duration
	width  int
	height int
}

// newAppModel creates a new AppModel starting at the welcome screen, or
// at the home screen when a game is launched directly.
func newAppModel(opts Options) AppModel {
	homeFactory := func() screen.Screen {
		return home.New(opts.Controller, opts.FeedbackDelay)
	}

	var first screen.Screen
	if opts.Launch != nil {
		first = homeFactory()
	} else {
		first = welcome.New(homeFactory)
	}

	return AppModel{
		router: router.New(first),
		ctrl:   opts.Controller,
		bell:   opts.Bell,
		launch: opts.Launch,
		delay:  opts.FeedbackDelay,
	}
}

func (m AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.router.Active().Init()}
	if m.launch != nil {
		play := sessionscreen.New(m.ctrl, *m.launch, m.delay)
		cmds = append(cmds, func() tea.Msg {
			return router.PushScreenMsg{Screen: play}
		})
	}
	return tea.Batch(cmds...)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			// Leaving mid-game still records the stars earned so far.
			if m.ctrl != nil {
				_, _ = m.ctrl.Quit(context.Background())
			}
			return m, tea.Quit
		case "esc":
			if h, ok := m.router.Active().(screen.EscHandler); ok && h.HandlesEsc() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, tea.Batch(cmd, m.ringCmd())
}

// ringCmd sends bells queued while handling a message, or nil.
func (m AppModel) ringCmd() tea.Cmd {
	if m.bell == nil {
		return nil
	}
	if rings := m.bell.Drain(); rings != "" {
		return tea.Raw(rings)
	}
	return nil
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	var stats layout.HeaderStats
	if m.ctrl != nil {
		stats.Stars = m.ctrl.Progress().Progress().TotalStars
		stats.Stickers = m.ctrl.Stickers().Collection().TotalCollected
	}
	header := layout.RenderHeader(title, stats, m.width)

	var footerHints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	content := m.router.View(m.width, layout.BodyHeight(header, footer, m.height))
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.Controller == nil {
		return fmt.Errorf("app: no game controller")
	}
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

// LaunchFor builds a direct-launch request for the play command.
func LaunchFor(cfg session.Config, chapterID string) *sessionscreen.Launch {
	return &sessionscreen.Launch{Config: cfg, ChapterID: chapterID}
}
