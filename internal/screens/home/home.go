package home

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/peekaboo/internal/game"
	"github.com/abhisek/peekaboo/internal/router"
	"github.com/abhisek/peekaboo/internal/screen"
	"github.com/abhisek/peekaboo/internal/screens/chapters"
	"github.com/abhisek/peekaboo/internal/screens/history"
	"github.com/abhisek/peekaboo/internal/screens/play"
	"github.com/abhisek/peekaboo/internal/screens/stickerbook"
	"github.com/abhisek/peekaboo/internal/screens/unlocks"
	"github.com/abhisek/peekaboo/internal/ui/components"
	"github.com/abhisek/peekaboo/internal/ui/layout"
)

// alertWithin is how close to the next unlock the mascot gets excited.
const alertWithin = 3

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	ctrl *game.Controller
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. delay is how long feedback stays up
// between rounds.
func New(ctrl *game.Controller, delay time.Duration) *HomeScreen {
	push := func(factory func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: factory()}
			}
		}
	}

	items := []components.MenuItem{
		{Label: "PLAY", Action: push(func() screen.Screen { return play.New(ctrl, delay) })},
		{Label: "STORY", Action: push(func() screen.Screen { return chapters.New(ctrl, delay) })},
		{Label: "STICKER BOOK", Action: push(func() screen.Screen { return stickerbook.New(ctrl.Stickers()) })},
		{Label: "UNLOCKS", Action: push(func() screen.Screen { return unlocks.New(ctrl.Progress(), ctrl.Stickers()) })},
		{Label: "HISTORY", Action: push(func() screen.Screen { return history.New(ctrl.History()) }), Disabled: ctrl.History() == nil},
		{Label: "EXIT GAME", Action: func() tea.Cmd { return tea.Quit }},
	}

	return &HomeScreen{
		ctrl: ctrl,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	st := h.stats()

	// height is the content area; add back header and footer to judge
	// the full terminal.
	termHeight := height + layout.HeaderHeight + layout.FooterHeight + 2
	compact := layout.IsCompactHeight(termHeight) || layout.IsCompactWidth(width)

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderMascotBox(mascotFor(st), cw))
	}
	sections = append(sections, renderStatsBar(st, cw, compact))

	labels := h.menu.Labels()
	disabled := h.menu.DisabledSet()
	if compact {
		sections = append(sections, renderArcadeMenuCompact(labels, h.menu.Selected, cw, disabled))
	} else {
		sections = append(sections, renderArcadeMenu(labels, h.menu.Selected, cw, disabled))
	}

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// homeStats is what the stats bar and mascot are drawn from.
type homeStats struct {
	stars       int
	stickers    int
	newStickers int
	next        string
	toNext      int
}

func (h *HomeScreen) stats() homeStats {
	prog := h.ctrl.Progress()
	p := prog.Progress()
	st := homeStats{
		stars:       p.TotalStars,
		stickers:    h.ctrl.Stickers().Collection().TotalCollected,
		newStickers: h.ctrl.Stickers().NewCount(),
		toNext:      -1,
	}
	if t, ok := prog.Policy().Next(p.TotalStars); ok {
		st.next = t.Label
		st.toNext = t.Stars - p.TotalStars
	}
	return st
}

func mascotFor(st homeStats) MascotVariant {
	switch {
	case st.newStickers > 0:
		return MascotCelebrating
	case st.toNext >= 0 && st.toNext <= alertWithin:
		return MascotAlert
	default:
		return MascotIdle
	}
}
