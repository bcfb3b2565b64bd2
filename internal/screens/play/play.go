package play

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/peekaboo/internal/catalog"
	"github.com/abhisek/peekaboo/internal/game"
	"github.com/abhisek/peekaboo/internal/router"
	"github.com/abhisek/peekaboo/internal/screen"
	sessionscreen "github.com/abhisek/peekaboo/internal/screens/session"
	"github.com/abhisek/peekaboo/internal/session"
	"github.com/abhisek/peekaboo/internal/ui/components"
	"github.com/abhisek/peekaboo/internal/ui/layout"
	"github.com/abhisek/peekaboo/internal/ui/theme"
)

type step int

const (
	stepMode step = iota
	stepCategory
	stepDifficulty
)

// Modes offered here. Story mode is played from the chapter list.
var modes = []session.Mode{session.ModeFreePlay, session.ModeTimed}

// SetupScreen walks the player through mode, category and difficulty,
// then swaps itself for the game.
type SetupScreen struct {
	ctrl  *game.Controller
	delay time.Duration

	step       step
	menu       components.Menu
	mode       session.Mode
	category   catalog.Category
	categories []catalog.Category
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)
var _ screen.EscHandler = (*SetupScreen)(nil)

// New creates a new SetupScreen.
func New(ctrl *game.Controller, delay time.Duration) *SetupScreen {
	s := &SetupScreen{
		ctrl:       ctrl,
		delay:      delay,
		categories: catalog.AllCategories(),
	}
	s.showStep(stepMode)
	return s
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Title() string {
	return "Let's Play"
}

// HandlesEsc keeps Esc inside the wizard until the first step.
func (s *SetupScreen) HandlesEsc() bool {
	return s.step > stepMode
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Choose"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "esc":
		if s.step > stepMode {
			s.showStep(s.step - 1)
			return s, nil
		}
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "enter":
		return s, s.choose(s.menu.Selected)
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

// choose applies the selected entry of the current step.
func (s *SetupScreen) choose(i int) tea.Cmd {
	if i < 0 || i >= len(s.menu.Items) || s.menu.Items[i].Disabled {
		return nil
	}
	switch s.step {
	case stepMode:
		s.mode = modes[i]
		s.showStep(stepCategory)
	case stepCategory:
		s.category = s.categories[i]
		s.showStep(stepDifficulty)
	case stepDifficulty:
		launch := sessionscreen.Launch{Config: session.Config{
			Mode:       s.mode,
			Category:   s.category,
			Difficulty: catalog.AllDifficulties()[i],
		}}
		next := sessionscreen.New(s.ctrl, launch, s.delay)
		return func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: next}
		}
	}
	return nil
}

func (s *SetupScreen) showStep(st step) {
	s.step = st
	var items []components.MenuItem
	switch st {
	case stepMode:
		for _, m := range modes {
			label := fmt.Sprintf("%-16s %d rounds", m.DisplayName(), m.Rounds())
			if limit := m.TimeLimit(); limit > 0 {
				label += fmt.Sprintf(", %ds each", int(limit.Seconds()))
			}
			items = append(items, components.MenuItem{Label: label})
		}
	case stepCategory:
		cat := s.ctrl.Progress().Catalog()
		unlocked := s.ctrl.Progress().Unlocked()
		for _, c := range s.categories {
			n := cat.CountAvailable(c, unlocked)
			items = append(items, components.MenuItem{
				Label:    fmt.Sprintf("%s %-10s %d to find", c.Icon(), c.DisplayName(), n),
				Disabled: n == 0,
			})
		}
	case stepDifficulty:
		for _, d := range catalog.AllDifficulties() {
			items = append(items, components.MenuItem{
				Label: fmt.Sprintf("%-8s %d cards", d.DisplayName(), d.OptionCount()),
			})
		}
	}
	s.menu = components.NewMenu(items)
}

func (s *SetupScreen) View(width, height int) string {
	var question string
	switch s.step {
	case stepMode:
		question = "How do you want to play?"
	case stepCategory:
		question = "What shall we find?"
	case stepDifficulty:
		question = "How many cards?"
	}

	var crumbs []string
	if s.step > stepMode {
		crumbs = append(crumbs, s.mode.DisplayName())
	}
	if s.step > stepCategory {
		crumbs = append(crumbs, s.category.Icon()+" "+s.category.DisplayName())
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render(question))
	b.WriteString("\n")
	if len(crumbs) > 0 {
		b.WriteString(theme.Subtitle.Render(strings.Join(crumbs, " › ")))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(s.menu.View())

	card := components.ArcadeCard(b.String(), components.ContentWidth(width))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
