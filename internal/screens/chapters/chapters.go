package chapters

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/peekaboo/internal/game"
	"github.com/abhisek/peekaboo/internal/progress"
	"github.com/abhisek/peekaboo/internal/router"
	"github.com/abhisek/peekaboo/internal/screen"
	sessionscreen "github.com/abhisek/peekaboo/internal/screens/session"
	"github.com/abhisek/peekaboo/internal/ui/components"
	"github.com/abhisek/peekaboo/internal/ui/layout"
	"github.com/abhisek/peekaboo/internal/ui/theme"
)

// ChaptersScreen lists the story chapters. Chapters the player has not
// earned enough stars for are shown locked.
type ChaptersScreen struct {
	ctrl     *game.Controller
	delay    time.Duration
	chapters []progress.Chapter
	stars    int
	menu     components.Menu
}

var _ screen.Screen = (*ChaptersScreen)(nil)
var _ screen.KeyHintProvider = (*ChaptersScreen)(nil)

// New creates a new ChaptersScreen with the cursor on the furthest
// playable chapter.
func New(ctrl *game.Controller, delay time.Duration) *ChaptersScreen {
	s := &ChaptersScreen{
		ctrl:     ctrl,
		delay:    delay,
		chapters: progress.Chapters(),
		stars:    ctrl.Progress().Progress().TotalStars,
	}

	latest := progress.LatestChapter(s.stars)
	items := make([]components.MenuItem, len(s.chapters))
	for i, ch := range s.chapters {
		label := fmt.Sprintf("%s %s", ch.Emoji, ch.Name)
		if !ch.Available(s.stars) {
			label = fmt.Sprintf("%s  (%d ★)", ch.Name, ch.RequiredStars)
		}
		items[i] = components.MenuItem{Label: label, Disabled: !ch.Available(s.stars)}
	}
	s.menu = components.NewMenu(items)
	for i, ch := range s.chapters {
		if ch.ID == latest.ID {
			s.menu.Selected = i
		}
	}
	return s
}

func (s *ChaptersScreen) Init() tea.Cmd {
	return nil
}

func (s *ChaptersScreen) Title() string {
	return "Story Adventure"
}

func (s *ChaptersScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Play"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ChaptersScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "enter":
		return s, s.play()
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *ChaptersScreen) play() tea.Cmd {
	i := s.menu.Selected
	if i < 0 || i >= len(s.chapters) || !s.chapters[i].Available(s.stars) {
		return nil
	}
	next := sessionscreen.New(s.ctrl, sessionscreen.Launch{ChapterID: s.chapters[i].ID}, s.delay)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *ChaptersScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Choose a chapter"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.ArcadeYellow).
		Render(fmt.Sprintf("★ %d stars", s.stars)))
	b.WriteString("\n\n")

	for i, ch := range s.chapters {
		b.WriteString(s.renderChapter(ch, i == s.menu.Selected))
		b.WriteString("\n")
	}

	if i := s.menu.Selected; i >= 0 && i < len(s.chapters) {
		ch := s.chapters[i]
		b.WriteString("\n")
		b.WriteString(theme.Subtitle.Render(ch.Description))
		if !ch.Available(s.stars) {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).
				Render(fmt.Sprintf("Earn %d more ★ to open", ch.RequiredStars-s.stars)))
		}
	}

	card := components.ArcadeCard(b.String(), components.ContentWidth(width))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (s *ChaptersScreen) renderChapter(ch progress.Chapter, selected bool) string {
	if !ch.Available(s.stars) {
		return lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("  🔒 %-18s %3d ★", ch.Name, ch.RequiredStars))
	}
	line := fmt.Sprintf("%s %-18s %s", ch.Emoji, ch.Name, ch.Difficulty.DisplayName())
	if selected {
		return theme.Selected.Render("▸ " + line)
	}
	return theme.Unselected.Render("  " + line)
}
