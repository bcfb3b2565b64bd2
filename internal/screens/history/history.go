package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/peekaboo/internal/catalog"
	"github.com/abhisek/peekaboo/internal/router"
	"github.com/abhisek/peekaboo/internal/screen"
	"github.com/abhisek/peekaboo/internal/session"
	"github.com/abhisek/peekaboo/internal/store"
	"github.com/abhisek/peekaboo/internal/ui/layout"
	"github.com/abhisek/peekaboo/internal/ui/theme"
)

// Limit is how many past games the screen shows.
const Limit = 50

type historyLoadedMsg struct {
	Records []store.SessionRecord
	Err     error
}

// HistoryScreen displays past games, newest first.
type HistoryScreen struct {
	repo     store.SessionRepo
	records  []store.SessionRecord
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(repo store.SessionRepo) *HistoryScreen {
	return &HistoryScreen{
		repo:     repo,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.repo
	return func() tea.Msg {
		if repo == nil {
			return historyLoadedMsg{}
		}
		recs, err := repo.Recent(context.Background(), Limit)
		return historyLoadedMsg{Records: recs, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.records = msg.Records
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.records)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.records) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No games yet. Let's play!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, rec := range s.records {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-16s %s  %d/%d  %s",
			prefix,
			rec.StartedAt.Format("Jan 02 15:04"),
			modeName(rec.Mode),
			categoryIcon(rec.Category),
			rec.Score, rec.Rounds,
			starString(rec.Stars))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(details(rec))))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func details(rec store.SessionRecord) string {
	status := "finished"
	if !rec.Completed {
		status = "stopped early"
	}
	dur := rec.EndedAt.Sub(rec.StartedAt)
	if dur < 0 {
		dur = 0
	}
	return fmt.Sprintf("    %s · %s · %s · %s",
		categoryName(rec.Category), rec.Difficulty, layout.FormatDuration(dur), status)
}

func modeName(m string) string {
	if mode, ok := session.ParseMode(m); ok {
		return mode.DisplayName()
	}
	return m
}

func categoryIcon(c string) string {
	if cat, ok := catalog.ParseCategory(c); ok {
		return cat.Icon()
	}
	return "?"
}

func categoryName(c string) string {
	if cat, ok := catalog.ParseCategory(c); ok {
		return cat.DisplayName()
	}
	return c
}

func starString(n int) string {
	if n <= 0 {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("no stars")
	}
	return lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Render(strings.Repeat("★", n))
}
