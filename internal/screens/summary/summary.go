package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/peekaboo/internal/game"
	"github.com/abhisek/peekaboo/internal/narration"
	"github.com/abhisek/peekaboo/internal/progress"
	"github.com/abhisek/peekaboo/internal/router"
	"github.com/abhisek/peekaboo/internal/screen"
	"github.com/abhisek/peekaboo/internal/ui/components"
	"github.com/abhisek/peekaboo/internal/ui/layout"
	"github.com/abhisek/peekaboo/internal/ui/theme"
)

// SummaryScreen displays how a game went and what it unlocked.
type SummaryScreen struct {
	finish *game.Finish
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(finish *game.Finish) *SummaryScreen {
	return &SummaryScreen{finish: finish}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Well Done"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	if s.finish == nil {
		return ""
	}
	sum := s.finish.Summary
	center := func(style lipgloss.Style, text string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(text)) + "\n"
	}

	var b strings.Builder

	heading := "Game over!"
	if sum.Finished {
		heading = narration.Celebrate(sum.Score, sum.Rounds)
	}
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true), heading))
	b.WriteString("\n")

	stars := strings.Repeat("★", sum.Stars) + strings.Repeat("☆", max(sum.Rounds-sum.Stars, 0))
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true), stars))
	b.WriteString("\n")

	statsLine := fmt.Sprintf("Found: %d/%d        Tries: %.0f%%        Time: %s",
		sum.Score, sum.Rounds, sum.Accuracy*100, layout.FormatDuration(sum.Duration))
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Text), statsLine))
	if s.finish.BonusPoints > 0 {
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim),
			fmt.Sprintf("Sticker points: +%d", s.finish.BonusPoints)))
	}
	bar := components.NewFractionBar("Stars", sum.Score, sum.Rounds, min(width-8, 50))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", max(min(width-8, 60), 0)))
	section := func(title string) {
		b.WriteString("\n")
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim), title))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n")
	}

	if news := s.finish.NewStickers(); len(news) > 0 {
		section("New stickers")
		for _, st := range news {
			line := fmt.Sprintf("%s %s %s  %s", st.Rarity.Icon(), st.Emoji, st.Name, st.Rarity.DisplayName())
			b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Hex(st.Rarity.Color())), line))
		}
	}

	out := s.finish.Outcome
	if len(out.NewlyUnlocked) > 0 {
		section("Unlocked")
		var names []string
		for _, it := range out.NewlyUnlocked {
			names = append(names, it.Emoji+" "+it.Name)
		}
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Success).Width(min(width-8, 60)), strings.Join(names, "  ")))
	}

	if len(out.NewAchievements) > 0 {
		section("Achievements")
		for _, a := range out.NewAchievements {
			def, ok := progress.GetAchievement(a.ID)
			if !ok {
				continue
			}
			b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true),
				fmt.Sprintf("%s %s: %s", def.Icon, def.Name, def.Description)))
		}
	}

	return b.String()
}
