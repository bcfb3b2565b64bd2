package session

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/peekaboo/internal/narration"
	sess "github.com/abhisek/peekaboo/internal/session"
	"github.com/abhisek/peekaboo/internal/ui/components"
	"github.com/abhisek/peekaboo/internal/ui/layout"
	"github.com/abhisek/peekaboo/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.showingQuitConfirm {
		return renderQuitConfirm(width)
	}
	ses := s.ctrl.Session()
	if ses == nil || len(s.round.Options) == 0 {
		return renderLoading(width)
	}
	if s.ctrl.Status() == sess.StatusPaused {
		return renderPaused(width)
	}
	return s.renderRound(width, ses)
}

// renderRound renders the prompt, the picture cards and the feedback line.
func (s *SessionScreen) renderRound(width int, ses *sess.GameSession) string {
	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s %s", ses.Category.Icon(), ses.Category.DisplayName()))

	info := fmt.Sprintf("Round %d/%d  %s %d",
		ses.CurrentRoundIndex+1, len(ses.Rounds),
		lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Render("★"),
		ses.Score)
	if s.ctrl.Timed() {
		timerStyle := lipgloss.NewStyle().Foreground(theme.Accent)
		if s.remaining <= 5*time.Second {
			timerStyle = timerStyle.Foreground(theme.Error).Bold(true)
		}
		info += "  " + timerStyle.Render("⏱ "+layout.FormatDuration(s.remaining))
	}
	infoRight := lipgloss.NewStyle().Foreground(theme.TextDim).Render(info)

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(narration.Prompt(s.round.Target)))
	b.WriteString("\n\n")

	b.WriteString(s.choices.View(width))
	b.WriteString("\n\n")

	if line := s.feedbackLine(); line != "" {
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(line))
		b.WriteString("\n")
	}
	if line := s.rewardLine(); line != "" {
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *SessionScreen) feedbackLine() string {
	switch {
	case s.message == "":
		return ""
	case s.timedOut:
		return lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("⏰ " + s.message)
	case s.feedback != nil && s.feedback.Answer.Correct:
		return theme.Correct.Render("✔ " + s.message)
	default:
		return theme.Incorrect.Render(s.message)
	}
}

func (s *SessionScreen) rewardLine() string {
	if s.feedback == nil || s.feedback.Reward == nil {
		return ""
	}
	r := s.feedback.Reward
	st := r.Sticker
	style := lipgloss.NewStyle().Foreground(theme.Hex(st.Rarity.Color())).Bold(true)

	var text string
	switch {
	case r.Upgraded:
		text = fmt.Sprintf("%s %s sticker upgraded to %s!", st.Rarity.Icon(), st.Name, st.Rarity.DisplayName())
	case r.IsNewSticker:
		text = fmt.Sprintf("%s New %s sticker: %s %s", st.Rarity.Icon(), st.Rarity.DisplayName(), st.Emoji, st.Name)
	default:
		text = fmt.Sprintf("%s %s %s", st.Rarity.Icon(), st.Emoji, st.Name)
	}
	return style.Render(text) + lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("  +%d", r.BonusPoints))
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Stop playing?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("You keep every star you found."))
	b.WriteString("\n\n")

	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		components.ArcadeButton("[Y] Yes, stop", false, 20),
		"  ",
		components.ArcadeButton("[N] Keep playing", true, 20),
	)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, buttons))

	return b.String()
}

func renderPaused(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.ArcadeCyan).
		Bold(true).
		Render("\n\n\n  ⏸  Paused\n\n  Press P to keep playing")
}

// renderLoading renders the loading state.
func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Getting the game ready...")
}

// renderError renders an error message.
func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  %s\n\n  Press any key to go back.", errMsg))
}
