package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/peekaboo/internal/ui/theme"
)

// Block-letter title (same art as welcome/banner.go).
const arcadeTitleFull = `████  █████ █████ █   █  ███  ████   ███   ███
█   █ █     █     █  █  █   █ █   █ █   █ █   █
████  ████  ████  ███   █████ ████  █   █ █   █
█     █     █     █  █  █   █ █   █ █   █ █   █
█     █████ █████ █   █ █   █ ████   ███   ███`

const arcadeTitleCompact = "P · E · E · K · A · B · O · O"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	title := arcadeTitleFull
	if compact || lipgloss.Width(arcadeTitleFull) > cw {
		title = arcadeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title))
}

// renderStatsBar renders the dashboard stats in a bordered box matching content width.
func renderStatsBar(st homeStats, cw int, compact bool) string {
	starStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	stickerStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	nextStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			starStyle.Render(fmt.Sprintf("★%d", st.stars)),
			stickerStyle.Render(fmt.Sprintf("✿%d", st.stickers)),
			nextText(st, true, nextStyle, dimStyle),
		)
	} else {
		stickers := fmt.Sprintf("✿ %d STICKERS", st.stickers)
		if st.newStickers > 0 {
			stickers += fmt.Sprintf(" (%d NEW)", st.newStickers)
		}
		stats = fmt.Sprintf("%s  %s\n%s",
			starStyle.Render(fmt.Sprintf("★ %d STARS", st.stars)),
			stickerStyle.Render(stickers),
			nextText(st, false, nextStyle, dimStyle),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

func nextText(st homeStats, compact bool, active, dim lipgloss.Style) string {
	if st.next == "" {
		if compact {
			return dim.Render("✓")
		}
		return dim.Render("✓ EVERYTHING UNLOCKED")
	}
	if compact {
		return active.Render(fmt.Sprintf("🔒%d", st.toNext))
	}
	return active.Render(fmt.Sprintf("🔒 %d MORE FOR %s", st.toNext, st.next))
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderArcadeMenu renders each menu item as a fixed-width button.
func renderArcadeMenu(items []string, selected int, cw int, disabled map[int]bool) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.ArcadeYellow).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.ArcadeYellow).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	disabledBtn := normalBtn.Foreground(theme.TextDim)

	// Two columns keep six buttons within the cabinet.
	var left, right []string
	for i, label := range items {
		var btn string
		switch {
		case disabled[i]:
			btn = disabledBtn.Render(label)
		case i == selected:
			btn = selectedBtn.Render("▸ " + label)
		default:
			btn = normalBtn.Render(label)
		}
		if i%2 == 0 {
			left = append(left, btn)
		} else {
			right = append(right, btn)
		}
	}
	block := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, left...),
		"  ",
		lipgloss.JoinVertical(lipgloss.Left, right...),
	)

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderArcadeMenuCompact renders menu items as simple text lines (no borders)
// for small terminals where bordered buttons would overflow.
func renderArcadeMenuCompact(items []string, selected int, cw int, disabled map[int]bool) string {
	var lines []string
	for i, label := range items {
		var line string
		if disabled[i] {
			line = lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render("   " + label)
		} else if i == selected {
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true).
				Render(" ▸ " + label + " ")
		} else {
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + label)
		}
		lines = append(lines, line)
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}
