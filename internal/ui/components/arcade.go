package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/peekaboo/internal/ui/theme"
)

const (
	maxContentWidth = 60
	minContentWidth = 20

	// cabinet border (2) plus inner padding (4)
	cabinetInset = 6
)

// ContentWidth returns the inner width every card on a screen shares, so
// stacked boxes line up.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-cabinetInset, minContentWidth), maxContentWidth)
}

// CabinetFrame centres content inside the double-border game cabinet.
func CabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// ArcadeCard wraps content in a padded rounded card cw columns wide.
func ArcadeCard(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// ArcadeButton renders a bordered button. The selected button is filled
// yellow like the highlighted home menu entry.
func ArcadeButton(label string, selected bool, width int) string {
	style := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if selected {
		return style.
			Bold(true).
			Foreground(theme.BgDark).
			Background(theme.ArcadeYellow).
			BorderForeground(theme.ArcadeYellow).
			Render("▸ " + label)
	}
	return style.
		Foreground(theme.Text).
		BorderForeground(theme.Border).
		Render(label)
}
