package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/peekaboo/internal/ui/theme"
)

const minBarWidth = 4

// ProgressBar is a one-line horizontal bar with an optional label in
// front and an optional percentage after it.
type ProgressBar struct {
	Label       string
	Percent     float64 // 0..1, clamped when drawn
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a bar filled to percent.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{Label: label, Percent: percent, ShowPercent: showPercent, Width: width}
}

// NewFractionBar creates a bar showing n out of total. A zero total draws
// an empty bar.
func NewFractionBar(label string, n, total, width int) ProgressBar {
	var pct float64
	if total > 0 {
		pct = float64(n) / float64(total)
	}
	return NewProgressBar(label, pct, true, width)
}

func (p ProgressBar) View() string {
	pct := min(max(p.Percent, 0), 1)

	var label, suffix string
	if p.Label != "" {
		label = lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}
	if p.ShowPercent {
		suffix = lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %3d%%", int(pct*100)))
	}

	barWidth := max(p.Width-lipgloss.Width(label)-lipgloss.Width(suffix), minBarWidth)
	filled := int(float64(barWidth) * pct)

	fill := lipgloss.NewStyle().Background(theme.Secondary).Render(strings.Repeat(" ", filled))
	rest := lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", barWidth-filled))
	return label + fill + rest + suffix
}
