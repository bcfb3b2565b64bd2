package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette, bright and friendly for small children
var (
	Primary   = lipgloss.Color("#A855F7") // Grape
	Secondary = lipgloss.Color("#06B6D4") // Lagoon
	Accent    = lipgloss.Color("#FB923C") // Tangerine
	Success   = lipgloss.Color("#4ADE80") // Leaf
	Error     = lipgloss.Color("#FB7185") // Strawberry
	Text      = lipgloss.Color("#FFFBEB") // Cream
	TextDim   = lipgloss.Color("#A8A29E") // Pebble
	BgDark    = lipgloss.Color("#1C1917") // Night
	BgCard    = lipgloss.Color("#292524") // Bark
	Border    = lipgloss.Color("#44403C") // Stone

	ArcadeYellow = lipgloss.Color("#FACC15") // Sunshine
	ArcadeCyan   = lipgloss.Color("#22D3EE") // Bubble
)

// Hex turns a "#rrggbb" string, such as a sticker rarity color, into a
// color. Empty strings fall back to Text.
func Hex(s string) color.Color {
	if s == "" {
		return Text
	}
	return lipgloss.Color(s)
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)
