package layout

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/peekaboo/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	HeaderHeight = 3
	FooterHeight = 3

	CompactWidthThreshold  = 100
	CompactHeightThreshold = 30
)

// KeyHint is one "key description" pair in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsCompactWidth reports whether screens should use their narrow layout.
func IsCompactWidth(width int) bool {
	return width < CompactWidthThreshold
}

// IsCompactHeight reports whether screens should drop decorative rows.
func IsCompactHeight(height int) bool {
	return height < CompactHeightThreshold
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// FormatDuration renders d as m:ss.
func FormatDuration(d time.Duration) string {
	secs := int(d.Round(time.Second).Seconds())
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// RenderMinSizeMessage asks the player to enlarge the window.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Peekaboo needs a bigger window!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// HeaderStats are the lifetime totals shown on the right of the header.
type HeaderStats struct {
	Stars    int
	Stickers int
}

func (h HeaderStats) render() string {
	stars := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).
		Render(fmt.Sprintf("★ %d", h.Stars))
	stickers := lipgloss.NewStyle().Foreground(theme.Accent).
		Render(fmt.Sprintf("✿ %d stickers", h.Stickers))
	return stars + "   " + stickers
}

// bar is the rounded card shared by the header and the footer.
func bar(content string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// RenderHeader renders the top bar: the game name on the left, the
// screen title centred and the player's totals on the right.
func RenderHeader(title string, stats HeaderStats, width int) string {
	name := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  Peekaboo")
	mid := lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	right := stats.render()

	// Inner width excludes the border and its padding.
	inner := max(width-4, 0)
	nameW, midW, rightW := lipgloss.Width(name), lipgloss.Width(mid), lipgloss.Width(right)

	gapL := max((inner-midW)/2-nameW, 1)
	gapR := max(inner-nameW-gapL-midW-rightW, 1)

	return bar(name+strings.Repeat(" ", gapL)+mid+strings.Repeat(" ", gapR)+right, width)
}

// RenderFooter renders the key hints bar.
func RenderFooter(hints []KeyHint, width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder
	b.WriteString("  ")
	for i, h := range hints {
		if i > 0 {
			b.WriteString(descStyle.Render("  ·  "))
		}
		b.WriteString(keyStyle.Render(h.Key))
		b.WriteString(" ")
		b.WriteString(descStyle.Render(h.Description))
	}
	return bar(b.String(), width)
}

// RenderFrame stacks header, content and footer, giving the content
// whatever height the two bars leave.
func RenderFrame(header, content, footer string, width, height int) string {
	body := lipgloss.NewStyle().
		Width(width).
		Height(BodyHeight(header, footer, height)).
		Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// BodyHeight returns the rows left for screen content between the bars.
func BodyHeight(header, footer string, height int) int {
	return max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
}
