package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/peekaboo/internal/ui/theme"
)

const bannerArt = `
████  █████ █████ █   █  ███  ████   ███   ███
█   █ █     █     █  █  █   █ █   █ █   █ █   █
████  ████  ████  ███   █████ ████  █   █ █   █
█     █     █     █  █  █   █ █   █ █   █ █   █
█     █████ █████ █   █ █   █ ████   ███   ███`

const bannerCompact = "P E E K A B O O"

// Tagline is shown under the banner.
const Tagline = "Find it, tap it, collect them all!"

// RenderBanner returns the PEEKABOO banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 52 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 52 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
