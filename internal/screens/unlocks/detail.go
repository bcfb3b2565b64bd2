package unlocks

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/peekaboo/internal/catalog"
	"github.com/abhisek/peekaboo/internal/screen"
	"github.com/abhisek/peekaboo/internal/stickers"
	"github.com/abhisek/peekaboo/internal/ui/layout"
	"github.com/abhisek/peekaboo/internal/ui/theme"
)

// ItemDetailScreen shows one item's card.
type ItemDetailScreen struct {
	item       catalog.Item
	section    section
	unlocked   bool
	stars      int
	sticker    stickers.Sticker
	hasSticker bool
}

var _ screen.Screen = (*ItemDetailScreen)(nil)
var _ screen.KeyHintProvider = (*ItemDetailScreen)(nil)

func newItemDetail(it catalog.Item, sec section, unlocked bool, stars int, st stickers.Sticker, has bool) *ItemDetailScreen {
	return &ItemDetailScreen{item: it, section: sec, unlocked: unlocked, stars: stars, sticker: st, hasSticker: has}
}

func (d *ItemDetailScreen) Init() tea.Cmd { return nil }
func (d *ItemDetailScreen) Title() string { return d.item.Name }

func (d *ItemDetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return d, nil
}

func (d *ItemDetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (d *ItemDetailScreen) View(width, height int) string {
	it := d.item
	var b strings.Builder

	icon := it.Emoji
	if !d.unlocked {
		icon = "🔒"
	}
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("  %s  %s", icon, it.Name)))
	b.WriteString("\n\n")

	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	valStyle := lipgloss.NewStyle().Foreground(theme.Text)

	b.WriteString(dimStyle.Render("  Category:  ") + valStyle.Render(it.Category.Icon()+" "+it.Category.DisplayName()) + "\n")
	b.WriteString(dimStyle.Render("  Group:     ") + valStyle.Render(d.section.title) + "\n")
	b.WriteString(dimStyle.Render("  Level:     ") + valStyle.Render(it.Difficulty.DisplayName()) + "\n")
	b.WriteString("\n")

	switch {
	case d.unlocked:
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Render("  Ready to play!"))
	default:
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render(
			fmt.Sprintf("  Earn %d more ★ to unlock (%d/%d)", d.section.stars-d.stars, d.stars, d.section.stars)))
	}
	b.WriteString("\n\n")

	if d.hasSticker {
		r := d.sticker.Rarity
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Hex(r.Color())).Render(
			fmt.Sprintf("  %s %s sticker, found %s", r.Icon(), r.DisplayName(), d.sticker.CollectedAt.Format("Jan 02, 2006"))))
	} else {
		b.WriteString(dimStyle.Italic(true).Render("  No sticker yet"))
	}
	b.WriteString("\n")

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top,
		"\n"+b.String())
}
