package stickerbook

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/peekaboo/internal/catalog"
	"github.com/abhisek/peekaboo/internal/router"
	"github.com/abhisek/peekaboo/internal/screen"
	"github.com/abhisek/peekaboo/internal/stickers"
	"github.com/abhisek/peekaboo/internal/ui/components"
	"github.com/abhisek/peekaboo/internal/ui/layout"
	"github.com/abhisek/peekaboo/internal/ui/theme"
)

// StickerBookScreen displays the player's sticker collection.
type StickerBookScreen struct {
	service      *stickers.Service
	collection   stickers.Collection
	fresh        map[string]bool // stickers that were new when the book opened
	tabs         []catalog.Category
	selectedTab  int // 0 is "All"
	scrollOffset int
	filter       components.TextInput
}

var _ screen.Screen = (*StickerBookScreen)(nil)
var _ screen.KeyHintProvider = (*StickerBookScreen)(nil)
var _ screen.EscHandler = (*StickerBookScreen)(nil)

// New creates a new StickerBookScreen.
func New(service *stickers.Service) *StickerBookScreen {
	return &StickerBookScreen{
		service: service,
		tabs:    catalog.AllCategories(),
		fresh:   make(map[string]bool),
		filter:  components.NewTextInput("sticker name", 24),
	}
}

// Init loads the collection and clears the new flags; the badges stay
// visible until the book is closed.
func (s *StickerBookScreen) Init() tea.Cmd {
	s.collection = s.service.Collection()
	var ids []string
	for _, st := range s.collection.Stickers {
		if st.IsNew {
			s.fresh[st.ID] = true
			ids = append(ids, st.ID)
		}
	}
	if len(ids) > 0 {
		s.service.MarkViewed(context.Background(), ids)
	}
	return nil
}

func (s *StickerBookScreen) Title() string {
	return "Sticker Book"
}

func (s *StickerBookScreen) HandlesEsc() bool {
	return s.filter.Focused()
}

func (s *StickerBookScreen) KeyHints() []layout.KeyHint {
	if s.filter.Focused() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Done"},
			{Key: "Esc", Description: "Done"},
		}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Switch page"},
		{Key: "/", Description: "Search"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StickerBookScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.filter.Focused() {
			var cmd tea.Cmd
			s.filter, cmd = s.filter.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	if s.filter.Focused() {
		switch kmsg.String() {
		case "enter", "esc":
			s.filter.Blur()
			return s, nil
		}
		var cmd tea.Cmd
		s.filter, cmd = s.filter.Update(msg)
		s.scrollOffset = 0
		return s, cmd
	}

	pages := len(s.tabs) + 1
	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "/":
		return s, s.filter.Focus()
	case "backspace":
		s.filter.Clear()
		s.scrollOffset = 0
	case "tab", "right", "l":
		s.selectedTab = (s.selectedTab + 1) % pages
		s.scrollOffset = 0
	case "shift+tab", "left", "h":
		s.selectedTab = (s.selectedTab - 1 + pages) % pages
		s.scrollOffset = 0
	case "up", "k":
		if s.scrollOffset > 0 {
			s.scrollOffset--
		}
	case "down", "j":
		if s.scrollOffset < len(s.visible())-1 {
			s.scrollOffset++
		}
	}
	return s, nil
}

func (s *StickerBookScreen) View(width, height int) string {
	var b strings.Builder
	center := func(str string) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, str))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	center(lipgloss.NewStyle().Foreground(theme.Text).
		Render(fmt.Sprintf("Total: %d stickers", s.collection.TotalCollected)))
	bar := components.NewProgressBar("Book", float64(s.collection.CompletionPercentage)/100, true, min(width-8, 50))
	center(bar.View())
	center(s.rarityLine())
	b.WriteString("\n")

	var tabs []string
	for i := 0; i <= len(s.tabs); i++ {
		label := s.tabLabel(i)
		if i == s.selectedTab {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(label))
		} else {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.TextDim).Render(label))
		}
	}
	center(strings.Join(tabs, "   "))
	b.WriteString("\n")
	center(s.filter.View())

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", max(min(width-8, 60), 0)))
	center(divider)
	b.WriteString("\n")

	list := s.visible()
	if len(list) == 0 {
		msg := "No stickers here yet. Play to find some!"
		if s.filter.Value() != "" {
			msg = "No stickers match your search"
		}
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render(msg))
		return b.String()
	}

	maxVisible := max(height-14, 3)
	start := min(s.scrollOffset, len(list)-1)
	end := min(start+maxVisible, len(list))

	for _, st := range list[start:end] {
		center(s.stickerLine(st))
	}

	if end < len(list) {
		b.WriteString("\n")
		center(lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("... %d more", len(list)-end)))
	}

	return b.String()
}

func (s *StickerBookScreen) stickerLine(st stickers.Sticker) string {
	badge := "   "
	if s.fresh[st.ID] {
		badge = "NEW"
	}
	line := fmt.Sprintf("%s %s %-14s %s %-10s %s",
		badge, st.Emoji, st.Name, st.Rarity.Icon(), st.Rarity.DisplayName(),
		st.CollectedAt.Format("Jan 02"))
	style := lipgloss.NewStyle().Foreground(theme.Hex(st.Rarity.Color()))
	if s.fresh[st.ID] {
		style = style.Bold(true)
	}
	return style.Render(line)
}

func (s *StickerBookScreen) rarityLine() string {
	var parts []string
	for _, r := range stickers.AllRarities() {
		parts = append(parts, lipgloss.NewStyle().Foreground(theme.Hex(r.Color())).
			Render(fmt.Sprintf("%s %d", r.Icon(), s.collection.RarityCount[r])))
	}
	return strings.Join(parts, "   ")
}

func (s *StickerBookScreen) tabLabel(i int) string {
	if i == 0 {
		return fmt.Sprintf("All (%d)", s.collection.TotalCollected)
	}
	cat := s.tabs[i-1]
	return fmt.Sprintf("%s %s (%d)", cat.Icon(), cat.DisplayName(), len(s.collection.ByCategory(cat)))
}

// visible returns the stickers on the selected page that match the search.
func (s *StickerBookScreen) visible() []stickers.Sticker {
	var page []stickers.Sticker
	if s.selectedTab == 0 {
		page = s.collection.Sorted()
	} else {
		page = s.collection.ByCategory(s.tabs[s.selectedTab-1])
	}
	var out []stickers.Sticker
	for _, st := range page {
		if s.filter.Matches(st.Name) {
			out = append(out, st)
		}
	}
	return out
}
