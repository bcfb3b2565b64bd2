package unlocks

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/peekaboo/internal/catalog"
	"github.com/abhisek/peekaboo/internal/progress"
	"github.com/abhisek/peekaboo/internal/router"
	"github.com/abhisek/peekaboo/internal/screen"
	"github.com/abhisek/peekaboo/internal/stickers"
	"github.com/abhisek/peekaboo/internal/ui/layout"
	"github.com/abhisek/peekaboo/internal/ui/theme"
)

type rowKind int

const (
	rowSectionHeader rowKind = iota
	rowItem
)

// section is one group of items that unlock together.
type section struct {
	title string
	stars int // 0 for items that are always playable
}

type row struct {
	kind    rowKind
	section int
	item    *catalog.Item
}

// UnlocksScreen shows which items are playable and how many stars the
// rest need, one section per unlock group.
type UnlocksScreen struct {
	sections     []section
	rows         []row
	cursor       int
	scrollOffset int
	stars        int
	unlocked     map[string]bool
	collected    map[string]stickers.Sticker
	next         string
}

var _ screen.Screen = (*UnlocksScreen)(nil)
var _ screen.KeyHintProvider = (*UnlocksScreen)(nil)

// New creates a new UnlocksScreen. The sticker service may be nil.
func New(prog *progress.Service, st *stickers.Service) *UnlocksScreen {
	p := prog.Progress()
	s := &UnlocksScreen{
		stars:     p.TotalStars,
		unlocked:  prog.Unlocked(),
		collected: make(map[string]stickers.Sticker),
	}
	if st != nil {
		s.collected = st.Collection().Stickers
	}
	if t, ok := prog.Policy().Next(p.TotalStars); ok {
		s.next = fmt.Sprintf("%s at %d ★", t.Label, t.Stars)
	}

	s.build(prog.Catalog(), prog.Policy().Thresholds())

	for i, r := range s.rows {
		if r.kind == rowItem {
			s.cursor = i
			break
		}
	}
	return s
}

// build lays out the always-playable groups of every category the
// thresholds touch, then one section per threshold in star order.
func (s *UnlocksScreen) build(cat *catalog.Catalog, thresholds []progress.Threshold) {
	add := func(sec section, items []catalog.Item) {
		if len(items) == 0 {
			return
		}
		s.sections = append(s.sections, sec)
		idx := len(s.sections) - 1
		s.rows = append(s.rows, row{kind: rowSectionHeader, section: idx})
		for i := range items {
			s.rows = append(s.rows, row{kind: rowItem, section: idx, item: &items[i]})
		}
	}

	seen := make(map[catalog.Category]bool)
	for _, t := range thresholds {
		if seen[t.Category] {
			continue
		}
		seen[t.Category] = true

		var groups []string
		byGroup := make(map[string][]catalog.Item)
		for _, it := range cat.ByCategory(t.Category) {
			if !it.Unlocked {
				continue
			}
			if _, ok := byGroup[it.Group]; !ok {
				groups = append(groups, it.Group)
			}
			byGroup[it.Group] = append(byGroup[it.Group], it)
		}
		for _, g := range groups {
			add(section{title: groupTitle(g, t.Category)}, byGroup[g])
		}
	}

	for _, t := range thresholds {
		add(section{title: t.Label, stars: t.Stars}, cat.ByGroup(t.Category, t.Group))
	}
}

func groupTitle(group string, c catalog.Category) string {
	if group == "" {
		return c.DisplayName()
	}
	return strings.ToUpper(group[:1]) + group[1:] + " " + strings.ToLower(c.DisplayName())
}

func (s *UnlocksScreen) Init() tea.Cmd {
	return nil
}

func (s *UnlocksScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.moveCursor(-1)
		case "down", "j":
			s.moveCursor(1)
		case "tab":
			s.jumpSection(1)
		case "shift+tab":
			s.jumpSection(-1)
		case "enter":
			return s, s.selectItem()
		case "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *UnlocksScreen) View(width, height int) string {
	if len(s.rows) == 0 {
		return ""
	}

	summary := fmt.Sprintf("  ★ %d stars", s.stars)
	if s.next != "" {
		summary += "   next: " + s.next
	} else {
		summary += "   everything unlocked!"
	}
	top := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(summary)

	listHeight := height - 2
	s.adjustScroll(listHeight)

	lines := []string{top}
	visible := 0
	for i, r := range s.rows {
		if i < s.scrollOffset {
			continue
		}
		if visible >= listHeight {
			break
		}
		switch r.kind {
		case rowSectionHeader:
			lines = append(lines, s.renderSectionHeader(s.sections[r.section], width))
		case rowItem:
			lines = append(lines, s.renderItemRow(r, i == s.cursor, width))
		}
		visible++
	}

	return strings.Join(lines, "\n")
}

func (s *UnlocksScreen) Title() string {
	return "Unlocks"
}

// KeyHints returns the key binding hints for the footer.
func (s *UnlocksScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Tab", Description: "Group"},
		{Key: "Enter", Description: "Look"},
		{Key: "Esc", Description: "Back"},
	}
}

// moveCursor moves the cursor by delta, skipping section headers.
func (s *UnlocksScreen) moveCursor(delta int) {
	next := s.cursor + delta
	for next >= 0 && next < len(s.rows) {
		if s.rows[next].kind == rowItem {
			s.cursor = next
			return
		}
		next += delta
	}
}

// jumpSection moves the cursor to the first item of the next or previous
// section.
func (s *UnlocksScreen) jumpSection(dir int) {
	target := s.rows[s.cursor].section + dir
	if target < 0 || target >= len(s.sections) {
		return
	}
	for i, r := range s.rows {
		if r.kind == rowItem && r.section == target {
			s.cursor = i
			return
		}
	}
}

// adjustScroll ensures the cursor is visible within the viewport.
func (s *UnlocksScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	headerRow := s.cursor
	for headerRow > 0 && s.rows[headerRow-1].kind == rowSectionHeader {
		headerRow--
	}

	if headerRow < s.scrollOffset {
		s.scrollOffset = headerRow
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

func (s *UnlocksScreen) isUnlocked(it catalog.Item) bool {
	return it.IsAvailable(s.unlocked)
}

// selectItem opens the detail card for the item under the cursor.
func (s *UnlocksScreen) selectItem() tea.Cmd {
	r := s.rows[s.cursor]
	if r.kind != rowItem || r.item == nil {
		return nil
	}
	sticker, has := s.collected[r.item.ID]
	detail := newItemDetail(*r.item, s.sections[r.section], s.isUnlocked(*r.item), s.stars, sticker, has)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: detail}
	}
}

func (s *UnlocksScreen) renderSectionHeader(sec section, width int) string {
	label := "always"
	if sec.stars > 0 {
		label = fmt.Sprintf("%d ★", sec.stars)
	}
	name := fmt.Sprintf("%s  (%s)", strings.ToUpper(sec.title), label)

	fg := theme.Secondary
	if sec.stars > s.stars {
		fg = theme.TextDim
	}
	return lipgloss.NewStyle().
		Foreground(fg).
		Bold(true).
		Width(width).
		Padding(1, 0, 0, 2).
		Render(name)
}

func (s *UnlocksScreen) renderItemRow(r row, selected bool, width int) string {
	it := *r.item
	open := s.isUnlocked(it)

	icon, label := "🔒", fmt.Sprintf("%d more ★", s.sections[r.section].stars-s.stars)
	if open {
		icon, label = it.Emoji, "Ready"
	}

	nameWidth := max(width-36, 10)
	name := it.Name
	if len(name) > nameWidth {
		name = name[:nameWidth-1] + "…"
	}

	var nameStyle, labelStyle lipgloss.Style
	switch {
	case selected:
		nameStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		labelStyle = lipgloss.NewStyle().Foreground(theme.Primary)
	case open:
		nameStyle = lipgloss.NewStyle().Foreground(theme.Text)
		labelStyle = lipgloss.NewStyle().Foreground(theme.Success)
	default:
		nameStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
		labelStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
	}

	cursor := "  "
	if selected {
		cursor = "▸ "
	}

	mark := "  "
	if st, ok := s.collected[it.ID]; ok {
		mark = st.Rarity.Icon()
	}

	return fmt.Sprintf("  %s%s %s  %s  %s",
		cursor,
		icon,
		nameStyle.Render(fmt.Sprintf("%-*s", nameWidth, name)),
		mark,
		labelStyle.Render(fmt.Sprintf("%10s", label)),
	)
}
