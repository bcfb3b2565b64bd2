package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/peekaboo/internal/ui/theme"
)

// Choice is one picture card.
type Choice struct {
	Emoji string
	Label string
}

// MultiChoice lays out picture cards in rows and tracks the highlighted
// card. Cards ruled out by a wrong pick are crossed; the answer is shown
// once revealed.
type MultiChoice struct {
	Options  []Choice
	Selected int
	PerRow   int
	Crossed  map[int]bool
	Revealed int // index of the answer once shown, -1 before
}

// NewMultiChoice creates a picker with at most perRow cards per row.
func NewMultiChoice(options []Choice, perRow int) MultiChoice {
	if perRow <= 0 {
		perRow = 3
	}
	return MultiChoice{
		Options:  options,
		PerRow:   perRow,
		Crossed:  make(map[int]bool),
		Revealed: -1,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update moves the highlight with the arrow keys.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Options) == 0 {
		return m, nil
	}

	switch kmsg.String() {
	case "left", "h":
		m.Selected = (m.Selected - 1 + len(m.Options)) % len(m.Options)
	case "right", "l", "tab":
		m.Selected = (m.Selected + 1) % len(m.Options)
	case "up", "k":
		if m.Selected-m.PerRow >= 0 {
			m.Selected -= m.PerRow
		}
	case "down", "j":
		if m.Selected+m.PerRow < len(m.Options) {
			m.Selected += m.PerRow
		}
	}
	return m, nil
}

// Pick returns the card chosen by key: a number key picks that card,
// Enter or space picks the highlighted one.
func (m MultiChoice) Pick(key string) (int, bool) {
	switch key {
	case "enter", "space", " ":
		if m.Selected >= 0 && m.Selected < len(m.Options) {
			return m.Selected, true
		}
		return 0, false
	}
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		i := int(key[0] - '1')
		if i < len(m.Options) {
			return i, true
		}
	}
	return 0, false
}

// Cross marks a card as a wrong pick.
func (m *MultiChoice) Cross(i int) {
	m.Crossed[i] = true
}

// Reveal highlights the answer.
func (m *MultiChoice) Reveal(i int) {
	m.Revealed = i
}

// View renders the cards, centered in width.
func (m MultiChoice) View(width int) string {
	var rows []string
	for start := 0; start < len(m.Options); start += m.PerRow {
		end := min(start+m.PerRow, len(m.Options))
		var cards []string
		for i := start; i < end; i++ {
			cards = append(cards, m.card(i))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(rows, "\n"))
}

func (m MultiChoice) card(i int) string {
	opt := m.Options[i]
	border := theme.Border
	fg := theme.Text

	switch {
	case m.Revealed == i:
		border, fg = theme.Success, theme.Success
	case m.Crossed[i]:
		border, fg = theme.Error, theme.TextDim
	case i == m.Selected && m.Revealed < 0:
		border, fg = theme.ArcadeYellow, theme.ArcadeYellow
	}

	label := opt.Label
	if m.Crossed[i] {
		label = lipgloss.NewStyle().Strikethrough(true).Render(label)
	}
	body := fmt.Sprintf("%d\n\n%s\n%s", i+1, opt.Emoji, label)

	return lipgloss.NewStyle().
		Width(16).
		Align(lipgloss.Center).
		Foreground(fg).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Margin(0, 1).
		Render(body)
}
