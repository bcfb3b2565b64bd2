package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/peekaboo/internal/ui/theme"
)

// MenuItem is one entry of a Menu. Disabled items are shown with a lock
// and the cursor skips them.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical list with a cursor that wraps around.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu returns a menu with the cursor on the first enabled item.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items, Selected: -1}
	m.move(1)
	if m.Selected < 0 {
		m.Selected = 0
	}
	return m
}

func (m Menu) Init() tea.Cmd {
	return nil
}

// move steps the cursor by delta, skipping disabled items. It stays put
// when nothing else is enabled.
func (m *Menu) move(delta int) {
	n := len(m.Items)
	for step := 1; step <= n; step++ {
		i := ((m.Selected+delta*step)%n + n) % n
		if !m.Items[i].Disabled {
			m.Selected = i
			return
		}
	}
}

// Update moves the cursor and runs the selected item's Action on enter.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		m.move(-1)
	case "down", "j":
		m.move(1)
	case "enter":
		if item := m.Items[m.Selected]; item.Action != nil && !item.Disabled {
			return m, item.Action()
		}
	}
	return m, nil
}

// Labels returns the item labels in order.
func (m Menu) Labels() []string {
	labels := make([]string, len(m.Items))
	for i, item := range m.Items {
		labels[i] = item.Label
	}
	return labels
}

// DisabledSet returns the indexes of disabled items.
func (m Menu) DisabledSet() map[int]bool {
	set := make(map[int]bool)
	for i, item := range m.Items {
		if item.Disabled {
			set[i] = true
		}
	}
	return set
}

func (m Menu) View() string {
	cursor := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	plain := lipgloss.NewStyle().Foreground(theme.Text)
	locked := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder
	for i, item := range m.Items {
		switch {
		case item.Disabled:
			b.WriteString(locked.Render("  🔒 " + item.Label))
		case i == m.Selected:
			b.WriteString(cursor.Render("  ▸ " + item.Label))
		default:
			b.WriteString(plain.Render("    " + item.Label))
		}
		b.WriteString("\n")
	}
	return b.String()
}
