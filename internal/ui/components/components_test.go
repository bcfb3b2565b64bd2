package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testChoices() []Choice {
	return []Choice{
		{Emoji: "🐄", Label: "Cow"},
		{Emoji: "🐷", Label: "Pig"},
		{Emoji: "🐔", Label: "Chicken"},
		{Emoji: "🐎", Label: "Horse"},
	}
}

func TestMultiChoice_Pick(t *testing.T) {
	m := NewMultiChoice(testChoices(), 3)

	tests := []struct {
		key  string
		want int
		ok   bool
	}{
		{"1", 0, true},
		{"4", 3, true},
		{"5", 0, false},
		{"0", 0, false},
		{"x", 0, false},
		{"enter", 0, true},
	}
	for _, tt := range tests {
		got, ok := m.Pick(tt.key)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("Pick(%q) = %d, %v; want %d, %v", tt.key, got, ok, tt.want, tt.ok)
		}
	}
}

func TestMultiChoice_Navigation(t *testing.T) {
	m := NewMultiChoice(testChoices(), 3)

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if m.Selected != 3 {
		t.Errorf("left from first = %d, want 3 (wraps)", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if m.Selected != 0 {
		t.Errorf("right from last = %d, want 0 (wraps)", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 3 {
		t.Errorf("down = %d, want 3", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 3 {
		t.Errorf("down past last row = %d, want 3", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 0 {
		t.Errorf("up = %d, want 0", m.Selected)
	}

	if i, _ := m.Pick("enter"); i != 0 {
		t.Errorf("enter picks %d, want highlighted 0", i)
	}
}

func TestMultiChoice_View(t *testing.T) {
	m := NewMultiChoice(testChoices(), 3)
	m.Cross(1)
	m.Reveal(2)
	if view := m.View(80); view == "" {
		t.Error("expected non-empty view")
	}
	if !m.Crossed[1] || m.Revealed != 2 {
		t.Errorf("crossed=%v revealed=%d", m.Crossed, m.Revealed)
	}
}

func TestMenu_SkipsDisabled(t *testing.T) {
	var ran string
	m := NewMenu([]MenuItem{
		{Label: "A", Disabled: true},
		{Label: "B", Action: func() tea.Cmd { ran = "B"; return nil }},
		{Label: "C", Disabled: true},
		{Label: "D", Action: func() tea.Cmd { ran = "D"; return nil }},
	})
	if m.Selected != 1 {
		t.Fatalf("initial selection = %d, want first enabled 1", m.Selected)
	}

	m, _ = m.Update(key('j'))
	if m.Selected != 3 {
		t.Errorf("down = %d, want 3 (skips disabled)", m.Selected)
	}
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if ran != "D" {
		t.Errorf("ran %q, want D", ran)
	}

	if got := m.DisabledSet(); !got[0] || !got[2] || got[1] {
		t.Errorf("DisabledSet = %v", got)
	}
	if got := m.Labels(); len(got) != 4 || got[3] != "D" {
		t.Errorf("Labels = %v", got)
	}
}

func TestTextInput_Matches(t *testing.T) {
	ti := NewTextInput("name", 20)
	if !ti.Matches("Anything") {
		t.Error("empty input should match everything")
	}
	ti.Model.SetValue("  PEN ")
	if !ti.Matches("Penguin") {
		t.Error("expected case-insensitive match")
	}
	if ti.Matches("Puffin") {
		t.Error("unexpected match")
	}
	ti.Clear()
	if ti.Value() != "" {
		t.Errorf("Value after Clear = %q", ti.Value())
	}
}

func TestFractionBar(t *testing.T) {
	if p := NewFractionBar("", 1, 4, 30); p.Percent != 0.25 {
		t.Errorf("Percent = %v, want 0.25", p.Percent)
	}
	if p := NewFractionBar("", 3, 0, 30); p.Percent != 0 {
		t.Errorf("Percent with zero total = %v, want 0", p.Percent)
	}
}

func TestMenu_WrapsAround(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "A"}, {Label: "B"}, {Label: "C", Disabled: true}})

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 1 {
		t.Errorf("up from first = %d, want 1 (wraps past disabled)", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 0 {
		t.Errorf("down from last enabled = %d, want 0", m.Selected)
	}
}

func TestMenu_AllDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "A", Disabled: true}, {Label: "B", Disabled: true}})
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 0 {
		t.Errorf("Selected = %d, want 0", m.Selected)
	}
	if _, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter}); cmd != nil {
		t.Error("disabled item should not run")
	}
}

func TestContentWidth(t *testing.T) {
	tests := []struct{ frame, want int }{
		{10, 20},
		{50, 44},
		{200, 60},
	}
	for _, tt := range tests {
		if got := ContentWidth(tt.frame); got != tt.want {
			t.Errorf("ContentWidth(%d) = %d, want %d", tt.frame, got, tt.want)
		}
	}
}
