package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"

	"github.com/abhisek/peekaboo/internal/screen"
)

// stubScreen counts Init calls and forwarded messages.
type stubScreen struct {
	title string
	inits int
	msgs  int
}

func (s *stubScreen) Init() tea.Cmd {
	s.inits++
	return nil
}

func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	s.msgs++
	return s, nil
}

func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

func titles(r *Router) []string {
	out := make([]string, 0, r.Depth())
	for _, s := range r.stack {
		out = append(out, s.Title())
	}
	return out
}

func TestNavigation(t *testing.T) {
	tests := []struct {
		name string
		msgs []tea.Msg
		want []string
	}{
		{
			name: "push",
			msgs: []tea.Msg{PushScreenMsg{Screen: &stubScreen{title: "play"}}},
			want: []string{"home", "play"},
		},
		{
			name: "push then pop",
			msgs: []tea.Msg{PushScreenMsg{Screen: &stubScreen{title: "play"}}, PopScreenMsg{}},
			want: []string{"home"},
		},
		{
			name: "pop at root is a no-op",
			msgs: []tea.Msg{PopScreenMsg{}, PopScreenMsg{}},
			want: []string{"home"},
		},
		{
			name: "replace keeps depth",
			msgs: []tea.Msg{
				PushScreenMsg{Screen: &stubScreen{title: "play"}},
				ReplaceScreenMsg{Screen: &stubScreen{title: "game"}},
				ReplaceScreenMsg{Screen: &stubScreen{title: "well done"}},
			},
			want: []string{"home", "well done"},
		},
		{
			name: "replace root",
			msgs: []tea.Msg{ReplaceScreenMsg{Screen: &stubScreen{title: "menu"}}},
			want: []string{"menu"},
		},
		{
			name: "pop to root",
			msgs: []tea.Msg{
				PushScreenMsg{Screen: &stubScreen{title: "stickers"}},
				PushScreenMsg{Screen: &stubScreen{title: "detail"}},
				PopToRootMsg{},
			},
			want: []string{"home"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(&stubScreen{title: "home"})
			for _, msg := range tt.msgs {
				r.Update(msg)
			}
			assert.Equal(t, tt.want, titles(r))
			assert.Equal(t, tt.want[len(tt.want)-1], r.View(80, 24))
		})
	}
}

func TestOpenedScreensAreInitialised(t *testing.T) {
	pushed := &stubScreen{title: "pushed"}
	replaced := &stubScreen{title: "replaced"}
	r := New(&stubScreen{title: "home"})

	r.Update(PushScreenMsg{Screen: pushed})
	r.Update(ReplaceScreenMsg{Screen: replaced})

	assert.Equal(t, 1, pushed.inits)
	assert.Equal(t, 1, replaced.inits)
}

func TestUpdateForwardsToActiveOnly(t *testing.T) {
	bottom := &stubScreen{title: "home"}
	top := &stubScreen{title: "play"}
	r := New(bottom)
	r.Update(PushScreenMsg{Screen: top})

	r.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	r.Update(tea.KeyPressMsg{Code: 'y', Text: "y"})

	assert.Equal(t, 2, top.msgs)
	assert.Zero(t, bottom.msgs)
}
