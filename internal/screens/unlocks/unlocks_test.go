package unlocks

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/peekaboo/internal/catalog"
	"github.com/abhisek/peekaboo/internal/progress"
	"github.com/abhisek/peekaboo/internal/router"
	"github.com/abhisek/peekaboo/internal/session"
	"github.com/abhisek/peekaboo/internal/store"
)

func testProgress(t *testing.T, stars int) *progress.Service {
	t.Helper()
	ctx := context.Background()
	svc := progress.NewService(ctx, store.NewMemory(), catalog.Default(), nil, slog.New(slog.DiscardHandler))
	if stars > 0 {
		svc.RecordSession(ctx, session.Summary{
			Mode: session.ModeFreePlay, Rounds: stars, Played: stars, Score: stars, Stars: stars,
			Duration: time.Minute, Finished: true,
		})
	}
	return svc
}

func itemRow(t *testing.T, s *UnlocksScreen, id string) int {
	t.Helper()
	for i, r := range s.rows {
		if r.kind == rowItem && r.item.ID == id {
			return i
		}
	}
	t.Fatalf("no row for %q", id)
	return -1
}

func TestUnlocks_Title(t *testing.T) {
	s := New(testProgress(t, 0), nil)
	if s.Title() != "Unlocks" {
		t.Errorf("Title = %q, want %q", s.Title(), "Unlocks")
	}
}

func TestUnlocks_Sections(t *testing.T) {
	s := New(testProgress(t, 0), nil)

	if s.rows[s.cursor].kind != rowItem {
		t.Fatal("cursor should start on an item")
	}
	var titles []string
	for _, sec := range s.sections {
		titles = append(titles, sec.title)
	}
	joined := strings.Join(titles, ",")
	for _, want := range []string{"Farm animals", "Forest animals", "Ocean animals"} {
		if !strings.Contains(joined, want) {
			t.Errorf("sections %q missing %q", joined, want)
		}
	}
	if s.sections[0].stars != 0 {
		t.Error("always-playable groups come first")
	}
}

func TestUnlocks_LockState(t *testing.T) {
	s := New(testProgress(t, 0), nil)
	bear := s.rows[itemRow(t, s, "bear")].item
	cow := s.rows[itemRow(t, s, "cow")].item
	if s.isUnlocked(*bear) {
		t.Error("bear should be locked with no stars")
	}
	if !s.isUnlocked(*cow) {
		t.Error("cow should always be playable")
	}

	s = New(testProgress(t, 10), nil)
	if !s.isUnlocked(*s.rows[itemRow(t, s, "bear")].item) {
		t.Error("bear should unlock at 10 stars")
	}
	if !strings.Contains(s.View(100, 40), "Ocean animals at 25") {
		t.Error("expected next unlock in the view")
	}
}

func TestUnlocks_Navigation(t *testing.T) {
	s := New(testProgress(t, 0), nil)
	start := s.cursor

	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if s.cursor != start {
		t.Error("cursor should not move above the first item")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if s.rows[s.cursor].section != 1 {
		t.Errorf("tab should jump to section 1, got %d", s.rows[s.cursor].section)
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if s.cursor != start {
		t.Error("shift+tab should return to the first section")
	}

	for i := 0; i < 100; i++ {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	if s.rows[s.cursor].kind != rowItem || s.cursor != len(s.rows)-1 {
		t.Error("cursor should stop on the last item")
	}
	if view := s.View(100, 20); view == "" {
		t.Error("expected non-empty view after scrolling")
	}
}

func TestUnlocks_DetailScreen(t *testing.T) {
	s := New(testProgress(t, 0), nil)
	s.cursor = itemRow(t, s, "bear")

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected push command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	detail, ok := push.Screen.(*ItemDetailScreen)
	if !ok {
		t.Fatalf("expected detail screen, got %T", push.Screen)
	}
	if detail.Title() != "Bear" {
		t.Errorf("detail title = %q", detail.Title())
	}
	view := detail.View(80, 24)
	if !strings.Contains(view, "10 more") || !strings.Contains(view, "No sticker yet") {
		t.Error("expected lock requirement and sticker state")
	}
}
