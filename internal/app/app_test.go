package app

import (
	"log/slog"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/peekaboo/internal/audio"
)

func TestRingCmd_SendsQueuedBellsThroughProgram(t *testing.T) {
	bell := audio.NewBell(slog.New(slog.DiscardHandler))
	m := AppModel{bell: bell}

	if cmd := m.ringCmd(); cmd != nil {
		t.Fatal("expected no command without queued rings")
	}

	bell.Play(audio.EventCorrect)
	cmd := m.ringCmd()
	if cmd == nil {
		t.Fatal("expected a command for the queued ring")
	}
	raw, ok := cmd().(tea.RawMsg)
	if !ok {
		t.Fatalf("expected tea.RawMsg, got %T", cmd())
	}
	if raw.Msg != "\a" {
		t.Errorf("raw = %q, want one bell", raw.Msg)
	}
	if m.ringCmd() != nil {
		t.Error("rings must be sent once")
	}
}

func TestRingCmd_NoBell(t *testing.T) {
	if cmd := (AppModel{}).ringCmd(); cmd != nil {
		t.Error("expected nil command when sound is off")
	}
}
