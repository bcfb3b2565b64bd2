package audio

import (
	"log/slog"
	"testing"
)

func TestBell_RingsOnlyForRewards(t *testing.T) {
	b := NewBell(slog.New(slog.DiscardHandler))

	b.Play(EventClick)
	b.Play(EventIncorrect)
	b.Play(EventWhoosh)
	if got := b.Drain(); got != "" {
		t.Fatalf("unexpected bell for non-reward cues: %q", got)
	}

	b.Play(EventCorrect)
	b.Play(EventCelebration)
	b.PlayItem("cow")
	if got := b.Drain(); got != "\a\a" {
		t.Errorf("Drain = %q, want two bells", got)
	}
	if got := b.Drain(); got != "" {
		t.Errorf("second Drain = %q, want empty", got)
	}
}

func TestRecorder(t *testing.T) {
	var r Recorder
	var p Player = &r
	p.Play(EventClick)
	p.PlayItem("owl")
	if len(r.Events) != 1 || r.Events[0] != EventClick {
		t.Errorf("events = %v", r.Events)
	}
	if len(r.Items) != 1 || r.Items[0] != "owl" {
		t.Errorf("items = %v", r.Items)
	}
}
