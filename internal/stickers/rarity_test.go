package stickers

import "testing"

func TestRarityFor(t *testing.T) {
	tests := []struct {
		draw float64
		want Rarity
	}{
		{0.0, RarityLegendary},
		{0.0199, RarityLegendary},
		{0.02, RarityEpic},
		{0.0999, RarityEpic},
		{0.10, RarityRare},
		{0.3999, RarityRare},
		{0.40, RarityCommon},
		{0.9999, RarityCommon},
	}
	for _, tt := range tests {
		if got := RarityFor(tt.draw); got != tt.want {
			t.Errorf("RarityFor(%v) = %q, want %q", tt.draw, got, tt.want)
		}
	}
}

func TestRarity_Multiplier(t *testing.T) {
	tests := []struct {
		rarity Rarity
		want   int
	}{
		{RarityCommon, 1},
		{RarityRare, 2},
		{RarityEpic, 5},
		{RarityLegendary, 10},
	}
	for _, tt := range tests {
		if got := tt.rarity.Multiplier(); got != tt.want {
			t.Errorf("%s.Multiplier() = %d, want %d", tt.rarity, got, tt.want)
		}
	}
}

func TestRarity_Next(t *testing.T) {
	tests := []struct {
		from Rarity
		want Rarity
		ok   bool
	}{
		{RarityCommon, RarityRare, true},
		{RarityRare, RarityEpic, true},
		{RarityEpic, RarityLegendary, true},
		{RarityLegendary, RarityLegendary, false},
	}
	for _, tt := range tests {
		got, ok := tt.from.Next()
		if got != tt.want || ok != tt.ok {
			t.Errorf("%s.Next() = (%q, %v), want (%q, %v)", tt.from, got, ok, tt.want, tt.ok)
		}
	}
}

func TestRarity_DisplayName(t *testing.T) {
	for _, r := range AllRarities() {
		if r.DisplayName() == string(r) {
			t.Errorf("rarity %q has no display name", r)
		}
		if r.Color() == "" || r.Icon() == "" {
			t.Errorf("rarity %q missing color or icon", r)
		}
	}
}
