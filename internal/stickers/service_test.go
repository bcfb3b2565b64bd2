package stickers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/peekaboo/internal/catalog"
	"github.com/abhisek/peekaboo/internal/rng"
	"github.com/abhisek/peekaboo/internal/store"
)

var (
	cow  = catalog.Item{ID: "cow", Name: "Cow", Emoji: "🐄", Category: catalog.CategoryAnimals, Difficulty: catalog.DifficultyEasy, Unlocked: true}
	pig  = catalog.Item{ID: "pig", Name: "Pig", Emoji: "🐷", Category: catalog.CategoryAnimals, Difficulty: catalog.DifficultyEasy, Unlocked: true}
	lion = catalog.Item{ID: "lion", Name: "Lion", Emoji: "🦁", Category: catalog.CategoryAnimals, Difficulty: catalog.DifficultyHard}
)

var quiet = slog.New(slog.DiscardHandler)

func newTestService(t *testing.T, src rng.Source) (*Service, *store.Memory) {
	t.Helper()
	kv := store.NewMemory()
	svc := NewService(context.Background(), kv, src, 10, quiet)
	n := 0
	svc.newID = func() string { n++; return fmt.Sprintf("st-%d", n) }
	svc.now = func() time.Time { return time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC) }
	return svc, kv
}

func TestAward_FirstStickerIsNew(t *testing.T) {
	svc, _ := newTestService(t, &rng.Sequence{Floats: []float64{0.05}})
	out := svc.AwardForCorrectAnswer(context.Background(), cow)

	assert.True(t, out.IsNewSticker)
	assert.False(t, out.Upgraded)
	assert.Equal(t, RarityEpic, out.Sticker.Rarity)
	assert.Equal(t, 50, out.BonusPoints)
	assert.True(t, out.Sticker.IsNew)
	assert.Equal(t, "cow", out.Sticker.ItemID)
	assert.Equal(t, "🐄", out.Sticker.Emoji)
}

func TestAward_RepeatWithoutUpgrade(t *testing.T) {
	// 0.5 -> common; 0.5 -> no upgrade attempt.
	svc, _ := newTestService(t, &rng.Sequence{Floats: []float64{0.5, 0.5}})
	ctx := context.Background()

	first := svc.AwardForCorrectAnswer(ctx, cow)
	second := svc.AwardForCorrectAnswer(ctx, cow)

	assert.False(t, second.IsNewSticker)
	assert.Equal(t, first.Sticker, second.Sticker)
	assert.Equal(t, 10, second.BonusPoints)
	assert.Equal(t, 1, svc.Collection().TotalCollected)
}

func TestAward_RepeatWithUpgrade(t *testing.T) {
	// 0.3 -> rare; 0.1 attempts an upgrade; 0.6 accepts it.
	svc, _ := newTestService(t, &rng.Sequence{Floats: []float64{0.3, 0.1, 0.6}})
	ctx := context.Background()

	first := svc.AwardForCorrectAnswer(ctx, cow)
	require.Equal(t, RarityRare, first.Sticker.Rarity)

	second := svc.AwardForCorrectAnswer(ctx, cow)
	assert.True(t, second.IsNewSticker)
	assert.True(t, second.Upgraded)
	assert.Equal(t, RarityEpic, second.Sticker.Rarity)
	assert.Equal(t, 50, second.BonusPoints)

	coll := svc.Collection()
	assert.Equal(t, 1, coll.TotalCollected)
	assert.Equal(t, 1, coll.RarityCount[RarityEpic])
	assert.Equal(t, 0, coll.RarityCount[RarityRare])
}

func TestAward_UpgradeRejected(t *testing.T) {
	// common; attempt (0.1); rejected (0.8).
	svc, _ := newTestService(t, &rng.Sequence{Floats: []float64{0.9, 0.1, 0.8}})
	ctx := context.Background()

	svc.AwardForCorrectAnswer(ctx, cow)
	out := svc.AwardForCorrectAnswer(ctx, cow)
	assert.False(t, out.IsNewSticker)
	assert.Equal(t, RarityCommon, out.Sticker.Rarity)
}

func TestAward_LegendaryNeverChanges(t *testing.T) {
	svc, _ := newTestService(t, &rng.Sequence{Floats: []float64{0.01, 0.0, 0.0}})
	ctx := context.Background()

	svc.AwardForCorrectAnswer(ctx, lion)
	out := svc.AwardForCorrectAnswer(ctx, lion)
	assert.False(t, out.IsNewSticker)
	assert.Equal(t, RarityLegendary, out.Sticker.Rarity)
	assert.Equal(t, 100, out.BonusPoints)
}

func TestAward_RarityDistribution(t *testing.T) {
	const draws = 50000
	src := rng.New(2024)
	counts := map[Rarity]int{}
	for i := 0; i < draws; i++ {
		counts[RarityFor(src.Float64())]++
	}

	want := map[Rarity]float64{
		RarityCommon:    0.60,
		RarityRare:      0.30,
		RarityEpic:      0.08,
		RarityLegendary: 0.02,
	}
	for r, p := range want {
		got := float64(counts[r]) / draws
		assert.InDelta(t, p, got, 0.01, "rarity %s", r)
	}
}

func TestAward_FreshDrawsThroughService(t *testing.T) {
	svc, _ := newTestService(t, rng.New(77))
	ctx := context.Background()

	const n = 20000
	counts := map[Rarity]int{}
	for i := 0; i < n; i++ {
		svc.coll = NewCollection()
		out := svc.AwardForCorrectAnswer(ctx, cow)
		require.True(t, out.IsNewSticker)
		counts[out.Sticker.Rarity]++
	}
	assert.InDelta(t, 0.60, float64(counts[RarityCommon])/n, 0.015)
	assert.InDelta(t, 0.02, float64(counts[RarityLegendary])/n, 0.005)
}

func TestAward_ReawardRate(t *testing.T) {
	svc, _ := newTestService(t, rng.New(31337))
	ctx := context.Background()

	const n = 20000
	newCount := 0
	for i := 0; i < n; i++ {
		svc.coll = NewCollection()
		svc.coll.Stickers[cow.ID] = Sticker{ID: "seed", ItemID: cow.ID, Rarity: RarityCommon}
		if svc.AwardForCorrectAnswer(ctx, cow).IsNewSticker {
			newCount++
		}
	}
	assert.InDelta(t, 0.14, float64(newCount)/n, 0.015)
}

func TestAward_WritesThrough(t *testing.T) {
	svc, kv := newTestService(t, &rng.Sequence{Floats: []float64{0.5, 0.5}})
	ctx := context.Background()
	svc.AwardForCorrectAnswer(ctx, cow)
	svc.AwardForCorrectAnswer(ctx, pig)

	data, err := kv.Get(ctx, store.KeyStickerCollection)
	require.NoError(t, err)
	var stored Collection
	require.NoError(t, json.Unmarshal(data, &stored))
	assert.Len(t, stored.Stickers, 2)
	assert.Equal(t, 2, stored.TotalCollected)
	assert.Equal(t, 20, stored.CompletionPercentage)

	// A new service over the same store sees the same collection.
	reloaded := NewService(ctx, kv, rng.New(1), 10, quiet)
	assert.Equal(t, 2, reloaded.Collection().TotalCollected)
	assert.True(t, reloaded.Has("pig"))
}

func TestAward_WriteFailureKeepsMemoryState(t *testing.T) {
	svc, kv := newTestService(t, &rng.Sequence{Floats: []float64{0.5}})
	kv.FailWrites = true
	kv.WriteErr = errors.New("disk full")

	out := svc.AwardForCorrectAnswer(context.Background(), cow)
	assert.True(t, out.IsNewSticker)
	assert.Equal(t, 1, svc.Collection().TotalCollected)
}

func TestLoad_CorruptDataStartsEmpty(t *testing.T) {
	kv := store.NewMemory()
	ctx := context.Background()
	require.NoError(t, kv.Put(ctx, store.KeyStickerCollection, []byte("{not json")))

	svc := NewService(ctx, kv, rng.New(1), 10, quiet)
	assert.Equal(t, 0, svc.Collection().TotalCollected)
}

func TestLoad_RecomputesCounters(t *testing.T) {
	kv := store.NewMemory()
	ctx := context.Background()
	// Stored counters are stale on purpose; the map is the source of truth.
	raw := `{"stickers":{"cow":{"id":"a","itemId":"cow","rarity":"epic"},"pig":{"id":"b","itemId":"pig","rarity":"common"}},"totalCollected":9,"completionPercentage":99}`
	require.NoError(t, kv.Put(ctx, store.KeyStickerCollection, []byte(raw)))

	coll := NewService(ctx, kv, rng.New(1), 3, quiet).Collection()
	assert.Equal(t, 2, coll.TotalCollected)
	assert.Equal(t, 67, coll.CompletionPercentage)
	assert.Equal(t, 1, coll.RarityCount[RarityEpic])
	assert.Equal(t, 1, coll.RarityCount[RarityCommon])
}

func TestCompletion_Capped(t *testing.T) {
	assert.Equal(t, 100, completion(12, 10))
	assert.Equal(t, 0, completion(3, 0))
	assert.Equal(t, 33, completion(1, 3))
}

func TestMarkViewed(t *testing.T) {
	svc, _ := newTestService(t, &rng.Sequence{Floats: []float64{0.5, 0.5, 0.5}})
	ctx := context.Background()
	a := svc.AwardForCorrectAnswer(ctx, cow)
	svc.AwardForCorrectAnswer(ctx, pig)
	svc.AwardForCorrectAnswer(ctx, lion)
	require.Equal(t, 3, svc.NewCount())

	svc.MarkViewed(ctx, []string{a.Sticker.ID})
	assert.Equal(t, 2, svc.NewCount())
	assert.False(t, svc.Collection().Stickers["cow"].IsNew)

	svc.MarkViewed(ctx, nil)
	first := svc.Collection()
	assert.Equal(t, 0, svc.NewCount())

	svc.MarkViewed(ctx, nil)
	assert.Equal(t, first, svc.Collection())
}

func TestReset(t *testing.T) {
	svc, kv := newTestService(t, &rng.Sequence{Floats: []float64{0.5}})
	ctx := context.Background()
	svc.AwardForCorrectAnswer(ctx, cow)

	require.NoError(t, svc.Reset(ctx))
	assert.Equal(t, 0, svc.Collection().TotalCollected)
	_, err := kv.Get(ctx, store.KeyStickerCollection)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCollection_Sorted(t *testing.T) {
	c := NewCollection()
	c.Stickers["b"] = Sticker{Name: "Banana", Category: catalog.CategoryFruits, Rarity: RarityCommon}
	c.Stickers["c"] = Sticker{Name: "Cow", Category: catalog.CategoryAnimals, Rarity: RarityCommon}
	c.Stickers["l"] = Sticker{Name: "Lion", Category: catalog.CategoryAnimals, Rarity: RarityLegendary}

	got := c.Sorted()
	require.Len(t, got, 3)
	assert.Equal(t, "Lion", got[0].Name)
	assert.Equal(t, "Cow", got[1].Name)
	assert.Equal(t, "Banana", got[2].Name)

	assert.Len(t, c.ByCategory(catalog.CategoryAnimals), 2)
}
