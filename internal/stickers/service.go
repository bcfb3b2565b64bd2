package stickers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/peekaboo/internal/catalog"
	"github.com/abhisek/peekaboo/internal/rng"
	"github.com/abhisek/peekaboo/internal/store"
)

// RewardOutcome is what a correct answer earned.
type RewardOutcome struct {
	Sticker      Sticker
	IsNewSticker bool // first sticker for the item, or an accepted upgrade
	Upgraded     bool
	BonusPoints  int
}

// Service owns the sticker collection. Every mutation is written through
// to the KV store before the call returns; a failed write is logged and
// the in-memory collection stays authoritative.
type Service struct {
	kv          store.KV
	rng         rng.Source
	catalogSize int
	logger      *slog.Logger

	now   func() time.Time
	newID func() string

	coll Collection
}

// NewService loads the collection from kv. Missing or unreadable data
// starts an empty collection. A nil logger uses slog.Default().
func NewService(ctx context.Context, kv store.KV, src rng.Source, catalogSize int, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		kv:          kv,
		rng:         src,
		catalogSize: catalogSize,
		logger:      logger,
		now:         time.Now,
		newID:       uuid.NewString,
	}
	s.coll = s.load(ctx)
	return s
}

// AwardForCorrectAnswer grants or upgrades the sticker for item.
func (s *Service) AwardForCorrectAnswer(ctx context.Context, item catalog.Item) RewardOutcome {
	existing, ok := s.coll.Stickers[item.ID]
	if !ok {
		st := s.newSticker(item, RarityFor(s.rng.Float64()))
		s.coll.Stickers[item.ID] = st
		s.commit(ctx)
		return RewardOutcome{
			Sticker:      st,
			IsNewSticker: true,
			BonusPoints:  st.Rarity.Multiplier() * BasePoints,
		}
	}

	if s.rng.Float64() < upgradeAttemptChance {
		if next, ok := existing.Rarity.Next(); ok && s.rng.Float64() < upgradeAcceptChance {
			st := s.newSticker(item, next)
			s.coll.Stickers[item.ID] = st
			s.commit(ctx)
			s.logger.Debug("sticker upgraded", "item", item.ID, "from", existing.Rarity, "to", next)
			return RewardOutcome{
				Sticker:      st,
				IsNewSticker: true,
				Upgraded:     true,
				BonusPoints:  st.Rarity.Multiplier() * BasePoints,
			}
		}
	}

	s.commit(ctx)
	return RewardOutcome{
		Sticker:     existing,
		BonusPoints: existing.Rarity.Multiplier() * BasePoints,
	}
}

// MarkViewed clears the new flag on the given stickers, or on every
// sticker when ids is empty.
func (s *Service) MarkViewed(ctx context.Context, ids []string) {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	for itemID, st := range s.coll.Stickers {
		if len(want) > 0 && !want[st.ID] {
			continue
		}
		st.IsNew = false
		s.coll.Stickers[itemID] = st
	}
	s.commit(ctx)
}

// Collection returns a copy of the current collection.
func (s *Service) Collection() Collection {
	return s.coll.clone()
}

// Has reports whether a sticker exists for the item.
func (s *Service) Has(itemID string) bool {
	_, ok := s.coll.Stickers[itemID]
	return ok
}

// NewCount returns how many stickers carry the new flag.
func (s *Service) NewCount() int {
	n := 0
	for _, st := range s.coll.Stickers {
		if st.IsNew {
			n++
		}
	}
	return n
}

// Reset empties the collection.
func (s *Service) Reset(ctx context.Context) error {
	s.coll = NewCollection()
	s.coll.recompute(s.catalogSize)
	if err := s.kv.Delete(ctx, store.KeyStickerCollection); err != nil {
		s.logger.Warn("reset sticker collection", "error", err)
		return err
	}
	return nil
}

func (s *Service) newSticker(item catalog.Item, r Rarity) Sticker {
	return Sticker{
		ID:          s.newID(),
		ItemID:      item.ID,
		Name:        item.Name,
		Emoji:       item.Emoji,
		Category:    item.Category,
		Rarity:      r,
		CollectedAt: s.now(),
		IsNew:       true,
	}
}

// commit recomputes the counters and writes the collection through.
func (s *Service) commit(ctx context.Context) {
	s.coll.recompute(s.catalogSize)
	s.persist(ctx)
}

func (s *Service) persist(ctx context.Context) {
	data, err := json.Marshal(s.coll)
	if err != nil {
		s.logger.Warn("encode sticker collection", "error", err)
		return
	}
	if err := s.kv.Put(ctx, store.KeyStickerCollection, data); err != nil {
		s.logger.Warn("save sticker collection", "error", err)
	}
}

func (s *Service) load(ctx context.Context) Collection {
	coll := NewCollection()
	data, err := s.kv.Get(ctx, store.KeyStickerCollection)
	switch {
	case errors.Is(err, store.ErrNotFound):
	case err != nil:
		s.logger.Warn("load sticker collection, starting empty", "error", err)
	default:
		var stored Collection
		if err := json.Unmarshal(data, &stored); err != nil {
			s.logger.Warn("decode sticker collection, starting empty", "error", err)
		} else if stored.Stickers != nil {
			coll.Stickers = stored.Stickers
		}
	}
	coll.recompute(s.catalogSize)
	return coll
}
