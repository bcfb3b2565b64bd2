package stickers

import (
	"cmp"
	"math"
	"slices"
	"time"

	"github.com/abhisek/peekaboo/internal/catalog"
)

// Sticker is the collectible earned for an item. There is at most one
// sticker per item; repeat awards may upgrade it.
type Sticker struct {
	ID          string           `json:"id"`
	ItemID      string           `json:"itemId"`
	Name        string           `json:"name"`
	Emoji       string           `json:"emoji"`
	Category    catalog.Category `json:"category"`
	Rarity      Rarity           `json:"rarity"`
	CollectedAt time.Time        `json:"collectedAt"`
	IsNew       bool             `json:"isNew"`
}

// Collection maps item IDs to stickers. The counters are derived from the
// map and rebuilt after every change.
type Collection struct {
	Stickers             map[string]Sticker `json:"stickers"`
	TotalCollected       int                `json:"totalCollected"`
	RarityCount          map[Rarity]int     `json:"rarityCount"`
	CompletionPercentage int                `json:"completionPercentage"`
}

// NewCollection returns an empty collection.
func NewCollection() Collection {
	c := Collection{Stickers: make(map[string]Sticker)}
	c.recompute(0)
	return c
}

// recompute rebuilds the counters from the sticker map.
func (c *Collection) recompute(catalogSize int) {
	if c.Stickers == nil {
		c.Stickers = make(map[string]Sticker)
	}
	c.TotalCollected = len(c.Stickers)
	c.RarityCount = make(map[Rarity]int, len(AllRarities()))
	for _, r := range AllRarities() {
		c.RarityCount[r] = 0
	}
	for _, s := range c.Stickers {
		c.RarityCount[s.Rarity]++
	}
	c.CompletionPercentage = completion(c.TotalCollected, catalogSize)
}

func completion(total, catalogSize int) int {
	if catalogSize <= 0 {
		return 0
	}
	pct := int(math.Round(float64(total) / float64(catalogSize) * 100))
	return min(100, pct)
}

// clone returns a deep copy safe to hand to callers.
func (c Collection) clone() Collection {
	cp := c
	cp.Stickers = make(map[string]Sticker, len(c.Stickers))
	for k, v := range c.Stickers {
		cp.Stickers[k] = v
	}
	cp.RarityCount = make(map[Rarity]int, len(c.RarityCount))
	for k, v := range c.RarityCount {
		cp.RarityCount[k] = v
	}
	return cp
}

// Sorted returns the stickers ordered by category, rarity (rarest first)
// and name.
func (c Collection) Sorted() []Sticker {
	out := make([]Sticker, 0, len(c.Stickers))
	for _, s := range c.Stickers {
		out = append(out, s)
	}
	slices.SortFunc(out, func(a, b Sticker) int {
		if n := cmp.Compare(a.Category, b.Category); n != 0 {
			return n
		}
		if n := cmp.Compare(rank(b.Rarity), rank(a.Rarity)); n != 0 {
			return n
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return out
}

// ByCategory returns the stickers of one category.
func (c Collection) ByCategory(cat catalog.Category) []Sticker {
	var out []Sticker
	for _, s := range c.Sorted() {
		if s.Category == cat {
			out = append(out, s)
		}
	}
	return out
}

func rank(r Rarity) int {
	return slices.Index(AllRarities(), r)
}
