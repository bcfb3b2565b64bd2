package progress

import (
	"slices"

	"github.com/abhisek/peekaboo/internal/catalog"
)

// Threshold unlocks one content group once lifetime stars reach Stars.
type Threshold struct {
	Stars    int
	Category catalog.Category
	Group    string
	Label    string
}

// Policy maps lifetime stars to unlocked content. It only ever adds IDs
// and depends on nothing but the star total.
type Policy struct {
	cat        *catalog.Catalog
	thresholds []Threshold
}

// DefaultThresholds returns the animal habitat unlocks in star order.
func DefaultThresholds() []Threshold {
	return []Threshold{
		{Stars: 10, Category: catalog.CategoryAnimals, Group: "forest", Label: "Forest animals"},
		{Stars: 25, Category: catalog.CategoryAnimals, Group: "ocean", Label: "Ocean animals"},
		{Stars: 50, Category: catalog.CategoryAnimals, Group: "jungle", Label: "Jungle animals"},
		{Stars: 100, Category: catalog.CategoryAnimals, Group: "arctic", Label: "Arctic animals"},
		{Stars: 100, Category: catalog.CategoryAnimals, Group: "desert", Label: "Desert animals"},
	}
}

// NewPolicy returns a policy over cat. Nil thresholds use the defaults.
func NewPolicy(cat *catalog.Catalog, thresholds []Threshold) *Policy {
	if thresholds == nil {
		thresholds = DefaultThresholds()
	}
	ts := slices.Clone(thresholds)
	slices.SortStableFunc(ts, func(a, b Threshold) int { return a.Stars - b.Stars })
	return &Policy{cat: cat, thresholds: ts}
}

// Thresholds returns the thresholds in star order.
func (p *Policy) Thresholds() []Threshold {
	return slices.Clone(p.thresholds)
}

// UnlockedIDs returns every item ID unlocked at totalStars, including the
// catalog's static unlocks, in catalog order.
func (p *Policy) UnlockedIDs(totalStars int) []string {
	ids := p.cat.StaticUnlocks()
	for _, t := range p.thresholds {
		if totalStars < t.Stars {
			break
		}
		for _, it := range p.cat.ByGroup(t.Category, t.Group) {
			ids = append(ids, it.ID)
		}
	}
	return ids
}

// Apply merges the unlocks earned at totalStars into current and returns
// the IDs that were not there before. current is never shrunk.
func (p *Policy) Apply(totalStars int, current map[string]bool) []string {
	var added []string
	for _, id := range p.UnlockedIDs(totalStars) {
		if !current[id] {
			current[id] = true
			added = append(added, id)
		}
	}
	return added
}

// Next returns the first threshold not yet reached, if any.
func (p *Policy) Next(totalStars int) (Threshold, bool) {
	for _, t := range p.thresholds {
		if totalStars < t.Stars {
			return t, true
		}
	}
	return Threshold{}, false
}
