package catalog

import (
	_ "embed"
	"fmt"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed items.yaml
var itemsYAML []byte

type catalogFile struct {
	Items []Item `yaml:"items"`
}

// Catalog is a read-only registry of learnable items. It is safe for
// concurrent use once built.
type Catalog struct {
	items      []Item
	byID       map[string]*Item
	byCategory map[Category][]Item
	byTier     map[Category]map[Difficulty][]Item
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog built from the embedded item list. It panics
// if the embedded data is invalid, which is a build-time defect.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(itemsYAML)
		if err != nil {
			panic(fmt.Sprintf("catalog: embedded items: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Parse decodes a YAML item list and builds a catalog from it.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	return New(f.Items)
}

// New builds a catalog from items after validating them.
func New(items []Item) (*Catalog, error) {
	if err := validateItems(items); err != nil {
		return nil, err
	}

	c := &Catalog{
		items:      slices.Clone(items),
		byID:       make(map[string]*Item, len(items)),
		byCategory: make(map[Category][]Item),
		byTier:     make(map[Category]map[Difficulty][]Item),
	}
	for i := range c.items {
		it := &c.items[i]
		c.byID[it.ID] = it
		c.byCategory[it.Category] = append(c.byCategory[it.Category], *it)
		if c.byTier[it.Category] == nil {
			c.byTier[it.Category] = make(map[Difficulty][]Item)
		}
		c.byTier[it.Category][it.Difficulty] = append(c.byTier[it.Category][it.Difficulty], *it)
	}
	return c, nil
}

// Get returns the item with the given ID.
func (c *Catalog) Get(id string) (Item, error) {
	it, ok := c.byID[id]
	if !ok {
		return Item{}, fmt.Errorf("item not found: %q", id)
	}
	return *it, nil
}

// All returns every item in catalog order.
func (c *Catalog) All() []Item {
	return slices.Clone(c.items)
}

// Size returns the number of collectible items.
func (c *Catalog) Size() int {
	return len(c.items)
}

// ByCategory returns all items in the category in catalog order.
func (c *Catalog) ByCategory(cat Category) []Item {
	return slices.Clone(c.byCategory[cat])
}

// ByTier returns the items of a category at one difficulty.
func (c *Catalog) ByTier(cat Category, d Difficulty) []Item {
	return slices.Clone(c.byTier[cat][d])
}

// ByGroup returns the items of a category carrying the given group tag.
func (c *Catalog) ByGroup(cat Category, group string) []Item {
	var out []Item
	for _, it := range c.byCategory[cat] {
		if it.Group == group {
			out = append(out, it)
		}
	}
	return out
}

// Available filters items down to those playable with the unlocked set.
func Available(items []Item, unlocked map[string]bool) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if it.IsAvailable(unlocked) {
			out = append(out, it)
		}
	}
	return out
}

// StaticUnlocks returns the IDs of items unlocked without any progress.
func (c *Catalog) StaticUnlocks() []string {
	var ids []string
	for _, it := range c.items {
		if it.Unlocked {
			ids = append(ids, it.ID)
		}
	}
	return ids
}

// CountAvailable counts the playable items of a category.
func (c *Catalog) CountAvailable(cat Category, unlocked map[string]bool) int {
	n := 0
	for _, it := range c.byCategory[cat] {
		if it.IsAvailable(unlocked) {
			n++
		}
	}
	return n
}
