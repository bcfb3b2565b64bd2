package session

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/peekaboo/internal/catalog"
	"github.com/abhisek/peekaboo/internal/rng"
)

// ErrNoItems is returned when a category has no playable item at all.
var ErrNoItems = errors.New("no playable items")

// Generator builds rounds and sessions from the catalog.
type Generator struct {
	catalog *catalog.Catalog
	rng     rng.Source
	newID   func() string
}

// NewGenerator returns a generator drawing from cat with randomness from src.
func NewGenerator(cat *catalog.Catalog, src rng.Source) *Generator {
	return &Generator{catalog: cat, rng: src, newID: uuid.NewString}
}

// GenerateRound builds a round around target. Distractors come from the
// same category and tier; when that pool is too small it is widened with
// easy items of the category. A round smaller than nominal is returned when
// even the widened pool runs out.
func (g *Generator) GenerateRound(target catalog.Item, difficulty catalog.Difficulty, unlocked map[string]bool, roundIndex int) GameRound {
	optionCount := difficulty.OptionCount()
	need := optionCount - 1

	seen := map[string]bool{target.ID: true}
	var pool []catalog.Item
	for _, it := range catalog.Available(g.catalog.ByTier(target.Category, difficulty), unlocked) {
		if !seen[it.ID] {
			seen[it.ID] = true
			pool = append(pool, it)
		}
	}
	if len(pool) < need {
		for _, it := range catalog.Available(g.catalog.ByTier(target.Category, catalog.DifficultyEasy), unlocked) {
			if !seen[it.ID] {
				seen[it.ID] = true
				pool = append(pool, it)
			}
		}
	}

	options := rng.Sample(g.rng, pool, need)
	options = append(options, target)
	rng.Shuffle(g.rng, options)

	return GameRound{
		ID:         fmt.Sprintf("round-%d", roundIndex),
		Target:     target,
		Options:    options,
		Difficulty: difficulty,
	}
}

// GenerateSession builds a full session. Targets do not repeat while an
// unused eligible item remains; after that any eligible item may repeat.
func (g *Generator) GenerateSession(cfg Config, unlocked map[string]bool) (*GameSession, error) {
	cfg = cfg.withDefaults()

	eligible := g.eligibleTargets(cfg, unlocked)
	if len(eligible) == 0 {
		return nil, fmt.Errorf("%w in %s at %s", ErrNoItems, cfg.Category, cfg.Difficulty)
	}

	unused := make([]catalog.Item, len(eligible))
	copy(unused, eligible)

	rounds := make([]GameRound, 0, cfg.RoundCount)
	for i := 0; i < cfg.RoundCount; i++ {
		var target catalog.Item
		if len(unused) > 0 {
			j := g.rng.IntN(len(unused))
			target = unused[j]
			unused = append(unused[:j], unused[j+1:]...)
		} else {
			target = eligible[g.rng.IntN(len(eligible))]
		}

		round := g.GenerateRound(target, cfg.Difficulty, unlocked, i)
		round.TimeLimit = cfg.TimeLimit
		rounds = append(rounds, round)
	}

	return &GameSession{
		ID:         g.newID(),
		Mode:       cfg.Mode,
		Category:   cfg.Category,
		Difficulty: cfg.Difficulty,
		Group:      cfg.Group,
		Rounds:     rounds,
	}, nil
}

// eligibleTargets returns the unlocked items at the configured tier (and
// group, if any), extended with unlocked easy items when short.
func (g *Generator) eligibleTargets(cfg Config, unlocked map[string]bool) []catalog.Item {
	seen := make(map[string]bool)
	var pool []catalog.Item
	for _, it := range catalog.Available(g.catalog.ByTier(cfg.Category, cfg.Difficulty), unlocked) {
		if cfg.Group != "" && it.Group != cfg.Group {
			continue
		}
		seen[it.ID] = true
		pool = append(pool, it)
	}
	if len(pool) < cfg.RoundCount {
		for _, it := range catalog.Available(g.catalog.ByTier(cfg.Category, catalog.DifficultyEasy), unlocked) {
			if !seen[it.ID] {
				seen[it.ID] = true
				pool = append(pool, it)
			}
		}
	}
	return pool
}
