package progress

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"slices"
	"time"

	"github.com/abhisek/peekaboo/internal/catalog"
	"github.com/abhisek/peekaboo/internal/session"
	"github.com/abhisek/peekaboo/internal/store"
)

// PlayerProgress is the lifetime record of play. Stars and unlocks only
// ever grow.
type PlayerProgress struct {
	TotalGamesPlayed int           `json:"totalGamesPlayed"`
	TotalStars       int           `json:"totalStars"`
	PerfectGames     int           `json:"perfectGames"`
	UnlockedItemIDs  []string      `json:"unlockedItemIds"`
	Achievements     []Achievement `json:"achievements"`
	LastPlayedAt     *time.Time    `json:"lastPlayedAt,omitempty"`
}

func (p *PlayerProgress) unlockedSet() map[string]bool {
	m := make(map[string]bool, len(p.UnlockedItemIDs))
	for _, id := range p.UnlockedItemIDs {
		m[id] = true
	}
	return m
}

// HasAchievement reports whether the badge was earned.
func (p PlayerProgress) HasAchievement(id string) bool {
	return slices.ContainsFunc(p.Achievements, func(a Achievement) bool { return a.ID == id })
}

func (p PlayerProgress) clone() PlayerProgress {
	cp := p
	cp.UnlockedItemIDs = slices.Clone(p.UnlockedItemIDs)
	cp.Achievements = slices.Clone(p.Achievements)
	if p.LastPlayedAt != nil {
		t := *p.LastPlayedAt
		cp.LastPlayedAt = &t
	}
	return cp
}

// Outcome is what a finished session changed in the player's progress.
type Outcome struct {
	StarsEarned     int
	TotalStars      int
	NewlyUnlocked   []catalog.Item
	NewAchievements []Achievement
}

// Service owns PlayerProgress and persists it through the KV store.
type Service struct {
	kv     store.KV
	cat    *catalog.Catalog
	policy *Policy
	logger *slog.Logger
	now    func() time.Time

	prog PlayerProgress
}

// NewService loads progress from kv. Missing or unreadable data starts
// fresh progress with the catalog's static unlocks. A nil logger uses
// slog.Default().
func NewService(ctx context.Context, kv store.KV, cat *catalog.Catalog, policy *Policy, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if policy == nil {
		policy = NewPolicy(cat, nil)
	}
	s := &Service{
		kv:     kv,
		cat:    cat,
		policy: policy,
		logger: logger,
		now:    time.Now,
	}
	s.prog = s.load(ctx)
	return s
}

// Default returns fresh progress: nothing played, static unlocks only.
func (s *Service) Default() PlayerProgress {
	return PlayerProgress{UnlockedItemIDs: s.policy.UnlockedIDs(0)}
}

// Progress returns a copy of the current progress.
func (s *Service) Progress() PlayerProgress {
	return s.prog.clone()
}

// Unlocked returns the unlocked item IDs as a set, for the round generator.
func (s *Service) Unlocked() map[string]bool {
	return s.prog.unlockedSet()
}

// Catalog returns the catalog progress is tracked against.
func (s *Service) Catalog() *catalog.Catalog {
	return s.cat
}

// Policy returns the unlock policy in use.
func (s *Service) Policy() *Policy {
	return s.policy
}

// RecordSession folds a completed session into lifetime progress. Stars
// earned before quitting still count; only finished sessions count as
// games played.
func (s *Service) RecordSession(ctx context.Context, sum session.Summary) Outcome {
	now := s.now()
	p := &s.prog

	if sum.Finished {
		p.TotalGamesPlayed++
		if sum.Perfect {
			p.PerfectGames++
		}
	}
	p.TotalStars += sum.Stars
	p.LastPlayedAt = &now

	unlocked := p.unlockedSet()
	addedIDs := s.policy.Apply(p.TotalStars, unlocked)
	p.UnlockedItemIDs = append(p.UnlockedItemIDs, addedIDs...)

	out := Outcome{
		StarsEarned:     sum.Stars,
		TotalStars:      p.TotalStars,
		NewAchievements: evaluateAchievements(p, s.cat, now),
	}
	for _, id := range addedIDs {
		if it, err := s.cat.Get(id); err == nil {
			out.NewlyUnlocked = append(out.NewlyUnlocked, it)
		}
	}

	if len(addedIDs) > 0 {
		s.logger.Info("content unlocked", "stars", p.TotalStars, "items", addedIDs)
	}
	s.persist(ctx)
	return out
}

// Reset replaces progress with the defaults and clears the stored record.
func (s *Service) Reset(ctx context.Context) error {
	s.prog = s.Default()
	if err := s.kv.Delete(ctx, store.KeyPlayerProgress); err != nil {
		s.logger.Warn("reset player progress", "error", err)
		return err
	}
	return nil
}

func (s *Service) persist(ctx context.Context) {
	data, err := json.Marshal(s.prog)
	if err != nil {
		s.logger.Warn("encode player progress", "error", err)
		return
	}
	if err := s.kv.Put(ctx, store.KeyPlayerProgress, data); err != nil {
		s.logger.Warn("save player progress", "error", err)
	}
}

func (s *Service) load(ctx context.Context) PlayerProgress {
	data, err := s.kv.Get(ctx, store.KeyPlayerProgress)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.logger.Warn("load player progress, starting fresh", "error", err)
		}
		return s.Default()
	}

	var p PlayerProgress
	if err := json.Unmarshal(data, &p); err != nil {
		s.logger.Warn("decode player progress, starting fresh", "error", err)
		return s.Default()
	}
	if p.TotalStars < 0 {
		p.TotalStars = 0
	}

	// Stored unlocks are kept; anything the policy grants at this star
	// total is merged back in, so the set stays a superset of static
	// unlocks even if the record predates catalog changes.
	set := p.unlockedSet()
	p.UnlockedItemIDs = append(p.UnlockedItemIDs, s.policy.Apply(p.TotalStars, set)...)
	return p
}
