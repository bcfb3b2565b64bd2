package progress

import (
	"time"

	"github.com/abhisek/peekaboo/internal/catalog"
)

// Achievement is a badge earned once, recorded with the time it was earned.
type Achievement struct {
	ID       string    `json:"id"`
	EarnedAt time.Time `json:"earnedAt"`
}

// AchievementDef describes a badge and when it is earned.
type AchievementDef struct {
	ID          string
	Name        string
	Description string
	Icon        string

	earned func(p *PlayerProgress, unlockedAnimals int) bool
}

var achievementDefs = []AchievementDef{
	{
		ID: "first-game", Name: "First Steps", Icon: "🎉",
		Description: "Finish your first game",
		earned:      func(p *PlayerProgress, _ int) bool { return p.TotalGamesPlayed >= 1 },
	},
	{
		ID: "animal-lover", Name: "Animal Lover", Icon: "🐾",
		Description: "Finish 10 games",
		earned:      func(p *PlayerProgress, _ int) bool { return p.TotalGamesPlayed >= 10 },
	},
	{
		ID: "star-collector", Name: "Star Collector", Icon: "⭐",
		Description: "Collect 50 stars",
		earned:      func(p *PlayerProgress, _ int) bool { return p.TotalStars >= 50 },
	},
	{
		ID: "perfect-player", Name: "Perfect Player", Icon: "🏆",
		Description: "Play 5 perfect games",
		earned:      func(p *PlayerProgress, _ int) bool { return p.PerfectGames >= 5 },
	},
	{
		ID: "explorer", Name: "Explorer", Icon: "🧭",
		Description: "Unlock 15 animals",
		earned:      func(_ *PlayerProgress, n int) bool { return n >= 15 },
	},
}

// AllAchievements returns the badge definitions in display order.
func AllAchievements() []AchievementDef {
	out := make([]AchievementDef, len(achievementDefs))
	copy(out, achievementDefs)
	return out
}

// GetAchievement returns the definition for id.
func GetAchievement(id string) (AchievementDef, bool) {
	for _, d := range achievementDefs {
		if d.ID == id {
			return d, true
		}
	}
	return AchievementDef{}, false
}

// evaluateAchievements grants badges newly earned by p and returns them.
func evaluateAchievements(p *PlayerProgress, cat *catalog.Catalog, now time.Time) []Achievement {
	have := make(map[string]bool, len(p.Achievements))
	for _, a := range p.Achievements {
		have[a.ID] = true
	}
	animals := cat.CountAvailable(catalog.CategoryAnimals, p.unlockedSet())

	var earned []Achievement
	for _, d := range achievementDefs {
		if have[d.ID] || !d.earned(p, animals) {
			continue
		}
		a := Achievement{ID: d.ID, EarnedAt: now}
		p.Achievements = append(p.Achievements, a)
		earned = append(earned, a)
	}
	return earned
}
