package progress

import (
	"fmt"

	"github.com/abhisek/peekaboo/internal/catalog"
)

// Chapter is one stage of story mode. Each chapter plays the animals of a
// single habitat.
type Chapter struct {
	ID            string
	Name          string
	Description   string
	Emoji         string
	Group         string
	Difficulty    catalog.Difficulty
	RequiredStars int
}

var chapters = []Chapter{
	{ID: "farm", Name: "Farm Adventure", Description: "Meet the animals on the farm", Emoji: "🚜", Group: "farm", Difficulty: catalog.DifficultyEasy, RequiredStars: 0},
	{ID: "forest", Name: "Forest Friends", Description: "Explore the deep green forest", Emoji: "🌲", Group: "forest", Difficulty: catalog.DifficultyMedium, RequiredStars: 10},
	{ID: "ocean", Name: "Ocean Expedition", Description: "Dive under the waves", Emoji: "🌊", Group: "ocean", Difficulty: catalog.DifficultyMedium, RequiredStars: 25},
	{ID: "jungle", Name: "Jungle Safari", Description: "Swing through the jungle", Emoji: "🌴", Group: "jungle", Difficulty: catalog.DifficultyHard, RequiredStars: 50},
}

// Chapters returns the story chapters in play order.
func Chapters() []Chapter {
	out := make([]Chapter, len(chapters))
	copy(out, chapters)
	return out
}

// GetChapter returns the chapter with the given ID.
func GetChapter(id string) (Chapter, error) {
	for _, c := range chapters {
		if c.ID == id {
			return c, nil
		}
	}
	return Chapter{}, fmt.Errorf("chapter not found: %q", id)
}

// Available reports whether the chapter can be played at totalStars.
func (c Chapter) Available(totalStars int) bool {
	return totalStars >= c.RequiredStars
}

// LatestChapter returns the furthest chapter playable at totalStars.
func LatestChapter(totalStars int) Chapter {
	latest := chapters[0]
	for _, c := range chapters {
		if c.Available(totalStars) {
			latest = c
		}
	}
	return latest
}
