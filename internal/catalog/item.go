package catalog

// Category represents a family of learnable items.
type Category string

const (
	CategoryAnimals   Category = "animals"
	CategoryNumbers   Category = "numbers"
	CategoryAlphabets Category = "alphabets"
	CategoryColors    Category = "colors"
	CategoryFruits    Category = "fruits"
)

// AllCategories returns all categories in menu order.
func AllCategories() []Category {
	return []Category{
		CategoryAnimals,
		CategoryNumbers,
		CategoryAlphabets,
		CategoryColors,
		CategoryFruits,
	}
}

// ParseCategory converts a string into a Category.
func ParseCategory(s string) (Category, bool) {
	for _, c := range AllCategories() {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// DisplayName returns a human-readable name for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryAnimals:
		return "Animals"
	case CategoryNumbers:
		return "Numbers"
	case CategoryAlphabets:
		return "Letters"
	case CategoryColors:
		return "Colors"
	case CategoryFruits:
		return "Fruits"
	default:
		return string(c)
	}
}

// Icon returns the display icon for the category.
func (c Category) Icon() string {
	switch c {
	case CategoryAnimals:
		return "🐾"
	case CategoryNumbers:
		return "🔢"
	case CategoryAlphabets:
		return "🔤"
	case CategoryColors:
		return "🎨"
	case CategoryFruits:
		return "🍎"
	default:
		return "?"
	}
}

// Difficulty represents an item's difficulty tier.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// AllDifficulties returns all tiers from easiest to hardest.
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParseDifficulty converts a string into a Difficulty.
func ParseDifficulty(s string) (Difficulty, bool) {
	for _, d := range AllDifficulties() {
		if string(d) == s {
			return d, true
		}
	}
	return "", false
}

// DisplayName returns a human-readable label for the difficulty.
func (d Difficulty) DisplayName() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	default:
		return string(d)
	}
}

// OptionCount returns how many choices a round at this difficulty shows.
func (d Difficulty) OptionCount() int {
	switch d {
	case DifficultyMedium:
		return 4
	case DifficultyHard:
		return 6
	default:
		return 3
	}
}

// Item is a single learnable concept. Items never change after the
// catalog is loaded.
type Item struct {
	ID         string     `yaml:"id"`
	Name       string     `yaml:"name"`
	Emoji      string     `yaml:"emoji"`
	Category   Category   `yaml:"category"`
	Difficulty Difficulty `yaml:"difficulty"`
	Group      string     `yaml:"group,omitempty"` // habitat for animals, letter kind, color family, ...
	Unlocked   bool       `yaml:"unlocked"`
}

// IsAvailable reports whether the item can be played given the player's
// unlocked set.
func (it Item) IsAvailable(unlocked map[string]bool) bool {
	return it.Unlocked || unlocked[it.ID]
}
