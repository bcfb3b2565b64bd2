package stickers

// Rarity represents how rare a sticker is.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Cumulative draw thresholds, checked from rarest to most common.
const (
	legendaryBelow = 0.02
	epicBelow      = 0.10
	rareBelow      = 0.40
)

// Upgrade odds for a repeat award: an attempt happens 20% of the time and
// is accepted 70% of the time.
const (
	upgradeAttemptChance = 0.20
	upgradeAcceptChance  = 0.70
)

// BasePoints is multiplied by the rarity multiplier to give bonus points.
const BasePoints = 10

// AllRarities returns all rarities in order from lowest to highest.
func AllRarities() []Rarity {
	return []Rarity{RarityCommon, RarityRare, RarityEpic, RarityLegendary}
}

// DisplayName returns a human-readable label for the rarity.
func (r Rarity) DisplayName() string {
	switch r {
	case RarityCommon:
		return "Common"
	case RarityRare:
		return "Rare"
	case RarityEpic:
		return "Epic"
	case RarityLegendary:
		return "Legendary"
	default:
		return string(r)
	}
}

// Multiplier returns the bonus multiplier for the rarity.
func (r Rarity) Multiplier() int {
	switch r {
	case RarityRare:
		return 2
	case RarityEpic:
		return 5
	case RarityLegendary:
		return 10
	default:
		return 1
	}
}

// Next returns the tier above r. Legendary has no next tier.
func (r Rarity) Next() (Rarity, bool) {
	switch r {
	case RarityCommon:
		return RarityRare, true
	case RarityRare:
		return RarityEpic, true
	case RarityEpic:
		return RarityLegendary, true
	default:
		return r, false
	}
}

// Color returns the hex display color for the rarity.
func (r Rarity) Color() string {
	switch r {
	case RarityRare:
		return "#3B82F6"
	case RarityEpic:
		return "#8B5CF6"
	case RarityLegendary:
		return "#F59E0B"
	default:
		return "#6B7280"
	}
}

// Icon returns the badge shown next to a sticker of this rarity.
func (r Rarity) Icon() string {
	switch r {
	case RarityRare:
		return "🌟"
	case RarityEpic:
		return "💫"
	case RarityLegendary:
		return "✨"
	default:
		return "⭐"
	}
}

// RarityFor maps a uniform draw in [0, 1) to a rarity.
func RarityFor(draw float64) Rarity {
	switch {
	case draw < legendaryBelow:
		return RarityLegendary
	case draw < epicBelow:
		return RarityEpic
	case draw < rareBelow:
		return RarityRare
	default:
		return RarityCommon
	}
}
