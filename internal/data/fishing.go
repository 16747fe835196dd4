package data

import "github.com/udisondev/emberfall/internal/model"

// Fish rarity base weights in percentage points, Common..Legendary.
var fishBaseWeights = [model.NumRarities]float64{60, 25, 10, 4, 1}

// Per-5-ranks shift in percentage points. Common bleeds into the
// higher tiers as rank climbs; Common never drops below the floor.
var fishRankShift = [model.NumRarities]float64{-2, 1, 0.5, 0.3, 0.2}

// fishCommonFloor is the minimum Common weight in percentage points.
const fishCommonFloor = 10

// FishRarityWeights returns the rarity weight row at a fishing rank.
func FishRarityWeights(rank int) [model.NumRarities]float64 {
	if rank < 1 {
		rank = 1
	}
	steps := float64(rank / 5)
	var w [model.NumRarities]float64
	for i := range w {
		w[i] = fishBaseWeights[i] + fishRankShift[i]*steps
	}
	if w[model.RarityCommon] < fishCommonFloor {
		// Clamping Common would inflate the total above the shifted
		// weights' intent, so the surplus is simply dropped; callers
		// roll proportionally over whatever the row sums to.
		w[model.RarityCommon] = fishCommonFloor
	}
	return w
}

// FishXPRange is the base XP band for a caught fish by rarity,
// before the prestige multiplier.
func FishXPRange(r model.Rarity) (lo, hi int) {
	switch r {
	case model.RarityCommon:
		return 50, 100
	case model.RarityMagic:
		return 150, 250
	case model.RarityRare:
		return 400, 600
	case model.RarityEpic:
		return 1000, 1500
	case model.RarityLegendary:
		return 3000, 5000
	default:
		return 0, 0
	}
}

// FishItemDropChance is the chance a catch also surfaces an item of the
// fish's rarity tier.
func FishItemDropChance(r model.Rarity) float64 {
	switch r {
	case model.RarityCommon:
		return 0.05
	case model.RarityMagic:
		return 0.05
	case model.RarityRare:
		return 0.15
	case model.RarityEpic:
		return 0.35
	case model.RarityLegendary:
		return 0.75
	default:
		return 0
	}
}

// Fishing rank ladder tiers. Each tier spans five ranks and sets how
// many catches one rank-up takes inside it.
var rankLadder = []struct {
	Name      string
	UpToRank  int
	Threshold int
}{
	{"Novice", 5, 5},
	{"Apprentice", 10, 8},
	{"Journeyman", 15, 12},
	{"Expert", 20, 16},
	{"Master", 25, 20},
	{"Grandmaster", 30, 25},
	{"Mythic", 35, 30},
	{"Transcendent", 40, 40},
}

// FishingTierName returns the ladder tier name for a rank.
func FishingTierName(rank int) string {
	for _, t := range rankLadder {
		if rank <= t.UpToRank {
			return t.Name
		}
	}
	return rankLadder[len(rankLadder)-1].Name
}

// RankUpThreshold returns the catches needed to advance from the rank.
func RankUpThreshold(rank int) int {
	for _, t := range rankLadder {
		if rank <= t.UpToRank {
			return t.Threshold
		}
	}
	return rankLadder[len(rankLadder)-1].Threshold
}

// FishingSpots are the flavor locations a session can start at.
var FishingSpots = []string{
	"Quiet Millpond", "Willow Bend", "Drowned Jetty", "Mirror Lake",
	"Saltmarsh Flats", "Thunderhead Bay", "The Abyssal Shelf",
}

// Fish display names by rarity.
var fishNames = map[model.Rarity][]string{
	model.RarityCommon:    {"Mudfin Perch", "Gray Dace", "Pond Carp", "Reed Minnow"},
	model.RarityMagic:     {"Silver Trout", "Blue Darter", "Moonscale Bass"},
	model.RarityRare:      {"Ghostfin Pike", "Ember Koi", "Stormchaser Salmon"},
	model.RarityEpic:      {"Abyssal Angler", "Thunderjaw Grouper", "Riftscale Sturgeon"},
	model.RarityLegendary: {"Golden Leviathan Fry", "Tempest Marlin", "The Drowned King's Eel"},
}

// FishNames returns the name pool for a rarity.
func FishNames(r model.Rarity) []string {
	return fishNames[r]
}

// LeviathanEscapeChance returns the encounter chance (0..1) for the
// n-th escape (0-based). The schedule tightens as the hunt progresses.
func LeviathanEscapeChance(encounters int) float64 {
	schedule := [...]float64{0.08, 0.06, 0.05, 0.04, 0.03, 0.02, 0.015, 0.01, 0.005, 0.0025}
	if encounters < 0 || encounters >= len(schedule) {
		return 0
	}
	return schedule[encounters]
}
