package engine

import "strings"

// Rank tiers shared by holobots and the player profile.
const (
	RankCommon    = "Common"
	RankChampion  = "Champion"
	RankRare      = "Rare"
	RankElite     = "Elite"
	RankLegendary = "Legendary"
)

var rankOrder = []string{RankCommon, RankChampion, RankRare, RankElite, RankLegendary}

var syncPointMultipliers = map[string]float64{
	RankCommon:    1.0,
	RankChampion:  1.1,
	RankRare:      1.2,
	RankElite:     1.5,
	RankLegendary: 2.0,
}

var holosMultipliers = map[string]float64{
	RankCommon:    0,
	RankChampion:  0,
	RankRare:      0,
	RankElite:     0.25,
	RankLegendary: 0.5,
}

var dailySyncCaps = map[string]int{
	RankCommon:    1,
	RankChampion:  2,
	RankRare:      3,
	RankElite:     4,
	RankLegendary: 5,
}

var rankDescriptions = map[string]string{
	RankCommon:    "Standard sync output, one boosted workout per day",
	RankChampion:  "10% sync point bonus",
	RankRare:      "20% sync point bonus",
	RankElite:     "50% sync point bonus and Holos from calories",
	RankLegendary: "Double sync points and the best Holos rate",
}

// NormalizeRank maps free-form rank text onto a canonical tier name.
// Legacy saves used "legend" where newer ones say "legendary". Unknown
// values pass through unchanged so callers can surface them as-is.
func NormalizeRank(rank string) string {
	switch strings.ToLower(strings.TrimSpace(rank)) {
	case "common":
		return RankCommon
	case "champion":
		return RankChampion
	case "rare":
		return RankRare
	case "elite":
		return RankElite
	case "legend", "legendary":
		return RankLegendary
	}
	return rank
}

// RankMultiplier returns the Sync Points multiplier for a holobot rank.
// Unrecognized ranks earn at the Common rate.
func RankMultiplier(rank string) float64 {
	if m, ok := syncPointMultipliers[NormalizeRank(rank)]; ok {
		return m
	}
	return 1.0
}

// HolosMultiplier returns the Holos-per-calorie rate for a player rank.
// Only Elite and Legendary players earn Holos from workouts.
func HolosMultiplier(rank string) float64 {
	if m, ok := holosMultipliers[NormalizeRank(rank)]; ok {
		return m
	}
	return 0
}

// DailySyncCap returns how many distinct holobots a player of the given
// rank may train per calendar day.
func DailySyncCap(rank string) int {
	if c, ok := dailySyncCaps[NormalizeRank(rank)]; ok {
		return c
	}
	return 1
}

// RankDescription returns a short blurb for the rank, or empty for
// unrecognized values.
func RankDescription(rank string) string {
	return rankDescriptions[NormalizeRank(rank)]
}

// Ranks lists the tiers from lowest to highest.
func Ranks() []string {
	out := make([]string, len(rankOrder))
	copy(out, rankOrder)
	return out
}
