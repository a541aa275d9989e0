package engine

import (
	"github.com/Pak209/HoloSync/internal/holobots"
	"github.com/Pak209/HoloSync/internal/storage"
)

// BaseNextLevelExp is the experience needed to go from level 1 to 2.
// The requirement doubles with every level gained.
const BaseNextLevelExp = 100

// GainExperience adds exp to the holobot, resolving any level-ups and the
// rank promotion that follows from the new level. Experience is cumulative
// and never resets. Returns the number of levels gained.
func GainExperience(h *storage.HolobotState, exp int) int {
	if exp <= 0 {
		return 0
	}
	if h.NextLevelExp <= 0 {
		h.NextLevelExp = BaseNextLevelExp
	}
	h.Experience += exp
	gained := 0
	for h.Experience >= h.NextLevelExp {
		h.Level++
		h.NextLevelExp *= 2
		gained++
	}
	if gained > 0 {
		h.Rank = holobots.RankForLevel(h.Level)
	}
	return gained
}

// attributeLevel reads the stored upgrade level for one attribute name.
func attributeLevel(h *storage.HolobotState, attribute string) int {
	switch attribute {
	case "hp":
		return h.HPLevel
	case "attack":
		return h.AttackLevel
	case "defense":
		return h.DefenseLevel
	case "speed":
		return h.SpeedLevel
	case "special":
		return h.SpecialLevel
	}
	return 0
}
