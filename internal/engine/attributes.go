package engine

import "github.com/Pak209/HoloSync/internal/config"

// Attributes lists the upgradeable stats in display order.
var Attributes = []string{"hp", "attack", "defense", "speed", "special"}

// ValidAttribute reports whether name is one of the upgradeable stats.
func ValidAttribute(name string) bool {
	for _, a := range Attributes {
		if a == name {
			return true
		}
	}
	return false
}

// UpgradeCost returns the Sync Points price to raise an attribute from
// currentLevel to currentLevel+1.
func UpgradeCost(cfg config.Sync, attribute string, currentLevel int) (int, error) {
	if currentLevel >= cfg.MaxAttributeLevel {
		return 0, &MaxLevelError{Attribute: attribute, Level: currentLevel}
	}
	return cfg.AttributeUpgradeCosts[currentLevel], nil
}

// CheckSpend validates that cost fits within the available balance.
func CheckSpend(cost, available int) error {
	if cost > available {
		return &InsufficientPointsError{Cost: cost, Available: available}
	}
	return nil
}

// TotalInvestment sums what was paid to reach the given attribute levels.
func TotalInvestment(cfg config.Sync, levels ...int) int {
	total := 0
	for _, lvl := range levels {
		if lvl > len(cfg.AttributeUpgradeCosts) {
			lvl = len(cfg.AttributeUpgradeCosts)
		}
		for i := 0; i < lvl; i++ {
			total += cfg.AttributeUpgradeCosts[i]
		}
	}
	return total
}

// StatBonus is the stat increase an attribute level grants: 10% of the
// base stat per level, floored.
func StatBonus(base, level int) int {
	if base < 0 || level < 0 {
		return 0
	}
	return base * level / 10
}

// BoostedStat applies upgrade levels to a base template stat.
func BoostedStat(base, level int) int {
	return base + StatBonus(base, level)
}
