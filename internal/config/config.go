// Package config holds the tunable reward and progression tables.
//
// Every threshold/multiplier table lives here as data so it can be tuned in
// ~/.holosync/config.toml without touching engine code. Compiled-in defaults
// are used when the file is absent.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Sync is the process-wide reward configuration.
type Sync struct {
	StepsPerSyncPoint     int `toml:"steps_per_sync_point"`
	MinimumStepsForReward int `toml:"minimum_steps_for_reward"`
	DailyStepGoal         int `toml:"daily_step_goal"`
	WeeklyStepGoal        int `toml:"weekly_step_goal"`
	PointsPerMinute       int `toml:"sync_training_points_per_minute"`
	MaxAttributeLevel     int `toml:"max_attribute_level"`

	// AttributeUpgradeCosts[i] is the SP cost to go from level i to i+1.
	AttributeUpgradeCosts []int `toml:"attribute_upgrade_costs"`

	SyncTrainingBonus float64 `toml:"sync_training_bonus"`

	// StreakMultipliers is indexed by streak day; lookups clamp to the
	// last entry for long streaks.
	StreakMultipliers []float64 `toml:"streak_multipliers"`
}

// BondLevel is one row of the Sync Bond threshold table. A bond reaches this
// level once both MinHours and MinPoints are met.
type BondLevel struct {
	MinHours          float64 `toml:"min_hours"`
	MinPoints         int     `toml:"min_points"`
	AbilityBoost      int     `toml:"ability_boost"`
	PartCompatibility int     `toml:"part_compatibility"`
	Unlock            string  `toml:"unlock"`
}

// Config is the root of the TOML file.
type Config struct {
	Sync Sync        `toml:"sync"`
	Bond []BondLevel `toml:"bond"`
}

// Default returns the compiled-in configuration.
func Default() *Config {
	return &Config{
		Sync: Sync{
			StepsPerSyncPoint:     100,
			MinimumStepsForReward: 1000,
			DailyStepGoal:         10000,
			WeeklyStepGoal:        50000,
			PointsPerMinute:       2,
			MaxAttributeLevel:     5,
			AttributeUpgradeCosts: []int{100, 150, 225, 340, 510},
			SyncTrainingBonus:     1.2,
			StreakMultipliers:     []float64{1.0, 1.1, 1.2, 1.3, 1.4, 1.5, 1.75, 2.0},
		},
		Bond: []BondLevel{
			{MinHours: 0, MinPoints: 0, AbilityBoost: 0, PartCompatibility: 0},
			{MinHours: 1, MinPoints: 100, AbilityBoost: 2, PartCompatibility: 5, Unlock: "bond_greeting"},
			{MinHours: 3, MinPoints: 300, AbilityBoost: 4, PartCompatibility: 10},
			{MinHours: 6, MinPoints: 750, AbilityBoost: 6, PartCompatibility: 15, Unlock: "bond_combo_move"},
			{MinHours: 10, MinPoints: 1500, AbilityBoost: 9, PartCompatibility: 20},
			{MinHours: 15, MinPoints: 2500, AbilityBoost: 12, PartCompatibility: 25, Unlock: "bond_signature_part"},
			{MinHours: 25, MinPoints: 4500, AbilityBoost: 16, PartCompatibility: 35},
			{MinHours: 40, MinPoints: 8000, AbilityBoost: 20, PartCompatibility: 50, Unlock: "bond_resonance"},
		},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".holosync", "config.toml"), nil
}

// Load reads the config file at path, applying it on top of the defaults.
// A missing file is not an error; the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects tables that would break the engine's monotonicity
// guarantees.
func (c *Config) Validate() error {
	s := c.Sync
	if s.StepsPerSyncPoint <= 0 {
		return fmt.Errorf("steps_per_sync_point must be positive")
	}
	if s.PointsPerMinute <= 0 {
		return fmt.Errorf("sync_training_points_per_minute must be positive")
	}
	if s.MaxAttributeLevel <= 0 {
		return fmt.Errorf("max_attribute_level must be positive")
	}
	if len(s.AttributeUpgradeCosts) < s.MaxAttributeLevel {
		return fmt.Errorf("attribute_upgrade_costs needs at least %d entries", s.MaxAttributeLevel)
	}
	for i := 1; i < len(s.AttributeUpgradeCosts); i++ {
		if s.AttributeUpgradeCosts[i] < s.AttributeUpgradeCosts[i-1] {
			return fmt.Errorf("attribute_upgrade_costs must be non-decreasing (index %d)", i)
		}
	}
	if len(s.StreakMultipliers) == 0 {
		return fmt.Errorf("streak_multipliers must not be empty")
	}
	if len(c.Bond) == 0 {
		return fmt.Errorf("bond threshold table must not be empty")
	}
	for i := 1; i < len(c.Bond); i++ {
		prev, cur := c.Bond[i-1], c.Bond[i]
		if cur.MinHours < prev.MinHours || cur.MinPoints < prev.MinPoints {
			return fmt.Errorf("bond thresholds must be non-decreasing (level %d)", i)
		}
		if cur.AbilityBoost < prev.AbilityBoost || cur.PartCompatibility < prev.PartCompatibility {
			return fmt.Errorf("bond bonuses must be non-decreasing (level %d)", i)
		}
	}
	return nil
}
