package engine

import (
	"math"

	"github.com/Pak209/HoloSync/internal/config"
)

// WorkoutInput is everything reward computation needs about a finished (or
// in-flight, for live previews) sync workout.
type WorkoutInput struct {
	DurationSeconds int
	Steps           int
	Calories        int
	HolobotRank     string
	PlayerRank      string
	// SPBoostPercent is the profile's active mission boost, 0 when none.
	SPBoostPercent int
}

// WorkoutReward is the computed payout of a sync workout.
type WorkoutReward struct {
	SyncPoints      int
	ExpEarned       int
	AttributeBoosts int
	Holos           int
}

// AttributeBoostSeconds is the training time that earns one attribute boost.
const AttributeBoostSeconds = 600

// CalculateWorkoutReward applies the reward pipeline with integer floors at
// every stage. Partial minutes never pay out; negative measurements are
// clamped to zero.
func CalculateWorkoutReward(cfg config.Sync, in WorkoutInput) WorkoutReward {
	if in.DurationSeconds < 0 {
		in.DurationSeconds = 0
	}
	if in.Steps < 0 {
		in.Steps = 0
	}
	if in.Calories < 0 {
		in.Calories = 0
	}
	minutes := in.DurationSeconds / 60
	base := minutes * cfg.PointsPerMinute
	bonus := int(math.Floor(float64(base) * cfg.SyncTrainingBonus))
	final := int(math.Floor(float64(bonus) * RankMultiplier(in.HolobotRank)))
	if in.SPBoostPercent > 0 {
		final = int(math.Floor(float64(final) * (1 + float64(in.SPBoostPercent)/100)))
	}

	exp := int(math.Floor(float64(in.Steps/10) * RankMultiplier(in.HolobotRank)))
	holos := int(math.Floor(float64(in.Calories) * HolosMultiplier(in.PlayerRank)))

	return WorkoutReward{
		SyncPoints:      final,
		ExpEarned:       exp,
		AttributeBoosts: in.DurationSeconds / AttributeBoostSeconds,
		Holos:           holos,
	}
}

// CalculateStepPoints converts a day's step count into Sync Points. Below
// the minimum threshold nothing is earned; above it every full block of
// StepsPerSyncPoint steps pays one point, scaled by the streak multiplier.
func CalculateStepPoints(cfg config.Sync, steps, streakDays int) int {
	if steps < cfg.MinimumStepsForReward {
		return 0
	}
	base := steps / cfg.StepsPerSyncPoint
	return int(math.Floor(float64(base) * StreakMultiplier(cfg, streakDays)))
}

// StreakMultiplier returns the step-reward multiplier for a streak length.
// The table is indexed by days-1 and clamps at both ends.
func StreakMultiplier(cfg config.Sync, streakDays int) float64 {
	if len(cfg.StreakMultipliers) == 0 {
		return 1.0
	}
	i := streakDays - 1
	if i < 0 {
		i = 0
	}
	if i >= len(cfg.StreakMultipliers) {
		i = len(cfg.StreakMultipliers) - 1
	}
	return cfg.StreakMultipliers[i]
}

// CalculateTrainingPoints converts manually logged sync-training minutes
// into Sync Points, through the same bonus and rank pipeline as a live
// workout.
func CalculateTrainingPoints(cfg config.Sync, minutes int, holobotRank string) int {
	base := minutes * cfg.PointsPerMinute
	bonus := int(math.Floor(float64(base) * cfg.SyncTrainingBonus))
	return int(math.Floor(float64(bonus) * RankMultiplier(holobotRank)))
}
