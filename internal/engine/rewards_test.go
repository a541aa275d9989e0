package engine

import (
	"testing"

	"github.com/Pak209/HoloSync/internal/config"
)

func TestCalculateWorkoutReward(t *testing.T) {
	cfg := config.Default().Sync

	// 15 minute workout on an Elite bot with an Elite player:
	// base 30, bonus 36, final 54; 120 simulated calories pay 30 Holos.
	got := CalculateWorkoutReward(cfg, WorkoutInput{
		DurationSeconds: 900,
		Steps:           0,
		Calories:        120,
		HolobotRank:     "Elite",
		PlayerRank:      "Elite",
	})
	want := WorkoutReward{SyncPoints: 54, ExpEarned: 0, AttributeBoosts: 1, Holos: 30}
	if got != want {
		t.Errorf("elite workout = %+v, want %+v", got, want)
	}
}

func TestCalculateWorkoutRewardFloorsPartialMinutes(t *testing.T) {
	cfg := config.Default().Sync

	got := CalculateWorkoutReward(cfg, WorkoutInput{
		DurationSeconds: 59,
		HolobotRank:     "Common",
		PlayerRank:      "Common",
	})
	if got.SyncPoints != 0 || got.AttributeBoosts != 0 {
		t.Errorf("sub-minute workout should pay nothing, got %+v", got)
	}
}

func TestCalculateWorkoutRewardExpAndBoost(t *testing.T) {
	cfg := config.Default().Sync

	got := CalculateWorkoutReward(cfg, WorkoutInput{
		DurationSeconds: 600,
		Steps:           1234,
		HolobotRank:     "Rare",
		PlayerRank:      "Common",
		SPBoostPercent:  20,
	})
	// base 20, bonus 24, rank 28 (floor 24*1.2=28.8), boosted floor(28*1.2)=33.
	if got.SyncPoints != 33 {
		t.Errorf("boosted SP = %d, want 33", got.SyncPoints)
	}
	// floor(1234/10)=123, floor(123*1.2)=147.
	if got.ExpEarned != 147 {
		t.Errorf("exp = %d, want 147", got.ExpEarned)
	}
	if got.AttributeBoosts != 1 {
		t.Errorf("boosts = %d, want 1", got.AttributeBoosts)
	}
}

func TestCalculateStepPoints(t *testing.T) {
	cfg := config.Default().Sync

	if got := CalculateStepPoints(cfg, 999, 1); got != 0 {
		t.Errorf("below threshold should pay 0, got %d", got)
	}
	if got := CalculateStepPoints(cfg, 1000, 1); got != 10 {
		t.Errorf("1000 steps day 1 = %d, want 10", got)
	}
	// 5450 steps on streak day 3: floor(54 * 1.2) = 64.
	if got := CalculateStepPoints(cfg, 5450, 3); got != 64 {
		t.Errorf("streak day 3 = %d, want 64", got)
	}
	// Long streaks clamp to the last multiplier.
	if got := CalculateStepPoints(cfg, 1000, 50); got != 20 {
		t.Errorf("long streak = %d, want 20", got)
	}
}

func TestStreakMultiplierClamps(t *testing.T) {
	cfg := config.Default().Sync

	if got := StreakMultiplier(cfg, 0); got != 1.0 {
		t.Errorf("streak 0 = %v, want 1.0", got)
	}
	if got := StreakMultiplier(cfg, 8); got != 2.0 {
		t.Errorf("streak 8 = %v, want 2.0", got)
	}
	if got := StreakMultiplier(cfg, 100); got != 2.0 {
		t.Errorf("streak 100 = %v, want 2.0", got)
	}
}

func TestCalculateTrainingPoints(t *testing.T) {
	cfg := config.Default().Sync

	// 30 minutes on a Legendary bot: base 60, bonus 72, final 144.
	if got := CalculateTrainingPoints(cfg, 30, "Legendary"); got != 144 {
		t.Errorf("legendary training = %d, want 144", got)
	}
	if got := CalculateTrainingPoints(cfg, 10, "Common"); got != 24 {
		t.Errorf("common training = %d, want 24", got)
	}
}
