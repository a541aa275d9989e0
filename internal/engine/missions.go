package engine

import (
	"time"

	"github.com/Pak209/HoloSync/internal/storage"
)

// Mission statuses. Transitions only ever move rightward:
// locked -> in_progress -> completed -> claimed.
const (
	MissionLocked     = "locked"
	MissionInProgress = "in_progress"
	MissionCompleted  = "completed"
	MissionClaimed    = "claimed"
)

// Reward kinds.
const (
	RewardSyncPoints = "sync_points"
	RewardHolos      = "holos"
	RewardSPBoost    = "sp_boost"
)

// MissionReward is what a claim pays out. For sp_boost rewards Amount is
// the boost percentage and BoostDays its lifetime.
type MissionReward struct {
	Type      string
	Amount    int
	BoostDays int
}

// Mission is a static season mission definition. Progress state lives in
// storage; definitions are compiled in per season.
type Mission struct {
	ID          string
	Season      int
	Title       string
	Description string
	Target      int
	Reward      MissionReward
}

// CurrentSeason is the active mission season.
const CurrentSeason = 1

var seasonOne = []Mission{
	{
		ID:          "connect_tracker_s1",
		Season:      1,
		Title:       "Plug In",
		Description: "Connect an activity tracker",
		Target:      1,
		Reward:      MissionReward{Type: RewardSPBoost, Amount: 20, BoostDays: 90},
	},
	{
		ID:          "first_workout_s1",
		Season:      1,
		Title:       "First Sync",
		Description: "Complete your first sync workout",
		Target:      1,
		Reward:      MissionReward{Type: RewardSyncPoints, Amount: 500},
	},
	{
		ID:          "workout_streak_5_s1",
		Season:      1,
		Title:       "Keep The Rhythm",
		Description: "Stay active five days in a row",
		Target:      5,
		Reward:      MissionReward{Type: RewardSPBoost, Amount: 10, BoostDays: 30},
	},
	{
		ID:          "max_workouts_3_s1",
		Season:      1,
		Title:       "All Out",
		Description: "Hit the daily workout cap on three days",
		Target:      3,
		Reward:      MissionReward{Type: RewardHolos, Amount: 1000},
	},
	{
		ID:          "unique_holobots_3_s1",
		Season:      1,
		Title:       "Spread The Sync",
		Description: "Train three different holobots",
		Target:      3,
		Reward:      MissionReward{Type: RewardSyncPoints, Amount: 750},
	},
}

// SeasonMissions returns the definitions for a season, in display order.
func SeasonMissions(season int) []Mission {
	if season != 1 {
		return nil
	}
	out := make([]Mission, len(seasonOne))
	copy(out, seasonOne)
	return out
}

// MissionByID looks up a definition across all seasons.
func MissionByID(id string) (Mission, bool) {
	for _, m := range seasonOne {
		if m.ID == id {
			return m, true
		}
	}
	return Mission{}, false
}

// ApplyProgress folds an observed counter value into the stored mission
// state. Counters are absolute, never deltas, and stored progress only
// moves up. Claimed missions are frozen. Reports whether state changed.
func ApplyProgress(state *storage.MissionState, def Mission, observed int, now time.Time) bool {
	if state.Status == MissionClaimed {
		return false
	}
	changed := false
	if observed > state.Progress {
		state.Progress = observed
		changed = true
	}
	if state.Status == MissionLocked && state.Progress > 0 {
		state.Status = MissionInProgress
		changed = true
	}
	if state.Status != MissionCompleted && state.Progress >= def.Target {
		state.Status = MissionCompleted
		ts := now
		state.CompletedAt = &ts
		changed = true
	}
	return changed
}

// CanClaim validates the claim transition. Only completed missions pay out.
func CanClaim(state *storage.MissionState) error {
	if state == nil {
		return &ClaimError{MissionID: "", Status: "unknown"}
	}
	if state.Status != MissionCompleted {
		return &ClaimError{MissionID: state.MissionID, Status: state.Status}
	}
	return nil
}
