package engine

import (
	"time"

	"github.com/Pak209/HoloSync/internal/storage"
)

// usedToday reports whether the holobot already completed a sync workout
// on the current local calendar day.
func usedToday(h *storage.HolobotState, now time.Time) bool {
	return h.LastSyncWorkoutDate == dateKey(now) && h.SyncWorkoutCountToday > 0
}

// CountUsedToday counts the distinct holobots that trained today.
func CountUsedToday(all []storage.HolobotState, now time.Time) int {
	n := 0
	for i := range all {
		if usedToday(&all[i], now) {
			n++
		}
	}
	return n
}

// CheckEligibility decides whether the chosen holobot may start a sync
// workout right now. Each holobot trains at most once per local calendar
// day, and the player's rank caps how many distinct holobots may train in
// a day. Crossing midnight reopens both gates without any scheduled job.
func CheckEligibility(h *storage.HolobotState, all []storage.HolobotState, playerRank string, now time.Time) error {
	if h == nil {
		return ErrNoHolobotSelected
	}
	if usedToday(h, now) {
		return &AlreadyTrainedError{Holobot: h.Name}
	}
	used := CountUsedToday(all, now)
	limit := DailySyncCap(playerRank)
	if used >= limit {
		return &DailyLimitError{Count: used, Cap: limit}
	}
	return nil
}

// RecordSyncWorkout advances the holobot's daily counter for a workout
// completed at now.
func RecordSyncWorkout(h *storage.HolobotState, now time.Time) {
	today := dateKey(now)
	if h.LastSyncWorkoutDate != today {
		h.LastSyncWorkoutDate = today
		h.SyncWorkoutCountToday = 0
	}
	h.SyncWorkoutCountToday++
}

// WorkoutsRemainingToday reports how many more holobots the player may
// train before the daily cap closes.
func WorkoutsRemainingToday(all []storage.HolobotState, playerRank string, now time.Time) int {
	remaining := DailySyncCap(playerRank) - CountUsedToday(all, now)
	if remaining < 0 {
		return 0
	}
	return remaining
}
