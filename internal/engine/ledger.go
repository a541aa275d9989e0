package engine

import (
	"time"

	"github.com/Pak209/HoloSync/internal/storage"
)

// Activity types recorded on ledger entries.
const (
	ActivityWorkout       = "workout"
	ActivitySyncTraining  = "sync_training"
	ActivityDailySteps    = "daily_steps"
	ActivityMissionReward = "mission_reward"
)

// LedgerStats summarizes the append-only Sync Points ledger.
type LedgerStats struct {
	TotalEarned  int
	Spent        int
	Available    int
	TotalSteps   int
	WeeklyEarned int
	WeeklySteps  int
	TodaySteps   int
	StreakDays   int
}

// dateKey collapses a timestamp to its local calendar day.
func dateKey(t time.Time) string {
	return t.Local().Format("2006-01-02")
}

// ComputeLedgerStats derives balances and streaks from the full entry list
// plus the profile's running spent total. The weekly window is the trailing
// seven calendar days including today.
func ComputeLedgerStats(entries []storage.SyncPointsEntry, spent int, now time.Time) LedgerStats {
	stats := LedgerStats{Spent: spent}

	weekStart := dateKey(now.AddDate(0, 0, -6))
	today := dateKey(now)
	days := make(map[string]bool)

	for _, e := range entries {
		day := dateKey(e.CreatedAt)
		steps := 0
		if e.StepsCount != nil {
			steps = *e.StepsCount
		}
		stats.TotalEarned += e.SyncPoints
		stats.TotalSteps += steps
		if day >= weekStart && day <= today {
			stats.WeeklyEarned += e.SyncPoints
			stats.WeeklySteps += steps
		}
		if day == today {
			stats.TodaySteps += steps
		}
		days[day] = true
	}
	stats.Available = stats.TotalEarned - spent
	stats.StreakDays = streakFrom(days, now)
	return stats
}

// streakFrom counts consecutive active calendar days ending today. A day
// with no activity yet does not break yesterday's streak.
func streakFrom(days map[string]bool, now time.Time) int {
	d := now
	if !days[dateKey(d)] {
		d = d.AddDate(0, 0, -1)
	}
	streak := 0
	for days[dateKey(d)] {
		streak++
		d = d.AddDate(0, 0, -1)
	}
	return streak
}

// activeToday reports whether any ledger entry was recorded today.
func activeToday(entries []storage.SyncPointsEntry, now time.Time) bool {
	today := dateKey(now)
	for _, e := range entries {
		if dateKey(e.CreatedAt) == today {
			return true
		}
	}
	return false
}

// HasDailyStepEntry reports whether today's steps were already converted to
// Sync Points. The daily step sync is once per calendar day.
func HasDailyStepEntry(entries []storage.SyncPointsEntry, now time.Time) bool {
	today := dateKey(now)
	for _, e := range entries {
		if e.ActivityType == ActivityDailySteps && dateKey(e.CreatedAt) == today {
			return true
		}
	}
	return false
}
