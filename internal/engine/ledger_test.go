package engine

import (
	"testing"
	"time"

	"github.com/Pak209/HoloSync/internal/storage"
)

func entryAt(t time.Time, points int, activity string) storage.SyncPointsEntry {
	return storage.SyncPointsEntry{CreatedAt: t, SyncPoints: points, ActivityType: activity}
}

func TestComputeLedgerStats(t *testing.T) {
	now := time.Date(2026, 3, 10, 18, 0, 0, 0, time.Local)
	steps := 4200
	entries := []storage.SyncPointsEntry{
		entryAt(now.AddDate(0, 0, -10), 100, ActivityWorkout),
		entryAt(now.AddDate(0, 0, -6), 40, ActivityWorkout),
		entryAt(now.AddDate(0, 0, -1), 25, ActivityDailySteps),
		{CreatedAt: now.Add(-2 * time.Hour), SyncPoints: 30, ActivityType: ActivityDailySteps, StepsCount: &steps},
	}

	stats := ComputeLedgerStats(entries, 50, now)
	if stats.TotalEarned != 195 {
		t.Errorf("TotalEarned = %d, want 195", stats.TotalEarned)
	}
	if stats.Available != 145 {
		t.Errorf("Available = %d, want 145", stats.Available)
	}
	if stats.WeeklyEarned != 95 {
		t.Errorf("WeeklyEarned = %d, want 95", stats.WeeklyEarned)
	}
	if stats.TodaySteps != 4200 {
		t.Errorf("TodaySteps = %d, want 4200", stats.TodaySteps)
	}
	if stats.TotalSteps != 4200 || stats.WeeklySteps != 4200 {
		t.Errorf("steps = %d total / %d weekly, want 4200 / 4200", stats.TotalSteps, stats.WeeklySteps)
	}
	if stats.StreakDays != 2 {
		t.Errorf("StreakDays = %d, want 2", stats.StreakDays)
	}
}

func TestStreakSurvivesQuietToday(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	entries := []storage.SyncPointsEntry{
		entryAt(now.AddDate(0, 0, -3), 10, ActivityDailySteps),
		entryAt(now.AddDate(0, 0, -2), 10, ActivityDailySteps),
		entryAt(now.AddDate(0, 0, -1), 10, ActivityDailySteps),
	}
	stats := ComputeLedgerStats(entries, 0, now)
	if stats.StreakDays != 3 {
		t.Errorf("StreakDays = %d, want 3", stats.StreakDays)
	}
}

func TestStreakBrokenByGap(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	entries := []storage.SyncPointsEntry{
		entryAt(now.AddDate(0, 0, -5), 10, ActivityDailySteps),
		entryAt(now, 10, ActivityDailySteps),
	}
	stats := ComputeLedgerStats(entries, 0, now)
	if stats.StreakDays != 1 {
		t.Errorf("StreakDays = %d, want 1", stats.StreakDays)
	}
}

func TestHasDailyStepEntry(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	entries := []storage.SyncPointsEntry{
		entryAt(now.AddDate(0, 0, -1), 10, ActivityDailySteps),
		entryAt(now.Add(-time.Hour), 20, ActivityWorkout),
	}
	if HasDailyStepEntry(entries, now) {
		t.Fatal("workout entry should not count as a daily step sync")
	}
	entries = append(entries, entryAt(now.Add(-30*time.Minute), 15, ActivityDailySteps))
	if !HasDailyStepEntry(entries, now) {
		t.Fatal("expected today's step sync to be detected")
	}
}
