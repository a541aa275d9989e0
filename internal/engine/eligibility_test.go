package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/Pak209/HoloSync/internal/storage"
)

func TestCheckEligibilityNoSelection(t *testing.T) {
	err := CheckEligibility(nil, nil, "Common", time.Now())
	if !errors.Is(err, ErrNoHolobotSelected) {
		t.Fatalf("expected ErrNoHolobotSelected, got %v", err)
	}
}

func TestCheckEligibilityOncePerHolobotPerDay(t *testing.T) {
	now := time.Date(2026, 3, 10, 18, 0, 0, 0, time.Local)
	h := &storage.HolobotState{Name: "Ace"}

	if err := CheckEligibility(h, nil, "Common", now); err != nil {
		t.Fatalf("fresh bot should be eligible: %v", err)
	}

	RecordSyncWorkout(h, now)
	err := CheckEligibility(h, []storage.HolobotState{*h}, "Legendary", now)
	if !errors.Is(err, ErrHolobotAlreadyTrained) {
		t.Fatalf("expected ErrHolobotAlreadyTrained, got %v", err)
	}

	// Midnight rollover reopens the gate.
	tomorrow := now.AddDate(0, 0, 1)
	if err := CheckEligibility(h, []storage.HolobotState{*h}, "Common", tomorrow); err != nil {
		t.Fatalf("next day should be eligible: %v", err)
	}
}

func TestCheckEligibilityPlayerDailyCap(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	today := now.Local().Format("2006-01-02")
	trained := []storage.HolobotState{
		{Name: "Ace", LastSyncWorkoutDate: today, SyncWorkoutCountToday: 1},
		{Name: "Kuma", LastSyncWorkoutDate: today, SyncWorkoutCountToday: 1},
	}
	fresh := &storage.HolobotState{Name: "Shadow"}

	// A Champion player caps at 2 distinct holobots per day.
	err := CheckEligibility(fresh, trained, "Champion", now)
	if !errors.Is(err, ErrDailyLimitReached) {
		t.Fatalf("expected ErrDailyLimitReached, got %v", err)
	}
	var dle *DailyLimitError
	if !errors.As(err, &dle) || dle.Count != 2 || dle.Cap != 2 {
		t.Fatalf("unexpected gate detail: %v", err)
	}

	// A Rare player (cap 3) still has room.
	if err := CheckEligibility(fresh, trained, "Rare", now); err != nil {
		t.Fatalf("rare player should have a slot left: %v", err)
	}

	if got := WorkoutsRemainingToday(trained, "Rare", now); got != 1 {
		t.Errorf("remaining = %d, want 1", got)
	}
	if got := WorkoutsRemainingToday(trained, "Champion", now); got != 0 {
		t.Errorf("remaining at cap = %d, want 0", got)
	}
}

func TestCountUsedTodayIgnoresPastDays(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	all := []storage.HolobotState{
		{Name: "Ace", LastSyncWorkoutDate: "2026-03-09", SyncWorkoutCountToday: 1},
		{Name: "Kuma", LastSyncWorkoutDate: "2026-03-10", SyncWorkoutCountToday: 1},
		{Name: "Era"},
	}
	if got := CountUsedToday(all, now); got != 1 {
		t.Fatalf("used today = %d, want 1", got)
	}
}

func TestRecordSyncWorkoutResetsOnNewDay(t *testing.T) {
	now := time.Date(2026, 3, 10, 23, 0, 0, 0, time.Local)
	h := &storage.HolobotState{Name: "Era"}

	RecordSyncWorkout(h, now)
	if h.SyncWorkoutCountToday != 1 {
		t.Fatalf("count = %d, want 1", h.SyncWorkoutCountToday)
	}

	RecordSyncWorkout(h, now.AddDate(0, 0, 1))
	if h.SyncWorkoutCountToday != 1 {
		t.Fatalf("count after rollover = %d, want 1", h.SyncWorkoutCountToday)
	}
	if h.LastSyncWorkoutDate != "2026-03-11" {
		t.Fatalf("date = %s, want 2026-03-11", h.LastSyncWorkoutDate)
	}
}
