package engine

import (
	"testing"

	"github.com/Pak209/HoloSync/internal/config"
)

func TestBondLevelFor(t *testing.T) {
	table := config.Default().Bond

	cases := []struct {
		hours  float64
		points int
		level  int
	}{
		{0, 0, 0},
		{0.9, 500, 0},   // points alone are not enough
		{5, 50, 0},      // hours alone are not enough
		{1, 100, 1},
		{3, 300, 2},
		{12, 1600, 4},
		{100, 100000, 7},
	}
	for _, c := range cases {
		got := BondLevelFor(table, c.hours, c.points)
		if got.Level != c.level {
			t.Errorf("BondLevelFor(%v h, %d sp).Level = %d, want %d", c.hours, c.points, got.Level, c.level)
		}
	}
}

func TestBondLevelMonotonic(t *testing.T) {
	table := config.Default().Bond

	prev := 0
	for hours := 0.0; hours <= 50; hours += 0.5 {
		points := int(hours * 200)
		got := BondLevelFor(table, hours, points)
		if got.Level < prev {
			t.Fatalf("bond level regressed from %d to %d at %v hours", prev, got.Level, hours)
		}
		prev = got.Level
	}
}

func TestBondProgress(t *testing.T) {
	table := config.Default().Bond

	got := BondLevelFor(table, 0.5, 50)
	if got.Progress != 50 {
		t.Errorf("half way to level 1 = %v, want 50", got.Progress)
	}
	if got.NextHours != 1 || got.NextPoints != 100 {
		t.Errorf("next thresholds = %v h / %d sp, want 1 h / 100 sp", got.NextHours, got.NextPoints)
	}

	// The slower axis drives progress.
	got = BondLevelFor(table, 0.25, 1000)
	if got.Progress != 25 {
		t.Errorf("hour-bound progress = %v, want 25", got.Progress)
	}

	// Max level holds at 100.
	got = BondLevelFor(table, 1000, 1000000)
	if got.Level != len(table)-1 || got.Progress != 100 {
		t.Errorf("max bond = level %d progress %v, want %d and 100", got.Level, got.Progress, len(table)-1)
	}
}

func TestBondUnlocksAccumulate(t *testing.T) {
	table := config.Default().Bond

	got := BondLevelFor(table, 6, 750)
	want := []string{"bond_greeting", "bond_combo_move"}
	if len(got.Unlocks) != len(want) {
		t.Fatalf("unlocks = %v, want %v", got.Unlocks, want)
	}
	for i := range want {
		if got.Unlocks[i] != want[i] {
			t.Fatalf("unlocks = %v, want %v", got.Unlocks, want)
		}
	}

	if got := BondLevelFor(table, 0, 0); len(got.Unlocks) != 0 {
		t.Fatalf("level 0 unlocks = %v, want none", got.Unlocks)
	}
}
