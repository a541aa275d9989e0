package engine

import (
	"testing"

	"github.com/Pak209/HoloSync/internal/storage"
)

func TestGainExperience(t *testing.T) {
	h := &storage.HolobotState{Name: "Ace", Level: 1, NextLevelExp: 100, Rank: "Common"}

	if gained := GainExperience(h, 50); gained != 0 {
		t.Fatalf("gained = %d, want 0", gained)
	}
	if h.Level != 1 || h.Experience != 50 {
		t.Fatalf("state = lvl %d exp %d, want lvl 1 exp 50", h.Level, h.Experience)
	}

	// 50 more crosses 100, the next threshold doubles to 200.
	if gained := GainExperience(h, 50); gained != 1 {
		t.Fatalf("gained = %d, want 1", gained)
	}
	if h.Level != 2 || h.NextLevelExp != 200 {
		t.Fatalf("state = lvl %d next %d, want lvl 2 next 200", h.Level, h.NextLevelExp)
	}

	// A big drop can clear several levels at once.
	if gained := GainExperience(h, 700); gained != 3 {
		t.Fatalf("gained = %d, want 3", gained)
	}
	if h.Level != 5 || h.NextLevelExp != 1600 {
		t.Fatalf("state = lvl %d next %d, want lvl 5 next 1600", h.Level, h.NextLevelExp)
	}
}

func TestGainExperiencePromotesRank(t *testing.T) {
	h := &storage.HolobotState{Name: "Ken", Level: 9, Experience: 0, NextLevelExp: 100, Rank: "Common"}
	GainExperience(h, 100)
	if h.Level != 10 || h.Rank != "Champion" {
		t.Fatalf("state = lvl %d rank %s, want lvl 10 Champion", h.Level, h.Rank)
	}
}

func TestGainExperienceIgnoresNonPositive(t *testing.T) {
	h := &storage.HolobotState{Name: "Ace", Level: 3, Experience: 10, NextLevelExp: 400, Rank: "Common"}
	if GainExperience(h, 0) != 0 || GainExperience(h, -5) != 0 {
		t.Fatal("non-positive exp should be a no-op")
	}
	if h.Experience != 10 {
		t.Fatalf("experience = %d, want 10", h.Experience)
	}
}
