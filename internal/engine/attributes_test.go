package engine

import (
	"errors"
	"testing"

	"github.com/Pak209/HoloSync/internal/config"
)

func TestUpgradeCost(t *testing.T) {
	cfg := config.Default().Sync

	cost, err := UpgradeCost(cfg, "attack", 0)
	if err != nil || cost != 100 {
		t.Fatalf("level 0 cost = %d, %v; want 100, nil", cost, err)
	}
	cost, err = UpgradeCost(cfg, "attack", 4)
	if err != nil || cost != 510 {
		t.Fatalf("level 4 cost = %d, %v; want 510, nil", cost, err)
	}

	_, err = UpgradeCost(cfg, "attack", 5)
	if !errors.Is(err, ErrMaxLevelReached) {
		t.Fatalf("expected ErrMaxLevelReached at cap, got %v", err)
	}
}

func TestCheckSpend(t *testing.T) {
	if err := CheckSpend(100, 100); err != nil {
		t.Fatalf("exact balance should be spendable: %v", err)
	}
	err := CheckSpend(101, 100)
	if !errors.Is(err, ErrInsufficientPoints) {
		t.Fatalf("expected ErrInsufficientPoints, got %v", err)
	}
	var ipe *InsufficientPointsError
	if !errors.As(err, &ipe) || ipe.Cost != 101 || ipe.Available != 100 {
		t.Fatalf("unexpected detail: %v", err)
	}
}

func TestTotalInvestment(t *testing.T) {
	cfg := config.Default().Sync

	if got := TotalInvestment(cfg, 0, 0, 0, 0, 0); got != 0 {
		t.Errorf("no upgrades = %d, want 0", got)
	}
	// Two levels of one attribute and one of another: 100+150 + 100.
	if got := TotalInvestment(cfg, 2, 1); got != 350 {
		t.Errorf("investment = %d, want 350", got)
	}
}

func TestStatBonus(t *testing.T) {
	// 10% of base per level, floored.
	if got := StatBonus(150, 2); got != 30 {
		t.Errorf("StatBonus(150, 2) = %d, want 30", got)
	}
	if got := StatBonus(185, 3); got != 55 {
		t.Errorf("StatBonus(185, 3) = %d, want 55", got)
	}
	if got := StatBonus(150, 0); got != 0 {
		t.Errorf("StatBonus(150, 0) = %d, want 0", got)
	}
	if got := BoostedStat(150, 2); got != 180 {
		t.Errorf("BoostedStat(150, 2) = %d, want 180", got)
	}
}

func TestValidAttribute(t *testing.T) {
	for _, a := range Attributes {
		if !ValidAttribute(a) {
			t.Errorf("%q should be valid", a)
		}
	}
	if ValidAttribute("luck") {
		t.Error("luck should not be valid")
	}
}
