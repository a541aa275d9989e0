package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestApplyAttributeUpgrade(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	profiles := NewProfileRepo(db)
	if _, err := profiles.GetOrCreateMain(ctx); err != nil {
		t.Fatalf("profile: %v", err)
	}
	bots := NewHolobotRepo(db)
	if _, err := bots.GetOrCreate(ctx, "Ace", "Common"); err != nil {
		t.Fatalf("holobot: %v", err)
	}

	if err := ApplyAttributeUpgrade(ctx, db, "Ace", "attack", 100); err != nil {
		t.Fatalf("upgrade: %v", err)
	}

	p, err := profiles.Get(ctx, MainProfileKey)
	if err != nil {
		t.Fatalf("profile get: %v", err)
	}
	if p.SpentSyncPoints != 100 {
		t.Errorf("spent = %d, want 100", p.SpentSyncPoints)
	}
	h, err := bots.Get(ctx, "Ace")
	if err != nil {
		t.Fatalf("holobot get: %v", err)
	}
	if h.AttackLevel != 1 {
		t.Errorf("attack level = %d, want 1", h.AttackLevel)
	}
}

func TestApplyAttributeUpgradeRollsBackOnMissingBot(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	profiles := NewProfileRepo(db)
	if _, err := profiles.GetOrCreateMain(ctx); err != nil {
		t.Fatalf("profile: %v", err)
	}

	if err := ApplyAttributeUpgrade(ctx, db, "Nobody", "attack", 100); err == nil {
		t.Fatal("expected error for missing holobot")
	}

	p, err := profiles.Get(ctx, MainProfileKey)
	if err != nil {
		t.Fatalf("profile get: %v", err)
	}
	if p.SpentSyncPoints != 0 {
		t.Errorf("deduction leaked through rollback: spent = %d", p.SpentSyncPoints)
	}
}

func TestApplyClaimOnlyOnce(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	profiles := NewProfileRepo(db)
	if _, err := profiles.GetOrCreateMain(ctx); err != nil {
		t.Fatalf("profile: %v", err)
	}
	missions := NewMissionRepo(db)
	if err := missions.EnsureExists(ctx, "m1", 1); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	now := time.Now()
	state := &MissionState{MissionID: "m1", Season: 1, Progress: 1, Status: "completed", CompletedAt: &now}
	if err := missions.Update(ctx, state); err != nil {
		t.Fatalf("update: %v", err)
	}

	eff := ClaimEffects{HolosDelta: 1000, ClaimedAt: now}
	claimed, err := ApplyClaim(ctx, db, "m1", eff)
	if err != nil || !claimed {
		t.Fatalf("first claim = %v, %v; want true, nil", claimed, err)
	}
	claimed, err = ApplyClaim(ctx, db, "m1", eff)
	if err != nil {
		t.Fatalf("second claim: %v", err)
	}
	if claimed {
		t.Fatal("second claim should be a no-op")
	}

	p, err := profiles.Get(ctx, MainProfileKey)
	if err != nil {
		t.Fatalf("profile get: %v", err)
	}
	if p.Holos != 1000 {
		t.Errorf("holos = %d, want 1000 (paid exactly once)", p.Holos)
	}
}

func TestCountDaysWithAtLeastUsesLocalDays(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	workouts := NewWorkoutRepo(db)
	// Two sessions late on one local day, one just past local midnight.
	times := []time.Time{
		time.Date(2026, 3, 10, 23, 30, 0, 0, time.Local),
		time.Date(2026, 3, 10, 23, 50, 0, 0, time.Local),
		time.Date(2026, 3, 11, 0, 20, 0, 0, time.Local),
	}
	for i, at := range times {
		w := WorkoutRecord{
			ID:          string(rune('a' + i)),
			CreatedAt:   at,
			HolobotName: "Ace", HolobotRank: "Common", PlayerRank: "Common",
			DurationSeconds: 300,
		}
		if err := workouts.Insert(ctx, w); err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
	}

	got, err := workouts.CountDaysWithAtLeast(ctx, 2)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if got != 1 {
		t.Errorf("days with >= 2 sessions = %d, want 1", got)
	}
	got, err = workouts.CountDaysWithAtLeast(ctx, 1)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if got != 2 {
		t.Errorf("days with >= 1 session = %d, want 2", got)
	}
}

func TestMissionListBySeason(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	missions := NewMissionRepo(db)
	for _, m := range []struct {
		id     string
		season int
	}{
		{"b_mission", 1}, {"a_mission", 1}, {"future", 2},
	} {
		if err := missions.EnsureExists(ctx, m.id, m.season); err != nil {
			t.Fatalf("ensure %s: %v", m.id, err)
		}
	}

	got, err := missions.ListBySeason(ctx, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].MissionID != "a_mission" || got[1].MissionID != "b_mission" {
		t.Errorf("order = %s, %s; want a_mission, b_mission", got[0].MissionID, got[1].MissionID)
	}
}

func TestEntryListOrdering(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	entries := NewEntryRepo(db)
	base := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	for i, id := range []string{"b", "a", "c"} {
		e := SyncPointsEntry{
			ID:           id,
			CreatedAt:    base.Add(time.Duration(i) * time.Hour),
			ActivityType: "workout",
			SyncPoints:   10 * (i + 1),
		}
		if err := entries.Insert(ctx, e); err != nil {
			t.Fatalf("insert %s: %v", id, err)
		}
	}

	all, err := entries.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len = %d, want 3", len(all))
	}
	for i, want := range []string{"b", "a", "c"} {
		if all[i].ID != want {
			t.Errorf("position %d = %s, want %s (chronological order)", i, all[i].ID, want)
		}
	}

	since, err := entries.ListSince(ctx, base.Add(30*time.Minute))
	if err != nil {
		t.Fatalf("list since: %v", err)
	}
	if len(since) != 2 {
		t.Fatalf("since len = %d, want 2", len(since))
	}
}
