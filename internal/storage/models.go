package storage

import "time"

// Profile is the single local player aggregate.
type Profile struct {
	Key              string
	Username         string
	PlayerRank       string
	SpentSyncPoints  int
	Holos            int
	SPBoostPercent   int
	SPBoostExpiresAt *time.Time
	TrackerConnected bool
}

// SyncPointsEntry is one immutable row of the earned-points ledger.
// Rows are append-only and never reordered; insertion order is chronological.
type SyncPointsEntry struct {
	ID                  string
	CreatedAt           time.Time
	ActivityType        string // workout | sync_training | daily_steps | mission_reward
	SyncPoints          int
	StepsCount          *int
	SyncTrainingMinutes *int
	HolobotName         *string
}

// HolobotState is the mutable per-Holobot progression row.
type HolobotState struct {
	Name            string
	Level           int
	Experience      int
	NextLevelExp    int
	Rank            string
	AttributePoints int

	HPLevel      int
	AttackLevel  int
	DefenseLevel int
	SpeedLevel   int
	SpecialLevel int

	SyncTrainingHours float64
	BondSyncPoints    int

	// LastSyncWorkoutDate is a local calendar date (YYYY-MM-DD), empty when
	// the Holobot has never trained.
	LastSyncWorkoutDate   string
	SyncWorkoutCountToday int
}

// MissionState is the per-mission progression row. Definitions (title,
// target, reward) live in the engine; only the mutable part is stored.
type MissionState struct {
	MissionID   string
	Season      int
	Progress    int
	Status      string // locked | in_progress | completed | claimed
	CompletedAt *time.Time
	ClaimedAt   *time.Time
}

// WorkoutRecord is one persisted completed session.
type WorkoutRecord struct {
	ID              string
	CreatedAt       time.Time
	HolobotName     string
	HolobotRank     string
	PlayerRank      string
	Steps           int
	Calories        int
	DurationSeconds int
	SyncPoints      int
	Holos           int
	ExpEarned       int
	AttributeBoosts int
}
