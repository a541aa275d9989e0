package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS profile (
			key TEXT PRIMARY KEY,
			username TEXT DEFAULT '',
			player_rank TEXT DEFAULT 'Common',
			spent_sync_points INTEGER DEFAULT 0,
			holos INTEGER DEFAULT 0,
			sp_boost_percent INTEGER DEFAULT 0,
			sp_boost_expires_at DATETIME,
			tracker_connected INTEGER DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS sync_points_entries (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			activity_type TEXT NOT NULL,
			sync_points INTEGER NOT NULL,
			steps_count INTEGER,
			sync_training_minutes INTEGER,
			holobot_name TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS holobot_state (
			name TEXT PRIMARY KEY,
			level INTEGER DEFAULT 1,
			experience INTEGER DEFAULT 0,
			next_level_exp INTEGER DEFAULT 100,
			rank TEXT DEFAULT '',
			attribute_points INTEGER DEFAULT 0,

			hp_level INTEGER DEFAULT 0,
			attack_level INTEGER DEFAULT 0,
			defense_level INTEGER DEFAULT 0,
			speed_level INTEGER DEFAULT 0,
			special_level INTEGER DEFAULT 0,

			sync_training_hours REAL DEFAULT 0,
			bond_sync_points INTEGER DEFAULT 0,

			last_sync_workout_date TEXT DEFAULT '',
			sync_workout_count_today INTEGER DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS missions (
			mission_id TEXT PRIMARY KEY,
			season INTEGER NOT NULL,
			progress INTEGER DEFAULT 0,
			status TEXT DEFAULT 'locked',
			completed_at DATETIME,
			claimed_at DATETIME
		);`,
		// Append-only audit of completed sessions; never updated or deleted.
		`CREATE TABLE IF NOT EXISTS workout_history (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			holobot_name TEXT NOT NULL,
			holobot_rank TEXT NOT NULL,
			player_rank TEXT NOT NULL,
			steps INTEGER NOT NULL,
			calories INTEGER NOT NULL,
			duration_seconds INTEGER NOT NULL,
			sync_points INTEGER NOT NULL,
			holos INTEGER NOT NULL,
			exp_earned INTEGER NOT NULL,
			attribute_boosts INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_entries_created_at ON sync_points_entries(created_at);`,
		`CREATE INDEX IF NOT EXISTS idx_workout_history_created_at ON workout_history(created_at);`,
		`CREATE INDEX IF NOT EXISTS idx_missions_status ON missions(status);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
