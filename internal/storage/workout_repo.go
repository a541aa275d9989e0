package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type WorkoutRepo struct {
	db *sql.DB
}

func NewWorkoutRepo(db *sql.DB) *WorkoutRepo {
	return &WorkoutRepo{db: db}
}

func (r *WorkoutRepo) Insert(ctx context.Context, w WorkoutRecord) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO workout_history (
			id, created_at, holobot_name, holobot_rank, player_rank,
			steps, calories, duration_seconds,
			sync_points, holos, exp_earned, attribute_boosts
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, w.ID, w.CreatedAt, w.HolobotName, w.HolobotRank, w.PlayerRank,
		w.Steps, w.Calories, w.DurationSeconds,
		w.SyncPoints, w.Holos, w.ExpEarned, w.AttributeBoosts)
	if err != nil {
		return fmt.Errorf("workout insert: %w", err)
	}
	return nil
}

func (r *WorkoutRepo) ListRecent(ctx context.Context, limit int) ([]WorkoutRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, created_at, holobot_name, holobot_rank, player_rank,
			steps, calories, duration_seconds,
			sync_points, holos, exp_earned, attribute_boosts
		FROM workout_history
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("workout list: %w", err)
	}
	defer rows.Close()

	var out []WorkoutRecord
	for rows.Next() {
		var w WorkoutRecord
		if err := rows.Scan(&w.ID, &w.CreatedAt, &w.HolobotName, &w.HolobotRank, &w.PlayerRank,
			&w.Steps, &w.Calories, &w.DurationSeconds,
			&w.SyncPoints, &w.Holos, &w.ExpEarned, &w.AttributeBoosts); err != nil {
			return nil, fmt.Errorf("workout scan: %w", err)
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("workout rows: %w", err)
	}
	return out, nil
}

func (r *WorkoutRepo) Count(ctx context.Context) (int, error) {
	row := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM workout_history`)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("workout count: %w", err)
	}
	return n, nil
}

func (r *WorkoutRepo) CountDistinctHolobots(ctx context.Context) (int, error) {
	row := r.db.QueryRowContext(ctx, `SELECT COUNT(DISTINCT holobot_name) FROM workout_history`)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("workout distinct holobots: %w", err)
	}
	return n, nil
}

// CountDaysWithAtLeast counts calendar days carrying n or more completed
// sessions. Days are bucketed in Go using local time; sqlite's date()
// evaluates in UTC and would disagree with the engine's day keys near
// midnight.
func (r *WorkoutRepo) CountDaysWithAtLeast(ctx context.Context, n int) (int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT created_at FROM workout_history`)
	if err != nil {
		return 0, fmt.Errorf("workout day count: %w", err)
	}
	defer rows.Close()

	perDay := map[string]int{}
	for rows.Next() {
		var at time.Time
		if err := rows.Scan(&at); err != nil {
			return 0, fmt.Errorf("workout day scan: %w", err)
		}
		perDay[at.Local().Format("2006-01-02")]++
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("workout day rows: %w", err)
	}

	count := 0
	for _, c := range perDay {
		if c >= n {
			count++
		}
	}
	return count, nil
}
