package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// EntryRepo persists the Sync Points ledger. Rows are append-only: there is
// no update or delete path, spending is tracked on the profile instead.
type EntryRepo struct {
	db *sql.DB
}

func NewEntryRepo(db *sql.DB) *EntryRepo {
	return &EntryRepo{db: db}
}

func (r *EntryRepo) Insert(ctx context.Context, e SyncPointsEntry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sync_points_entries (
			id, created_at, activity_type, sync_points,
			steps_count, sync_training_minutes, holobot_name
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`, e.ID, e.CreatedAt, e.ActivityType, e.SyncPoints,
		e.StepsCount, e.SyncTrainingMinutes, e.HolobotName)
	if err != nil {
		return fmt.Errorf("entry insert: %w", err)
	}
	return nil
}

func (r *EntryRepo) ListAll(ctx context.Context) ([]SyncPointsEntry, error) {
	return r.list(ctx, `
		SELECT id, created_at, activity_type, sync_points,
			steps_count, sync_training_minutes, holobot_name
		FROM sync_points_entries
		ORDER BY created_at ASC, id ASC
	`)
}

func (r *EntryRepo) ListSince(ctx context.Context, since time.Time) ([]SyncPointsEntry, error) {
	return r.list(ctx, `
		SELECT id, created_at, activity_type, sync_points,
			steps_count, sync_training_minutes, holobot_name
		FROM sync_points_entries
		WHERE created_at >= ?
		ORDER BY created_at ASC, id ASC
	`, since)
}

func (r *EntryRepo) list(ctx context.Context, query string, args ...any) ([]SyncPointsEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("entry list: %w", err)
	}
	defer rows.Close()

	var out []SyncPointsEntry
	for rows.Next() {
		var e SyncPointsEntry
		if err := rows.Scan(&e.ID, &e.CreatedAt, &e.ActivityType, &e.SyncPoints,
			&e.StepsCount, &e.SyncTrainingMinutes, &e.HolobotName); err != nil {
			return nil, fmt.Errorf("entry scan: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("entry rows: %w", err)
	}
	return out, nil
}
