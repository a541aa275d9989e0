package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type MissionRepo struct {
	db *sql.DB
}

func NewMissionRepo(db *sql.DB) *MissionRepo {
	return &MissionRepo{db: db}
}

func (r *MissionRepo) Get(ctx context.Context, missionID string) (*MissionState, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT mission_id, season, progress, status, completed_at, claimed_at
		FROM missions WHERE mission_id = ?`, missionID)
	var m MissionState
	if err := row.Scan(&m.MissionID, &m.Season, &m.Progress, &m.Status, &m.CompletedAt, &m.ClaimedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("mission get: %w", err)
	}
	return &m, nil
}

// EnsureExists inserts a locked row for the mission if none is present.
func (r *MissionRepo) EnsureExists(ctx context.Context, missionID string, season int) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO missions (mission_id, season) VALUES (?, ?)
		ON CONFLICT(mission_id) DO NOTHING
	`, missionID, season)
	if err != nil {
		return fmt.Errorf("mission ensure: %w", err)
	}
	return nil
}

func (r *MissionRepo) Update(ctx context.Context, m *MissionState) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE missions
		SET progress = ?, status = ?, completed_at = ?, claimed_at = ?
		WHERE mission_id = ?
	`, m.Progress, m.Status, m.CompletedAt, m.ClaimedAt, m.MissionID)
	if err != nil {
		return fmt.Errorf("mission update: %w", err)
	}
	return nil
}

func (r *MissionRepo) ListBySeason(ctx context.Context, season int) ([]MissionState, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT mission_id, season, progress, status, completed_at, claimed_at
		FROM missions WHERE season = ? ORDER BY mission_id ASC`, season)
	if err != nil {
		return nil, fmt.Errorf("mission list: %w", err)
	}
	defer rows.Close()

	var out []MissionState
	for rows.Next() {
		var m MissionState
		if err := rows.Scan(&m.MissionID, &m.Season, &m.Progress, &m.Status, &m.CompletedAt, &m.ClaimedAt); err != nil {
			return nil, fmt.Errorf("mission scan: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("mission rows: %w", err)
	}
	return out, nil
}

// ClaimEffects is everything a successful claim writes besides the status
// flip: an optional ledger entry, a Holos credit, and an SP-boost grant.
type ClaimEffects struct {
	Entry        *SyncPointsEntry
	HolosDelta   int
	BoostPercent int
	BoostExpires *time.Time
	ClaimedAt    time.Time
}

// ApplyClaim flips a completed mission to claimed and applies its reward in
// one transaction. It reports false (with no side effects) when the mission
// is not currently in the completed state, which makes double-claims a no-op
// at the storage level too.
func ApplyClaim(ctx context.Context, db *sql.DB, missionID string, eff ClaimEffects) (bool, error) {
	claimed := false
	err := WithTx(ctx, db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE missions SET status = 'claimed', claimed_at = ?
			WHERE mission_id = ? AND status = 'completed'
		`, eff.ClaimedAt, missionID)
		if err != nil {
			return fmt.Errorf("claim update: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("claim rows affected: %w", err)
		}
		if n == 0 {
			return nil
		}
		claimed = true

		if eff.Entry != nil {
			e := eff.Entry
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO sync_points_entries (
					id, created_at, activity_type, sync_points,
					steps_count, sync_training_minutes, holobot_name
				) VALUES (?, ?, ?, ?, ?, ?, ?)
			`, e.ID, e.CreatedAt, e.ActivityType, e.SyncPoints,
				e.StepsCount, e.SyncTrainingMinutes, e.HolobotName); err != nil {
				return fmt.Errorf("claim entry insert: %w", err)
			}
		}
		if eff.HolosDelta != 0 {
			if _, err := tx.ExecContext(ctx,
				`UPDATE profile SET holos = holos + ? WHERE key = ?`,
				eff.HolosDelta, MainProfileKey); err != nil {
				return fmt.Errorf("claim holos: %w", err)
			}
		}
		if eff.BoostPercent != 0 {
			if _, err := tx.ExecContext(ctx,
				`UPDATE profile SET sp_boost_percent = ?, sp_boost_expires_at = ? WHERE key = ?`,
				eff.BoostPercent, eff.BoostExpires, MainProfileKey); err != nil {
				return fmt.Errorf("claim boost: %w", err)
			}
		}
		return nil
	})
	return claimed, err
}
