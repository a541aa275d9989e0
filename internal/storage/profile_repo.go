package storage

import (
	"context"
	"database/sql"
	"fmt"
)

const MainProfileKey = "main_user"

type ProfileRepo struct {
	db *sql.DB
}

func NewProfileRepo(db *sql.DB) *ProfileRepo {
	return &ProfileRepo{db: db}
}

func (r *ProfileRepo) Get(ctx context.Context, key string) (*Profile, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT key, username, player_rank, spent_sync_points, holos,
			sp_boost_percent, sp_boost_expires_at, tracker_connected
		FROM profile WHERE key = ?`, key)

	var p Profile
	var connected int
	if err := row.Scan(&p.Key, &p.Username, &p.PlayerRank, &p.SpentSyncPoints, &p.Holos,
		&p.SPBoostPercent, &p.SPBoostExpiresAt, &connected); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("profile get: %w", err)
	}
	p.TrackerConnected = connected != 0
	return &p, nil
}

func (r *ProfileRepo) GetOrCreateMain(ctx context.Context) (*Profile, error) {
	p, err := r.Get(ctx, MainProfileKey)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}

	if _, err := r.db.ExecContext(ctx, `INSERT INTO profile (key) VALUES (?)`, MainProfileKey); err != nil {
		return nil, fmt.Errorf("profile insert: %w", err)
	}
	return r.Get(ctx, MainProfileKey)
}

func (r *ProfileRepo) Update(ctx context.Context, p *Profile) error {
	connected := 0
	if p.TrackerConnected {
		connected = 1
	}
	_, err := r.db.ExecContext(ctx, `
		UPDATE profile
		SET username = ?, player_rank = ?, spent_sync_points = ?, holos = ?,
			sp_boost_percent = ?, sp_boost_expires_at = ?, tracker_connected = ?
		WHERE key = ?
	`, p.Username, p.PlayerRank, p.SpentSyncPoints, p.Holos,
		p.SPBoostPercent, p.SPBoostExpiresAt, connected, p.Key)
	if err != nil {
		return fmt.Errorf("profile update: %w", err)
	}
	return nil
}
