package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type HolobotRepo struct {
	db *sql.DB
}

func NewHolobotRepo(db *sql.DB) *HolobotRepo {
	return &HolobotRepo{db: db}
}

const holobotColumns = `name, level, experience, next_level_exp, rank, attribute_points,
	hp_level, attack_level, defense_level, speed_level, special_level,
	sync_training_hours, bond_sync_points,
	last_sync_workout_date, sync_workout_count_today`

func scanHolobot(row interface{ Scan(...any) error }) (*HolobotState, error) {
	var h HolobotState
	err := row.Scan(&h.Name, &h.Level, &h.Experience, &h.NextLevelExp, &h.Rank, &h.AttributePoints,
		&h.HPLevel, &h.AttackLevel, &h.DefenseLevel, &h.SpeedLevel, &h.SpecialLevel,
		&h.SyncTrainingHours, &h.BondSyncPoints,
		&h.LastSyncWorkoutDate, &h.SyncWorkoutCountToday)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *HolobotRepo) Get(ctx context.Context, name string) (*HolobotState, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+holobotColumns+` FROM holobot_state WHERE name = ?`, name)
	h, err := scanHolobot(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("holobot get: %w", err)
	}
	return h, nil
}

// GetOrCreate lazily creates the progression row on first activity.
func (r *HolobotRepo) GetOrCreate(ctx context.Context, name, rank string) (*HolobotState, error) {
	h, err := r.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if h != nil {
		return h, nil
	}
	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO holobot_state (name, rank) VALUES (?, ?)`, name, rank); err != nil {
		return nil, fmt.Errorf("holobot insert: %w", err)
	}
	return r.Get(ctx, name)
}

func (r *HolobotRepo) Update(ctx context.Context, h *HolobotState) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE holobot_state
		SET level = ?, experience = ?, next_level_exp = ?, rank = ?, attribute_points = ?,
			hp_level = ?, attack_level = ?, defense_level = ?, speed_level = ?, special_level = ?,
			sync_training_hours = ?, bond_sync_points = ?,
			last_sync_workout_date = ?, sync_workout_count_today = ?
		WHERE name = ?
	`, h.Level, h.Experience, h.NextLevelExp, h.Rank, h.AttributePoints,
		h.HPLevel, h.AttackLevel, h.DefenseLevel, h.SpeedLevel, h.SpecialLevel,
		h.SyncTrainingHours, h.BondSyncPoints,
		h.LastSyncWorkoutDate, h.SyncWorkoutCountToday, h.Name)
	if err != nil {
		return fmt.Errorf("holobot update: %w", err)
	}
	return nil
}

func (r *HolobotRepo) ListAll(ctx context.Context) ([]HolobotState, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+holobotColumns+` FROM holobot_state ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("holobot list: %w", err)
	}
	defer rows.Close()

	var out []HolobotState
	for rows.Next() {
		h, err := scanHolobot(rows)
		if err != nil {
			return nil, fmt.Errorf("holobot scan: %w", err)
		}
		out = append(out, *h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("holobot rows: %w", err)
	}
	return out, nil
}

var attributeColumns = map[string]string{
	"hp":      "hp_level",
	"attack":  "attack_level",
	"defense": "defense_level",
	"speed":   "speed_level",
	"special": "special_level",
}

// ApplyAttributeUpgrade atomically deducts cost from the profile's balance
// and increments one attribute level. Either both writes land or neither.
func ApplyAttributeUpgrade(ctx context.Context, db *sql.DB, holobotName, attribute string, cost int) error {
	col, ok := attributeColumns[attribute]
	if !ok {
		return fmt.Errorf("unknown attribute: %q", attribute)
	}
	return WithTx(ctx, db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`UPDATE profile SET spent_sync_points = spent_sync_points + ? WHERE key = ?`,
			cost, MainProfileKey); err != nil {
			return fmt.Errorf("upgrade deduct: %w", err)
		}
		res, err := tx.ExecContext(ctx,
			`UPDATE holobot_state SET `+col+` = `+col+` + 1 WHERE name = ?`, holobotName)
		if err != nil {
			return fmt.Errorf("upgrade increment: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("upgrade rows affected: %w", err)
		}
		if n == 0 {
			return fmt.Errorf("holobot %q not found", holobotName)
		}
		return nil
	})
}
