package engine

import "github.com/Pak209/HoloSync/internal/config"

// BondStatus describes where a holobot's Sync Bond currently stands.
type BondStatus struct {
	Level             int
	AbilityBoost      int
	PartCompatibility int
	// Unlocks lists every unlock identifier earned up to the current
	// level, in level order.
	Unlocks []string
	// Progress is the percentage toward the next level, 0..100. Held at
	// 100 once the top of the table is reached.
	Progress float64
	// NextHours and NextPoints are the thresholds for the next level, or
	// zero at max level.
	NextHours  float64
	NextPoints int
}

// BondLevelFor evaluates a holobot's bond against the threshold table. The
// level is the highest row whose hour and point thresholds are both met, so
// it can only ever rise as training accumulates.
func BondLevelFor(table []config.BondLevel, hours float64, points int) BondStatus {
	level := 0
	for i, row := range table {
		if hours >= row.MinHours && points >= row.MinPoints {
			level = i
		}
	}

	cur := table[level]
	status := BondStatus{
		Level:             level,
		AbilityBoost:      cur.AbilityBoost,
		PartCompatibility: cur.PartCompatibility,
	}
	for i := 0; i <= level; i++ {
		if table[i].Unlock != "" {
			status.Unlocks = append(status.Unlocks, table[i].Unlock)
		}
	}

	if level == len(table)-1 {
		status.Progress = 100
		return status
	}

	next := table[level+1]
	status.NextHours = next.MinHours
	status.NextPoints = next.MinPoints

	hoursFrac := 1.0
	if next.MinHours > 0 {
		hoursFrac = hours / next.MinHours
	}
	pointsFrac := 1.0
	if next.MinPoints > 0 {
		pointsFrac = float64(points) / float64(next.MinPoints)
	}
	frac := hoursFrac
	if pointsFrac < frac {
		frac = pointsFrac
	}
	progress := frac * 100
	if progress < 0 {
		progress = 0
	}
	if progress >= 100 {
		// Thresholds met but the slower axis keeps the level down until
		// both are; never show a full bar below the next level.
		progress = 99.9
	}
	status.Progress = progress
	return status
}
