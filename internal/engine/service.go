package engine

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Pak209/HoloSync/internal/config"
	"github.com/Pak209/HoloSync/internal/holobots"
	"github.com/Pak209/HoloSync/internal/storage"
)

// Service wires the reward engine to the sqlite repos. All state changes
// that commands and the TUI perform go through here.
type Service struct {
	db       *sql.DB
	cfg      *config.Config
	log      *slog.Logger
	profiles *storage.ProfileRepo
	entries  *storage.EntryRepo
	holobots *storage.HolobotRepo
	missions *storage.MissionRepo
	workouts *storage.WorkoutRepo

	// Now is swappable for clock-sensitive tests.
	Now func() time.Time
}

func NewService(db *sql.DB, cfg *config.Config, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		db:       db,
		cfg:      cfg,
		log:      log,
		profiles: storage.NewProfileRepo(db),
		entries:  storage.NewEntryRepo(db),
		holobots: storage.NewHolobotRepo(db),
		missions: storage.NewMissionRepo(db),
		workouts: storage.NewWorkoutRepo(db),
		Now:      time.Now,
	}
}

func (s *Service) Config() *config.Config            { return s.cfg }
func (s *Service) WorkoutRepo() *storage.WorkoutRepo { return s.workouts }
func (s *Service) EntryRepo() *storage.EntryRepo     { return s.entries }
func (s *Service) HolobotRepo() *storage.HolobotRepo { return s.holobots }

// Profile returns the main profile, expiring a stale SP boost on the way.
func (s *Service) Profile(ctx context.Context) (*storage.Profile, error) {
	p, err := s.profiles.GetOrCreateMain(ctx)
	if err != nil {
		return nil, err
	}
	if p.SPBoostPercent > 0 && p.SPBoostExpiresAt != nil && s.Now().After(*p.SPBoostExpiresAt) {
		p.SPBoostPercent = 0
		p.SPBoostExpiresAt = nil
		if err := s.profiles.Update(ctx, p); err != nil {
			return nil, err
		}
		s.log.Debug("sp boost expired")
	}
	return p, nil
}

// Stats computes ledger totals for the main profile.
func (s *Service) Stats(ctx context.Context) (LedgerStats, error) {
	p, err := s.Profile(ctx)
	if err != nil {
		return LedgerStats{}, err
	}
	entries, err := s.entries.ListAll(ctx)
	if err != nil {
		return LedgerStats{}, err
	}
	return ComputeLedgerStats(entries, p.SpentSyncPoints, s.Now()), nil
}

// Holobot loads (or lazily creates) the progression row for a named bot.
// Unknown names are rejected against the template table.
func (s *Service) Holobot(ctx context.Context, name string) (*storage.HolobotState, error) {
	tmpl, ok := holobots.ByName(name)
	if !ok {
		return nil, fmt.Errorf("unknown holobot %q", name)
	}
	return s.holobots.GetOrCreate(ctx, tmpl.Name, RankCommon)
}

// Holobots lists every bot that has trained at least once.
func (s *Service) Holobots(ctx context.Context) ([]storage.HolobotState, error) {
	return s.holobots.ListAll(ctx)
}

// CheckWorkoutEligibility verifies the named bot can start a sync workout
// right now. Called at session start and again at completion, never cached.
func (s *Service) CheckWorkoutEligibility(ctx context.Context, name string) (*storage.HolobotState, error) {
	if name == "" {
		return nil, ErrNoHolobotSelected
	}
	h, err := s.Holobot(ctx, name)
	if err != nil {
		return nil, err
	}
	p, err := s.Profile(ctx)
	if err != nil {
		return nil, err
	}
	all, err := s.holobots.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if err := CheckEligibility(h, all, p.PlayerRank, s.Now()); err != nil {
		return nil, err
	}
	return h, nil
}

// WorkoutResult is the outcome of a completed session, for display.
type WorkoutResult struct {
	Reward       WorkoutReward
	LevelsGained int
	Holobot      *storage.HolobotState
	Bond         BondStatus
	// Simulated is set when calories came from the simulated estimate
	// rather than a real activity source.
	Simulated bool
}

// CompleteWorkoutParams carries the measured facts of a finished session.
type CompleteWorkoutParams struct {
	HolobotName     string
	DurationSeconds int
	Steps           int
	Calories        int
	Simulated       bool
}

// CompleteWorkout is the single authoritative completion path. It re-checks
// eligibility, computes the final reward exactly once, appends the ledger
// entry, advances the bot and profile, records history, and folds the new
// counters into mission progress.
func (s *Service) CompleteWorkout(ctx context.Context, params CompleteWorkoutParams) (*WorkoutResult, error) {
	now := s.Now()

	p, err := s.Profile(ctx)
	if err != nil {
		return nil, err
	}
	h, err := s.CheckWorkoutEligibility(ctx, params.HolobotName)
	if err != nil {
		return nil, err
	}

	reward := CalculateWorkoutReward(s.cfg.Sync, WorkoutInput{
		DurationSeconds: params.DurationSeconds,
		Steps:           params.Steps,
		Calories:        params.Calories,
		HolobotRank:     h.Rank,
		PlayerRank:      p.PlayerRank,
		SPBoostPercent:  p.SPBoostPercent,
	})

	minutes := params.DurationSeconds / 60
	entry := storage.SyncPointsEntry{
		ID:                  uuid.NewString(),
		CreatedAt:           now,
		ActivityType:        ActivityWorkout,
		SyncPoints:          reward.SyncPoints,
		StepsCount:          &params.Steps,
		SyncTrainingMinutes: &minutes,
		HolobotName:         &h.Name,
	}
	if err := s.entries.Insert(ctx, entry); err != nil {
		return nil, err
	}

	levels := GainExperience(h, reward.ExpEarned)
	h.AttributePoints += reward.AttributeBoosts
	h.SyncTrainingHours += float64(params.DurationSeconds) / 3600
	h.BondSyncPoints += reward.SyncPoints
	RecordSyncWorkout(h, now)
	if err := s.holobots.Update(ctx, h); err != nil {
		return nil, err
	}

	if reward.Holos > 0 {
		p.Holos += reward.Holos
		if err := s.profiles.Update(ctx, p); err != nil {
			return nil, err
		}
	}

	record := storage.WorkoutRecord{
		ID:              uuid.NewString(),
		CreatedAt:       now,
		HolobotName:     h.Name,
		HolobotRank:     h.Rank,
		PlayerRank:      p.PlayerRank,
		Steps:           params.Steps,
		Calories:        params.Calories,
		DurationSeconds: params.DurationSeconds,
		SyncPoints:      reward.SyncPoints,
		Holos:           reward.Holos,
		ExpEarned:       reward.ExpEarned,
		AttributeBoosts: reward.AttributeBoosts,
	}
	if err := s.workouts.Insert(ctx, record); err != nil {
		return nil, err
	}

	if err := s.advanceMissions(ctx); err != nil {
		// Mission bookkeeping must not lose an already-recorded workout.
		s.log.Warn("mission progress update failed", "err", err)
	}

	s.log.Info("workout completed",
		"holobot", h.Name, "duration_s", params.DurationSeconds,
		"sync_points", reward.SyncPoints, "holos", reward.Holos)

	return &WorkoutResult{
		Reward:       reward,
		LevelsGained: levels,
		Holobot:      h,
		Bond:         BondLevelFor(s.cfg.Bond, h.SyncTrainingHours, h.BondSyncPoints),
		Simulated:    params.Simulated,
	}, nil
}

// AddTrainingEntry logs a manual sync-training block of 1 to 300 minutes
// against a bot, outside a live session.
func (s *Service) AddTrainingEntry(ctx context.Context, name string, minutes int) (int, error) {
	if minutes < 1 || minutes > 300 {
		return 0, fmt.Errorf("training minutes must be between 1 and 300")
	}
	h, err := s.Holobot(ctx, name)
	if err != nil {
		return 0, err
	}

	points := CalculateTrainingPoints(s.cfg.Sync, minutes, h.Rank)
	entry := storage.SyncPointsEntry{
		ID:                  uuid.NewString(),
		CreatedAt:           s.Now(),
		ActivityType:        ActivitySyncTraining,
		SyncPoints:          points,
		SyncTrainingMinutes: &minutes,
		HolobotName:         &h.Name,
	}
	if err := s.entries.Insert(ctx, entry); err != nil {
		return 0, err
	}

	h.SyncTrainingHours += float64(minutes) / 60
	h.BondSyncPoints += points
	if err := s.holobots.Update(ctx, h); err != nil {
		return 0, err
	}
	return points, nil
}

// SyncSteps converts today's step count into Sync Points, once per calendar
// day, with the streak multiplier applied.
func (s *Service) SyncSteps(ctx context.Context, steps int) (int, error) {
	if steps < s.cfg.Sync.MinimumStepsForReward {
		return 0, fmt.Errorf("need at least %d steps to sync, have %d",
			s.cfg.Sync.MinimumStepsForReward, steps)
	}
	entries, err := s.entries.ListAll(ctx)
	if err != nil {
		return 0, err
	}
	now := s.Now()
	if HasDailyStepEntry(entries, now) {
		return 0, fmt.Errorf("steps already synced today")
	}

	p, err := s.Profile(ctx)
	if err != nil {
		return 0, err
	}
	stats := ComputeLedgerStats(entries, p.SpentSyncPoints, now)
	streak := stats.StreakDays
	if stats.TodaySteps == 0 && !activeToday(entries, now) {
		// This sync is today's first activity and extends the streak.
		streak++
	}
	points := CalculateStepPoints(s.cfg.Sync, steps, streak)

	entry := storage.SyncPointsEntry{
		ID:           uuid.NewString(),
		CreatedAt:    now,
		ActivityType: ActivityDailySteps,
		SyncPoints:   points,
		StepsCount:   &steps,
	}
	if err := s.entries.Insert(ctx, entry); err != nil {
		return 0, err
	}

	if err := s.advanceMissions(ctx); err != nil {
		s.log.Warn("mission progress update failed", "err", err)
	}
	return points, nil
}

// UpgradeAttribute spends Sync Points to raise one attribute level. Deduct
// and increment are a single transaction.
func (s *Service) UpgradeAttribute(ctx context.Context, name, attribute string) (int, error) {
	if !ValidAttribute(attribute) {
		return 0, fmt.Errorf("unknown attribute %q (want one of %v)", attribute, Attributes)
	}
	h, err := s.Holobot(ctx, name)
	if err != nil {
		return 0, err
	}

	cost, err := UpgradeCost(s.cfg.Sync, attribute, attributeLevel(h, attribute))
	if err != nil {
		return 0, err
	}
	stats, err := s.Stats(ctx)
	if err != nil {
		return 0, err
	}
	if err := CheckSpend(cost, stats.Available); err != nil {
		return 0, err
	}

	if err := storage.ApplyAttributeUpgrade(ctx, s.db, h.Name, attribute, cost); err != nil {
		return 0, err
	}
	s.log.Info("attribute upgraded", "holobot", h.Name, "attribute", attribute, "cost", cost)
	return cost, nil
}

// Bond reports the named bot's Sync Bond standing.
func (s *Service) Bond(ctx context.Context, name string) (BondStatus, error) {
	h, err := s.Holobot(ctx, name)
	if err != nil {
		return BondStatus{}, err
	}
	return BondLevelFor(s.cfg.Bond, h.SyncTrainingHours, h.BondSyncPoints), nil
}

// ConnectTracker marks an activity tracker as linked on the profile.
func (s *Service) ConnectTracker(ctx context.Context) error {
	p, err := s.Profile(ctx)
	if err != nil {
		return err
	}
	if !p.TrackerConnected {
		p.TrackerConnected = true
		if err := s.profiles.Update(ctx, p); err != nil {
			return err
		}
	}
	return s.advanceMissions(ctx)
}

// MissionView pairs a mission definition with its stored progress.
type MissionView struct {
	Mission
	State storage.MissionState
}

// Missions returns the current season's missions with up-to-date progress.
func (s *Service) Missions(ctx context.Context) ([]MissionView, error) {
	if err := s.advanceMissions(ctx); err != nil {
		return nil, err
	}
	states, err := s.missions.ListBySeason(ctx, CurrentSeason)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]storage.MissionState, len(states))
	for _, st := range states {
		byID[st.MissionID] = st
	}

	defs := SeasonMissions(CurrentSeason)
	out := make([]MissionView, 0, len(defs))
	for _, def := range defs {
		state, ok := byID[def.ID]
		if !ok {
			state = storage.MissionState{MissionID: def.ID, Season: def.Season, Status: MissionLocked}
		}
		out = append(out, MissionView{Mission: def, State: state})
	}
	return out, nil
}

// ClaimMission pays out a completed mission exactly once.
func (s *Service) ClaimMission(ctx context.Context, id string) (MissionReward, error) {
	def, ok := MissionByID(id)
	if !ok {
		return MissionReward{}, fmt.Errorf("unknown mission %q", id)
	}
	if err := s.advanceMissions(ctx); err != nil {
		return MissionReward{}, err
	}
	state, err := s.missions.Get(ctx, id)
	if err != nil {
		return MissionReward{}, err
	}
	if err := CanClaim(state); err != nil {
		return MissionReward{}, err
	}

	now := s.Now()
	eff := storage.ClaimEffects{ClaimedAt: now}
	switch def.Reward.Type {
	case RewardSyncPoints:
		eff.Entry = &storage.SyncPointsEntry{
			ID:           uuid.NewString(),
			CreatedAt:    now,
			ActivityType: ActivityMissionReward,
			SyncPoints:   def.Reward.Amount,
		}
	case RewardHolos:
		eff.HolosDelta = def.Reward.Amount
	case RewardSPBoost:
		expires := now.AddDate(0, 0, def.Reward.BoostDays)
		eff.BoostPercent = def.Reward.Amount
		eff.BoostExpires = &expires
	}

	claimed, err := storage.ApplyClaim(ctx, s.db, id, eff)
	if err != nil {
		return MissionReward{}, err
	}
	if !claimed {
		return MissionReward{}, &ClaimError{MissionID: id, Status: state.Status}
	}
	s.log.Info("mission claimed", "mission", id, "reward", def.Reward.Type, "amount", def.Reward.Amount)
	return def.Reward, nil
}

// History lists the most recent completed sessions.
func (s *Service) History(ctx context.Context, limit int) ([]storage.WorkoutRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.workouts.ListRecent(ctx, limit)
}

// advanceMissions derives the season counters from the store and folds the
// absolute values into mission state. Counters are recomputed rather than
// incremented so a missed update self-heals on the next call.
func (s *Service) advanceMissions(ctx context.Context) error {
	p, err := s.profiles.GetOrCreateMain(ctx)
	if err != nil {
		return err
	}
	entries, err := s.entries.ListAll(ctx)
	if err != nil {
		return err
	}
	now := s.Now()
	stats := ComputeLedgerStats(entries, p.SpentSyncPoints, now)

	workouts, err := s.workouts.Count(ctx)
	if err != nil {
		return err
	}
	uniqueBots, err := s.workouts.CountDistinctHolobots(ctx)
	if err != nil {
		return err
	}
	maxDays, err := s.workouts.CountDaysWithAtLeast(ctx, DailySyncCap(p.PlayerRank))
	if err != nil {
		return err
	}

	tracker := 0
	if p.TrackerConnected {
		tracker = 1
	}
	counters := map[string]int{
		"connect_tracker_s1":   tracker,
		"first_workout_s1":     workouts,
		"workout_streak_5_s1":  stats.StreakDays,
		"max_workouts_3_s1":    maxDays,
		"unique_holobots_3_s1": uniqueBots,
	}

	for _, def := range SeasonMissions(CurrentSeason) {
		if err := s.missions.EnsureExists(ctx, def.ID, def.Season); err != nil {
			return err
		}
		state, err := s.missions.Get(ctx, def.ID)
		if err != nil {
			return err
		}
		if state == nil {
			continue
		}
		if ApplyProgress(state, def, counters[def.ID], now) {
			if err := s.missions.Update(ctx, state); err != nil {
				return err
			}
		}
	}
	return nil
}
