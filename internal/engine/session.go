package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/Pak209/HoloSync/internal/health"
)

// energyLookupTimeout bounds the external measurement call at session end.
// If the source cannot answer in time the simulated estimate is used.
const energyLookupTimeout = 2 * time.Second

// MaxSessionSeconds is the session length at which stamina runs out and
// the workout auto-stops.
const MaxSessionSeconds = 900

// Session is one live sync workout. It is not safe for concurrent use;
// the TUI drives it from a single goroutine.
type Session struct {
	svc        *Service
	source     health.ActivitySource
	holobot    string
	botRank    string
	playerRank string
	boost      int
	start      time.Time
	steps      int
	finished   bool
}

// StartSession checks eligibility and opens a live workout for the named
// bot. The daily gate is evaluated here and again at completion, so a
// session spanning midnight cannot slip past it.
func (s *Service) StartSession(ctx context.Context, name string, source health.ActivitySource) (*Session, error) {
	h, err := s.CheckWorkoutEligibility(ctx, name)
	if err != nil {
		return nil, err
	}
	p, err := s.Profile(ctx)
	if err != nil {
		return nil, err
	}
	return &Session{
		svc:        s,
		source:     source,
		holobot:    h.Name,
		botRank:    h.Rank,
		playerRank: p.PlayerRank,
		boost:      p.SPBoostPercent,
		start:      s.Now(),
	}, nil
}

func (sess *Session) Holobot() string { return sess.holobot }
func (sess *Session) Steps() int      { return sess.steps }

// Elapsed returns the session duration at now.
func (sess *Session) Elapsed(now time.Time) time.Duration {
	return now.Sub(sess.start)
}

// Stamina returns the remaining stamina percentage at now. It drains
// linearly from 100 to 0 over the maximum session length.
func (sess *Session) Stamina(now time.Time) int {
	elapsed := int(sess.Elapsed(now).Seconds())
	if elapsed >= MaxSessionSeconds {
		return 0
	}
	return 100 - elapsed*100/MaxSessionSeconds
}

// PollSteps refreshes the step count from the activity source. Failures
// keep the previous count; a workout never dies because a sensor did.
func (sess *Session) PollSteps(ctx context.Context) int {
	n, err := sess.source.StepsSinceBaseline(ctx)
	if err == nil && n > sess.steps {
		sess.steps = n
	}
	return sess.steps
}

// Preview computes the reward the session would pay if stopped at now,
// always from the simulated calorie estimate. The final reward at Finish
// may differ once real measurements resolve.
func (sess *Session) Preview(now time.Time) WorkoutReward {
	elapsed := sess.Elapsed(now)
	return CalculateWorkoutReward(sess.svc.cfg.Sync, WorkoutInput{
		DurationSeconds: int(elapsed.Seconds()),
		Steps:           sess.steps,
		Calories:        health.SimulateCalories(elapsed),
		HolobotRank:     sess.botRank,
		PlayerRank:      sess.playerRank,
		SPBoostPercent:  sess.boost,
	})
}

// Finish resolves the final measurements and runs the completion path.
// A session pays out at most once.
func (sess *Session) Finish(ctx context.Context) (*WorkoutResult, error) {
	if sess.finished {
		return nil, fmt.Errorf("session already finished")
	}
	now := sess.svc.Now()
	elapsed := sess.Elapsed(now)
	duration := int(elapsed.Seconds())
	if duration > MaxSessionSeconds {
		duration = MaxSessionSeconds
	}

	calories, simulated := sess.resolveCalories(ctx, now)
	result, err := sess.svc.CompleteWorkout(ctx, CompleteWorkoutParams{
		HolobotName:     sess.holobot,
		DurationSeconds: duration,
		Steps:           sess.steps,
		Calories:        calories,
		Simulated:       simulated,
	})
	if err != nil {
		return nil, err
	}
	sess.finished = true
	return result, nil
}

// resolveCalories asks the real source with a bounded deadline, falling
// back to the simulated estimate when the source is absent, slow, or
// erroring.
func (sess *Session) resolveCalories(ctx context.Context, now time.Time) (int, bool) {
	elapsed := now.Sub(sess.start)
	if !sess.source.Available() {
		return health.SimulateCalories(elapsed), true
	}
	lookupCtx, cancel := context.WithTimeout(ctx, energyLookupTimeout)
	defer cancel()
	calories, err := sess.source.ActiveEnergyBurned(lookupCtx, sess.start, now)
	if err != nil {
		sess.svc.log.Warn("energy lookup failed, using estimate", "err", err)
		return health.SimulateCalories(elapsed), true
	}
	return calories, false
}
