// Package health abstracts the device activity-measurement capability.
//
// The engine never treats an unavailable source as fatal: callers fall back
// to simulated estimates when Available reports false or a lookup fails.
package health

import (
	"context"
	"math/rand"
	"time"
)

// ActivitySource yields step and energy measurements for a workout session.
type ActivitySource interface {
	// Available reports whether real measurements can be served.
	Available() bool

	// StepsSinceBaseline returns steps accumulated since the baseline was
	// taken at session start.
	StepsSinceBaseline(ctx context.Context) (int, error)

	// ActiveEnergyBurned returns kilocalories burned between start and end.
	ActiveEnergyBurned(ctx context.Context, start, end time.Time) (int, error)
}

// SimulatedCaloriesPerMinute is the fallback estimate used when no real
// energy measurement is available.
const SimulatedCaloriesPerMinute = 8

// SimulateCalories estimates kilocalories for an elapsed session duration.
func SimulateCalories(elapsed time.Duration) int {
	minutes := int(elapsed.Seconds()) / 60
	if minutes < 0 {
		return 0
	}
	return minutes * SimulatedCaloriesPerMinute
}

// Simulated is an ActivitySource that fabricates plausible measurements.
// It backs the development/preview mode and every platform without a real
// step counter.
type Simulated struct {
	rng   *rand.Rand
	steps int
}

func NewSimulated() *Simulated {
	return &Simulated{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (s *Simulated) Available() bool { return false }

// StepsSinceBaseline accumulates 10 to 29 steps per poll, mirroring a
// light walking pace at the 5s polling cadence.
func (s *Simulated) StepsSinceBaseline(ctx context.Context) (int, error) {
	s.steps += s.rng.Intn(20) + 10
	return s.steps, nil
}

func (s *Simulated) ActiveEnergyBurned(ctx context.Context, start, end time.Time) (int, error) {
	return SimulateCalories(end.Sub(start)), nil
}
