package engine

import (
	"errors"
	"fmt"
)

// Sentinel failures callers branch on with errors.Is. The typed errors
// below wrap these and carry the numbers for display.
var (
	ErrNoHolobotSelected     = errors.New("no holobot selected")
	ErrInsufficientPoints    = errors.New("insufficient sync points")
	ErrMaxLevelReached       = errors.New("attribute at max level")
	ErrHolobotAlreadyTrained = errors.New("holobot already trained today")
	ErrDailyLimitReached     = errors.New("daily sync limit reached")
	ErrInvalidClaim          = errors.New("mission not claimable")
)

// InsufficientPointsError reports a spend attempt exceeding the available
// balance. Balances are never driven negative.
type InsufficientPointsError struct {
	Cost      int
	Available int
}

func (e *InsufficientPointsError) Error() string {
	return fmt.Sprintf("insufficient sync points: need %d, have %d", e.Cost, e.Available)
}

func (e *InsufficientPointsError) Unwrap() error { return ErrInsufficientPoints }

// MaxLevelError reports an upgrade attempt on an attribute already at cap.
type MaxLevelError struct {
	Attribute string
	Level     int
}

func (e *MaxLevelError) Error() string {
	return fmt.Sprintf("%s already at max level %d", e.Attribute, e.Level)
}

func (e *MaxLevelError) Unwrap() error { return ErrMaxLevelReached }

// AlreadyTrainedError reports a second same-day workout with one holobot.
type AlreadyTrainedError struct {
	Holobot string
}

func (e *AlreadyTrainedError) Error() string {
	return fmt.Sprintf("%s already trained today", e.Holobot)
}

func (e *AlreadyTrainedError) Unwrap() error { return ErrHolobotAlreadyTrained }

// DailyLimitError reports a workout rejected by the player's daily cap on
// distinct holobots trained.
type DailyLimitError struct {
	Count int
	Cap   int
}

func (e *DailyLimitError) Error() string {
	return fmt.Sprintf("daily sync limit reached (%d/%d holobots trained)", e.Count, e.Cap)
}

func (e *DailyLimitError) Unwrap() error { return ErrDailyLimitReached }

// ClaimError reports a mission claim rejected by its state machine.
type ClaimError struct {
	MissionID string
	Status    string
}

func (e *ClaimError) Error() string {
	return fmt.Sprintf("mission %s cannot be claimed in state %q", e.MissionID, e.Status)
}

func (e *ClaimError) Unwrap() error { return ErrInvalidClaim }
