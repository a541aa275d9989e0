package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Pak209/HoloSync/internal/engine"
	"github.com/Pak209/HoloSync/internal/health"
)

// RunWorkout opens the live sync workout view for the named holobot and
// blocks until the session ends or is quit.
func RunWorkout(ctx context.Context, svc *engine.Service, holobot string, source health.ActivitySource, out io.Writer) error {
	sess, err := svc.StartSession(ctx, holobot, source)
	if err != nil {
		return err
	}
	m := newWorkoutModel(ctx, svc, sess)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err = p.Run()
	if err != nil {
		return err
	}
	return nil
}
