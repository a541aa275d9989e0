package root

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Pak209/HoloSync/internal/ui"
)

func newStepsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "steps <count>",
		Short: "Convert today's steps into Sync Points (once per day)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, err := strconv.Atoi(args[0])
			if err != nil || steps < 0 {
				return fmt.Errorf("step count must be a non-negative number, got %q", args[0])
			}

			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			points, err := svc.SyncSteps(ctx, steps)
			if err != nil {
				return err
			}
			stats, err := svc.Stats(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Synced %d steps: +%d SP (streak %d day(s), %d SP available)\n",
				ui.IconSteps, steps, points, stats.StreakDays, stats.Available)
			return nil
		},
	}
	return cmd
}
