package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Pak209/HoloSync/internal/health"
	"github.com/Pak209/HoloSync/internal/tui"
	"github.com/Pak209/HoloSync/internal/ui"
)

func newTrainCmd() *cobra.Command {
	var minutes int

	cmd := &cobra.Command{
		Use:   "train <holobot>",
		Short: "Run a live sync workout, or log training minutes with --minutes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			name := args[0]
			if minutes > 0 {
				points, err := svc.AddTrainingEntry(ctx, name, minutes)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s Logged %d min of sync training with %s: +%d SP\n",
					ui.IconBolt, minutes, name, points)
				return nil
			}

			return tui.RunWorkout(ctx, svc, name, health.NewSimulated(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVar(&minutes, "minutes", 0, "log a manual training block (1-300 minutes) instead of a live session")
	return cmd
}
