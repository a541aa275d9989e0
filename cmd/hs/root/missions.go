package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Pak209/HoloSync/internal/engine"
	"github.com/Pak209/HoloSync/internal/ui"
)

func newMissionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "missions",
		Short: "Show season missions and their progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			views, err := svc.Missions(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconScroll, fmt.Sprintf("Season %d Missions", engine.CurrentSeason)))
			for _, v := range views {
				fmt.Fprintf(out, "\n%s %s  [%s]\n", ui.H2.Render(v.Title), ui.Dim.Render("("+v.ID+")"),
					ui.MissionStatusText(v.State.Status))
				fmt.Fprintf(out, "  %s\n", v.Description)
				fmt.Fprintf(out, "  progress %d/%d", min(v.State.Progress, v.Target), v.Target)
				fmt.Fprintf(out, "  reward: %s\n", describeReward(v.Reward))
				if v.State.Status == engine.MissionCompleted {
					fmt.Fprintf(out, "  %s\n", ui.Good.Render("ready to claim: hs claim "+v.ID))
				}
			}
			return nil
		},
	}
	return cmd
}

func describeReward(r engine.MissionReward) string {
	switch r.Type {
	case engine.RewardSyncPoints:
		return fmt.Sprintf("%d SP", r.Amount)
	case engine.RewardHolos:
		return fmt.Sprintf("%d Holos", r.Amount)
	case engine.RewardSPBoost:
		return fmt.Sprintf("+%d%% SP boost for %d days", r.Amount, r.BoostDays)
	}
	return r.Type
}
