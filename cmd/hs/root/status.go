package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Pak209/HoloSync/internal/engine"
	"github.com/Pak209/HoloSync/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show profile, balances and today's progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := svc.Profile(ctx)
			if err != nil {
				return err
			}
			stats, err := svc.Stats(ctx)
			if err != nil {
				return err
			}
			cfg := svc.Config().Sync
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconBolt, "HoloSync Status"))
			fmt.Fprintln(out, ui.LabelValue("Rank", ui.RankText(p.PlayerRank)))
			if desc := engine.RankDescription(p.PlayerRank); desc != "" {
				fmt.Fprintln(out, ui.Dim.Render("  "+desc))
			}
			fmt.Fprintln(out, ui.LabelValue("Sync Points", fmt.Sprintf("%d available (%d earned, %d spent)",
				stats.Available, stats.TotalEarned, stats.Spent)))
			fmt.Fprintln(out, ui.LabelValue("Holos", p.Holos))
			if p.SPBoostPercent > 0 && p.SPBoostExpiresAt != nil {
				fmt.Fprintln(out, ui.Gold.Render(fmt.Sprintf("%s +%d%% SP boost until %s",
					ui.IconSparkle, p.SPBoostPercent, p.SPBoostExpiresAt.Format("2006-01-02"))))
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconSteps+" Activity"))
			fmt.Fprintf(out, "- Today: %d / %d steps\n", stats.TodaySteps, cfg.DailyStepGoal)
			fmt.Fprintf(out, "- This week: %d / %d steps, %d SP earned\n",
				stats.WeeklySteps, cfg.WeeklyStepGoal, stats.WeeklyEarned)
			fmt.Fprintf(out, "- Streak: %d day(s)\n", stats.StreakDays)

			tracker := ui.Bad.Render("not connected")
			if p.TrackerConnected {
				tracker = ui.Good.Render("connected")
			}
			fmt.Fprintln(out, ui.LabelValue("Tracker", tracker))
			return nil
		},
	}
	return cmd
}
