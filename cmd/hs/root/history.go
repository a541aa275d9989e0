package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Pak209/HoloSync/internal/ui"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent completed workouts",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			records, err := svc.History(ctx, limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconScroll, "Workout History"))
			if len(records) == 0 {
				fmt.Fprintln(out, ui.Dim.Render("(no workouts yet)"))
				return nil
			}
			for _, r := range records {
				fmt.Fprintf(out, "%s  %-8s %2dm  %5d steps  +%d SP",
					r.CreatedAt.Local().Format("2006-01-02 15:04"),
					r.HolobotName, r.DurationSeconds/60, r.Steps, r.SyncPoints)
				if r.Holos > 0 {
					fmt.Fprintf(out, "  +%d Holos", r.Holos)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "number of workouts to show")
	return cmd
}
