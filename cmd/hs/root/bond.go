package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Pak209/HoloSync/internal/ui"
)

func newBondCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bond <holobot>",
		Short: "Show a Holobot's Sync Bond standing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			name := args[0]
			h, err := svc.Holobot(ctx, name)
			if err != nil {
				return err
			}
			bond, err := svc.Bond(ctx, name)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconHeart, "Sync Bond: "+h.Name))
			fmt.Fprintln(out, ui.LabelValue("Level", bond.Level))
			fmt.Fprintln(out, ui.LabelValue("Training time", fmtHours(h.SyncTrainingHours)))
			fmt.Fprintln(out, ui.LabelValue("Bond Sync Points", h.BondSyncPoints))
			fmt.Fprintln(out, ui.LabelValue("Ability boost", fmt.Sprintf("+%d%%", bond.AbilityBoost)))
			fmt.Fprintln(out, ui.LabelValue("Part compatibility", fmt.Sprintf("+%d%%", bond.PartCompatibility)))
			if len(bond.Unlocks) > 0 {
				fmt.Fprintln(out, ui.LabelValue("Unlocked", ui.Gold.Render(strings.Join(bond.Unlocks, ", "))))
			}
			if bond.NextHours > 0 || bond.NextPoints > 0 {
				fmt.Fprintf(out, "\n%.0f%% to level %d (needs %.1fh and %d SP)\n",
					bond.Progress, bond.Level+1, bond.NextHours, bond.NextPoints)
			} else {
				fmt.Fprintln(out, ui.Gold.Render("\nMax bond reached."))
			}
			return nil
		},
	}
	return cmd
}
