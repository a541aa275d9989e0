package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Pak209/HoloSync/internal/ui"
)

func newClaimCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claim <mission-id>",
		Short: "Claim a completed mission's reward",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			reward, err := svc.ClaimMission(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Claimed %s: %s\n",
				ui.IconTrophy, args[0], describeReward(reward))
			return nil
		},
	}
	return cmd
}
