package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Pak209/HoloSync/internal/engine"
	"github.com/Pak209/HoloSync/internal/ui"
)

func newUpgradeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upgrade <holobot> <attribute>",
		Short: "Spend Sync Points to raise an attribute (" + strings.Join(engine.Attributes, "|") + ")",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			name := args[0]
			attribute := strings.ToLower(args[1])
			cost, err := svc.UpgradeAttribute(ctx, name, attribute)
			if err != nil {
				return err
			}

			stats, err := svc.Stats(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Upgraded %s %s for %d SP (%d SP left)\n",
				ui.IconTrophy, name, attribute, cost, stats.Available)
			return nil
		},
	}
	return cmd
}
