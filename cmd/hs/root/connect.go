package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Pak209/HoloSync/internal/ui"
)

func newConnectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "connect",
		Short: "Mark an activity tracker as connected",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.ConnectTracker(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.IconLink+" Tracker connected.")
			return nil
		},
	}
	return cmd
}
