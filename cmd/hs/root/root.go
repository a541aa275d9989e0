package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Pak209/HoloSync/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "hs",
	Short:         "HoloSync — turn real workouts into Holobot progression",
	Long:          "HoloSync converts steps and workout minutes into Sync Points, Holobot levels and Sync Bond progress, all stored locally.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newStatusCmd(),
		newTrainCmd(),
		newStepsCmd(),
		newUpgradeCmd(),
		newBotsCmd(),
		newBondCmd(),
		newMissionsCmd(),
		newClaimCmd(),
		newConnectCmd(),
		newHistoryCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
