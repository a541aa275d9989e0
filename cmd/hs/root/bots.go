package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Pak209/HoloSync/internal/engine"
	"github.com/Pak209/HoloSync/internal/holobots"
	"github.com/Pak209/HoloSync/internal/storage"
	"github.com/Pak209/HoloSync/internal/ui"
)

func newBotsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bots [holobot]",
		Short: "List Holobots, or show one in detail",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if len(args) == 1 {
				return printBotDetail(cmd, svc, args[0])
			}
			return printBotList(cmd, svc)
		},
	}
	return cmd
}

func printBotList(cmd *cobra.Command, svc *engine.Service) error {
	ctx := context.Background()
	states, err := svc.Holobots(ctx)
	if err != nil {
		return err
	}
	trained := map[string]storage.HolobotState{}
	for _, s := range states {
		trained[s.Name] = s
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.Heading(ui.IconBot, "Holobots"))
	for _, name := range holobots.Names() {
		tmpl, _ := holobots.ByName(name)
		if s, ok := trained[tmpl.Name]; ok {
			fmt.Fprintf(out, "- %-8s lvl %-3d %s  %s  bond SP %d\n",
				tmpl.Name, s.Level, ui.RankText(s.Rank), fmtHours(s.SyncTrainingHours), s.BondSyncPoints)
		} else {
			fmt.Fprintf(out, "- %-8s %s\n", tmpl.Name, ui.Dim.Render("never trained"))
		}
	}
	return nil
}

func printBotDetail(cmd *cobra.Command, svc *engine.Service, name string) error {
	ctx := context.Background()
	tmpl, ok := holobots.ByName(name)
	if !ok {
		return fmt.Errorf("unknown holobot %q", name)
	}
	h, err := svc.Holobot(ctx, name)
	if err != nil {
		return err
	}
	bond, err := svc.Bond(ctx, name)
	if err != nil {
		return err
	}
	cfg := svc.Config().Sync
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, ui.Heading(ui.IconBot, tmpl.Name))
	fmt.Fprintln(out, ui.LabelValue("Level", fmt.Sprintf("%d (%d / %d EXP)", h.Level, h.Experience, h.NextLevelExp)))
	fmt.Fprintln(out, ui.LabelValue("Rank", ui.RankText(h.Rank)))
	if desc := engine.RankDescription(h.Rank); desc != "" {
		fmt.Fprintln(out, ui.Dim.Render("  "+desc))
	}
	fmt.Fprintln(out, ui.LabelValue("Special", tmpl.SpecialMove))
	fmt.Fprintln(out, ui.LabelValue("Attribute points", h.AttributePoints))
	fmt.Fprintln(out, "")

	fmt.Fprintln(out, ui.H2.Render("Attributes"))
	for _, attr := range engine.Attributes {
		lvl := attributeLevelOf(h, attr)
		boosted := engine.BoostedStat(tmpl.BaseStat(attr), lvl)
		line := fmt.Sprintf("- %-8s %d", attr, boosted)
		if lvl > 0 {
			line += ui.Good.Render(fmt.Sprintf(" (+%d)", lvl))
		}
		if lvl < cfg.MaxAttributeLevel {
			if cost, err := engine.UpgradeCost(cfg, attr, lvl); err == nil {
				line += ui.Dim.Render(fmt.Sprintf("  next: %d SP", cost))
			}
		} else {
			line += ui.Gold.Render("  MAX")
		}
		fmt.Fprintln(out, line)
	}
	invested := engine.TotalInvestment(cfg,
		h.HPLevel, h.AttackLevel, h.DefenseLevel, h.SpeedLevel, h.SpecialLevel)
	if invested > 0 {
		fmt.Fprintln(out, ui.Dim.Render(fmt.Sprintf("  %d SP invested", invested)))
	}
	fmt.Fprintln(out, "")

	fmt.Fprintf(out, "%s Bond level %d (%.0f%% to next)\n", ui.IconHeart, bond.Level, bond.Progress)

	p, err := svc.Profile(ctx)
	if err != nil {
		return err
	}
	all, err := svc.Holobots(ctx)
	if err != nil {
		return err
	}
	remaining := engine.WorkoutsRemainingToday(all, p.PlayerRank, svc.Now())
	fmt.Fprintf(out, "%s Today: %d of %d daily workout slot(s) remaining\n",
		ui.IconBolt, remaining, engine.DailySyncCap(p.PlayerRank))
	return nil
}

func attributeLevelOf(h *storage.HolobotState, attr string) int {
	switch attr {
	case "hp":
		return h.HPLevel
	case "attack":
		return h.AttackLevel
	case "defense":
		return h.DefenseLevel
	case "speed":
		return h.SpeedLevel
	case "special":
		return h.SpecialLevel
	}
	return 0
}

func fmtHours(hours float64) string {
	return fmt.Sprintf("%.1fh", hours)
}
