package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HoloSync theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconBot     = "🤖"
	IconSteps   = "👟"
	IconFlame   = "🔥"
	IconSparkle = "✨"
	IconBolt    = "⚡"
	IconTrophy  = "🏆"
	IconCoin    = "🪙"
	IconLink    = "🔗"
	IconHeart   = "💠"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconScroll  = "📜"
)

var (
	cPrimary = lipgloss.Color("39")  // cyan-blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Dim   = lipgloss.NewStyle().Foreground(cMuted)

	Panel      = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// RankText colors a rank tier for display.
func RankText(rank string) string {
	switch strings.ToLower(strings.TrimSpace(rank)) {
	case "legendary", "legend":
		return Gold.Render(rank)
	case "elite":
		return Bad.Render(rank)
	case "rare":
		return H2.Render(rank)
	case "champion":
		return Good.Render(rank)
	default:
		return Muted.Render(rank)
	}
}

// MissionStatusText colors a mission status for display.
func MissionStatusText(status string) string {
	switch status {
	case "claimed":
		return Muted.Render("claimed")
	case "completed":
		return Good.Render("completed")
	case "in_progress":
		return H2.Render("in progress")
	default:
		return Dim.Render("locked")
	}
}
