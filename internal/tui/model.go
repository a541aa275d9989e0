package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Pak209/HoloSync/internal/engine"
	"github.com/Pak209/HoloSync/internal/ui"
)

const stepPollInterval = 5 * time.Second

type workoutModel struct {
	ctx  context.Context
	svc  *engine.Service
	sess *engine.Session

	width  int
	height int

	preview  engine.WorkoutReward
	steps    int
	stamina  int
	elapsed  time.Duration
	stopping bool

	result *engine.WorkoutResult
	err    error
}

type tickMsg time.Time

type pollMsg struct{}

type finishedMsg struct {
	result *engine.WorkoutResult
	err    error
}

func newWorkoutModel(ctx context.Context, svc *engine.Service, sess *engine.Session) workoutModel {
	return workoutModel{
		ctx:     ctx,
		svc:     svc,
		sess:    sess,
		stamina: 100,
	}
}

func (m workoutModel) Init() tea.Cmd {
	return tea.Batch(tickCmd(), pollTickCmd())
}

// The session is not safe for concurrent use and bubbletea runs every cmd
// on its own goroutine, so tick callbacks carry no session calls. All
// session access happens inside Update; the finish cmd is the one
// exception, and Update stops touching the session once stopping is set.

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func pollTickCmd() tea.Cmd {
	return tea.Tick(stepPollInterval, func(time.Time) tea.Msg {
		return pollMsg{}
	})
}

func (m workoutModel) finishCmd() tea.Cmd {
	return func() tea.Msg {
		res, err := m.sess.Finish(m.ctx)
		return finishedMsg{result: res, err: err}
	}
}

func (m workoutModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if m.result != nil || m.err != nil || m.stopping {
			return m, nil
		}
		now := m.svc.Now()
		m.elapsed = m.sess.Elapsed(now)
		m.stamina = m.sess.Stamina(now)
		m.preview = m.sess.Preview(now)
		if m.stamina <= 0 {
			// Out of stamina: the session stops itself.
			m.stopping = true
			return m, m.finishCmd()
		}
		return m, tickCmd()
	case pollMsg:
		if m.result != nil || m.err != nil || m.stopping {
			return m, nil
		}
		m.steps = m.sess.PollSteps(m.ctx)
		return m, pollTickCmd()
	case finishedMsg:
		m.result = msg.result
		m.err = msg.err
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q", "enter":
			if m.result != nil || m.err != nil {
				return m, tea.Quit
			}
			return m, nil
		case "s", " ":
			if m.result == nil && m.err == nil && !m.stopping {
				m.stopping = true
				return m, m.finishCmd()
			}
			return m, nil
		}
	}
	return m, nil
}

func (m workoutModel) View() string {
	if m.err != nil {
		return ui.Bad.Render("Workout failed: ") + m.err.Error() + "\n\nPress q to quit.\n"
	}
	if m.result != nil {
		return m.renderResult()
	}

	var b strings.Builder
	b.WriteString(ui.Heading(ui.IconBot, "Sync Workout: "+m.sess.Holobot()) + "\n\n")
	b.WriteString(fmt.Sprintf("%s %s\n", ui.Key.Render("Time:"), formatElapsed(m.elapsed)))
	b.WriteString(fmt.Sprintf("%s %d\n", ui.Key.Render("Steps:"), m.steps))
	b.WriteString(fmt.Sprintf("%s %s %d%%\n\n", ui.Key.Render("Stamina:"), staminaBar(m.stamina, 30), m.stamina))

	b.WriteString(ui.H2.Render("Earning so far") + "\n")
	b.WriteString(fmt.Sprintf("  %s %d SP\n", ui.IconBolt, m.preview.SyncPoints))
	b.WriteString(fmt.Sprintf("  %s %d EXP\n", ui.IconSparkle, m.preview.ExpEarned))
	b.WriteString(fmt.Sprintf("  %s %d attribute boost(s)\n", ui.IconTrophy, m.preview.AttributeBoosts))
	if m.preview.Holos > 0 {
		b.WriteString(fmt.Sprintf("  %s %d Holos\n", ui.IconCoin, m.preview.Holos))
	}
	b.WriteString(ui.Dim.Render("\nEstimates only; the final reward is settled when you stop.") + "\n")

	if m.stopping {
		b.WriteString("\n" + ui.Warn.Render("Stopping…") + "\n")
	} else {
		b.WriteString("\n" + ui.Muted.Render("s/space: stop workout  ctrl+c: abandon") + "\n")
	}
	return b.String()
}

func (m workoutModel) renderResult() string {
	r := m.result
	var b strings.Builder
	b.WriteString(ui.Heading(ui.IconTrophy, "Workout Complete") + "\n\n")
	b.WriteString(fmt.Sprintf("  %s %d SP\n", ui.IconBolt, r.Reward.SyncPoints))
	b.WriteString(fmt.Sprintf("  %s %d EXP\n", ui.IconSparkle, r.Reward.ExpEarned))
	b.WriteString(fmt.Sprintf("  %s %d attribute boost(s)\n", ui.IconTrophy, r.Reward.AttributeBoosts))
	if r.Reward.Holos > 0 {
		b.WriteString(fmt.Sprintf("  %s %d Holos\n", ui.IconCoin, r.Reward.Holos))
	}
	if r.LevelsGained > 0 {
		b.WriteString(fmt.Sprintf("\n  %s %s is now level %d (%s)\n",
			ui.BadgeLevelUp, r.Holobot.Name, r.Holobot.Level, ui.RankText(r.Holobot.Rank)))
	}
	b.WriteString(fmt.Sprintf("\n  %s Bond level %d (%.0f%% to next)\n",
		ui.IconHeart, r.Bond.Level, r.Bond.Progress))
	if r.Simulated {
		b.WriteString(ui.Dim.Render("\n  Calories were estimated; no tracker data was available.") + "\n")
	}
	b.WriteString("\n" + ui.Muted.Render("q/enter: close") + "\n")
	return b.String()
}

func formatElapsed(d time.Duration) string {
	s := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}

func staminaBar(pct int, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := pct * width / 100
	bar := "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
	switch {
	case pct <= 20:
		return ui.Bad.Render(bar)
	case pct <= 50:
		return ui.Warn.Render(bar)
	default:
		return ui.Good.Render(bar)
	}
}
