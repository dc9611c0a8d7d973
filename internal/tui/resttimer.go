package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"forja/internal/timer"
	"forja/internal/utils"
)

// RestResult is what happened to the countdown: ran out, or skipped with
// some time left.
type RestResult struct {
	Completed        bool
	Skipped          bool
	SkippedRemaining time.Duration
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	clockStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	helpStyle  = lipgloss.NewStyle().Faint(true)
)

type tickMsg time.Time

func tick() tea.Cmd {
	// The tick only triggers a recompute; remaining time always comes from
	// the absolute deadline, so late or missing ticks cannot drift it.
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type restModel struct {
	rt       *timer.RestTimer
	bar      progress.Model
	exercise string
	result   RestResult
}

func newRestModel(rt *timer.RestTimer, exercise string) restModel {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 40
	return restModel{rt: rt, bar: bar, exercise: exercise}
}

func (m restModel) Init() tea.Cmd {
	return tick()
}

func (m restModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if _, done := m.rt.Tick(); done {
			m.result.Completed = true
			return m, tea.Quit
		}
		return m, tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "+", "=":
			m.rt.Add(15 * time.Second)
		case "-", "_":
			m.rt.Subtract(15 * time.Second)
		case "s", "enter":
			if remaining, ok := m.rt.Skip(); ok {
				m.result.Skipped = true
				m.result.SkippedRemaining = remaining
			}
			return m, tea.Quit
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m restModel) View() string {
	header := "Rest"
	if m.exercise != "" {
		header = fmt.Sprintf("Rest: %s", m.exercise)
	}

	remaining := int(m.rt.Remaining().Round(time.Second).Seconds())

	return fmt.Sprintf(
		"\n  %s\n\n  %s\n  %s\n\n  %s\n",
		titleStyle.Render(header),
		clockStyle.Render(utils.FormatDuration(remaining)),
		m.bar.ViewAs(m.rt.Progress()),
		helpStyle.Render("+/- adjust 15s • s skip • q quit"),
	)
}

// RunRestTimer runs the countdown UI until completion or skip.
func RunRestTimer(rt *timer.RestTimer, exercise string) (RestResult, error) {
	final, err := tea.NewProgram(newRestModel(rt, exercise)).Run()
	if err != nil {
		return RestResult{}, err
	}

	m, ok := final.(restModel)
	if !ok {
		return RestResult{}, fmt.Errorf("unexpected model type")
	}
	return m.result, nil
}
