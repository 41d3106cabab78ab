package update

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tasktick/internal/model"
)

// tickCmd schedules the next countdown tick. Seq ties the resulting
// message to the chain that armed it so ticks from a superseded chain
// are discarded instead of double-decrementing the countdown.
func tickCmd(seq int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return TimerTickMsg{Seq: seq}
	})
}

func (m Model) onTimerTick(msg TimerTickMsg) (tea.Model, tea.Cmd) {
	if !m.rt.tickCurrent(msg.Seq) || !m.rt.Countdown.Running {
		return m, nil
	}

	fired := m.rt.Countdown.Tick(m.rt.Store.PendingCount())
	var cmds []tea.Cmd
	if fired {
		titles := m.rt.Store.PendingTitles()
		m.rt.fireReminder(titles, time.Now())
		m.Status = StatusBar{Text: fmt.Sprintf("reminder fired for %d pending task(s)", len(titles))}
	}
	if m.rt.Countdown.Running {
		cmds = append(cmds, tickCmd(msg.Seq))
	}
	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

func (m Model) timerElapsedPct() float64 {
	if !m.rt.Countdown.Running {
		return 0
	}
	total := float64(model.ReminderPeriodSeconds)
	return (total - float64(m.rt.Countdown.SecondsLeft)) / total
}
