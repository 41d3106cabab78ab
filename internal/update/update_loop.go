package update

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tasktick/internal/notify"
	"github.com/sandeepkv93/tasktick/internal/views"
)

func (m Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, 2)
	if m.rt.Countdown.Running {
		cmds = append(cmds, tickCmd(m.rt.armTick()))
	}
	if m.rt.Dispatcher != nil {
		cmds = append(cmds, waitForBalloonCmd(m.rt.Dispatcher.C()))
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if m.Screen == ScreenTray {
			return m.handleTrayKey(typed)
		}
		if m.Palette.Active {
			return m.handlePaletteKey(typed)
		}
		if m.CaptureMode {
			return m.handleCaptureKey(typed)
		}
		return m.handleListKey(typed)
	case TimerTickMsg:
		return m.onTimerTick(typed)
	case TrayBalloonMsg:
		cmds := []tea.Cmd{m.showBalloon(typed.Balloon)}
		if m.rt.Dispatcher != nil {
			cmds = append(cmds, waitForBalloonCmd(m.rt.Dispatcher.C()))
		}
		return m, tea.Batch(cmds...)
	case ClearBalloonMsg:
		if typed.Seq == m.balloonSeq {
			m.LastBalloon = nil
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	if m.Screen == ScreenTray {
		return views.RenderTrayScreen(views.TrayScreenData{
			AppName:      AppName,
			PendingCount: m.rt.Store.PendingCount(),
			TimerDisplay: m.rt.Countdown.Display(),
			TimerRunning: m.rt.Countdown.Running,
			Balloon:      m.balloonText(),
		})
	}

	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	rightPane := m.renderTimerPane()
	if palette := views.RenderCommandPalette(m.Palette.Active, m.Palette.Input); palette != "" {
		rightPane += "\n\n" + palette
	}
	if m.HistoryVisible {
		rightPane += "\n\n" + m.renderHistoryPane()
	}
	if m.HelpVisible {
		rightPane += "\n\n" + m.renderHelpPane()
	}

	return views.RenderApp(views.AppData{
		Header:     fmt.Sprintf("%s | %s | pending: %d/%d", AppName, m.rt.Countdown.Display(), m.rt.Store.PendingCount(), m.rt.Store.TotalCount()),
		LeftPane:   m.renderTaskPane(),
		RightPane:  rightPane,
		StatusLine: status,
		Balloon:    m.balloonText(),
		Footer: fmt.Sprintf("keys: %s add | space toggle | %s remove | %s clear done | %s tray | %s cmd | %s help | %s close-to-tray",
			m.Keys.Add, m.Keys.Remove, m.Keys.Clear, m.Keys.Tray, m.Keys.Palette, m.Keys.Help, m.Keys.Close),
	})
}

func (m Model) renderTaskPane() string {
	tasks := m.rt.Store.Tasks()
	rows := make([]views.TaskRowData, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, views.TaskRowData{Title: t.Title, Done: t.Done})
	}
	return views.RenderTaskPanel(views.TaskPanelData{
		InputView:    m.quickAddInput.View(),
		CaptureMode:  m.CaptureMode,
		Rows:         rows,
		Cursor:       m.Cursor,
		PendingCount: m.rt.Store.PendingCount(),
		TotalCount:   m.rt.Store.TotalCount(),
	})
}

func (m Model) renderTimerPane() string {
	pane := views.RenderTimerPanel(views.TimerPanelData{
		Display: m.rt.Countdown.Display(),
		Running: m.rt.Countdown.Running,
	})
	return pane + "\n" + m.timerProgress.ViewAs(m.timerElapsedPct())
}

func (m Model) renderHistoryPane() string {
	entries := make([]views.HistoryEntryData, 0, len(m.HistoryEntries))
	for _, rec := range m.HistoryEntries {
		entries = append(entries, views.HistoryEntryData{
			FiredAt:      rec.FiredAt.Format("2006-01-02 15:04:05"),
			PendingCount: rec.PendingCount,
			Titles:       rec.Titles,
		})
	}
	return views.RenderHistoryPanel(entries)
}

// balloonDuration matches a desktop tray message: visible long enough
// to read, gone on its own.
const balloonDuration = 4 * time.Second

// showBalloon puts a balloon banner on screen and schedules its
// dismissal.
func (m *Model) showBalloon(b notify.Balloon) tea.Cmd {
	m.LastBalloon = &b
	m.balloonSeq++
	seq := m.balloonSeq
	return tea.Tick(balloonDuration, func(time.Time) tea.Msg {
		return ClearBalloonMsg{Seq: seq}
	})
}

func (m Model) balloonText() string {
	if m.LastBalloon == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", m.LastBalloon.Title, m.LastBalloon.Body)
}

func waitForBalloonCmd(ch <-chan notify.Balloon) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		b, ok := <-ch
		if !ok {
			return nil
		}
		return TrayBalloonMsg{Balloon: b}
	}
}
