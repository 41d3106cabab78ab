package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// applyMutation runs a store mutation and reconciles the tick chain with
// the countdown state the mutation produced. A countdown that just
// started gets a fresh chain; one that just stopped has its chain
// invalidated so in-flight ticks are dropped.
func (m *Model) applyMutation(mutate func()) tea.Cmd {
	wasRunning := m.rt.Countdown.Running
	mutate()
	m.clampCursor()
	if !wasRunning && m.rt.Countdown.Running {
		return tickCmd(m.rt.armTick())
	}
	if wasRunning && !m.rt.Countdown.Running {
		m.rt.armTick()
	}
	return nil
}

func (m *Model) clampCursor() {
	total := m.rt.Store.TotalCount()
	if total == 0 {
		m.Cursor = 0
		return
	}
	if m.Cursor >= total {
		m.Cursor = total - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" && (m.HelpVisible || m.HistoryVisible) {
		m.HelpVisible = false
		m.HistoryVisible = false
		return m, nil
	}
	switch msg.String() {
	case "ctrl+c", m.Keys.Close, "esc":
		return m.hideToTray()
	case m.Keys.Add, "i":
		return m.enterCapture(""), nil
	case m.Keys.Palette:
		m.Palette.Active = true
		m.commandInput.SetValue("")
		m.commandInput.Focus()
		return m, nil
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		return m, nil
	case m.Keys.Tray:
		return m.hideToTray()
	case "j", "down":
		m.Cursor++
		m.clampCursor()
		return m, nil
	case "k", "up":
		m.Cursor--
		m.clampCursor()
		return m, nil
	case m.Keys.Toggle:
		return m.toggleAtCursor()
	case m.Keys.Remove:
		return m.removeAtCursor()
	case m.Keys.Clear:
		var cleared int
		cmd := m.applyMutation(func() {
			cleared = m.rt.Store.ClearDone()
		})
		m.Status = StatusBar{Text: fmt.Sprintf("cleared %d completed task(s)", cleared)}
		return m, cmd
	}
	if msg.Type == tea.KeyRunes {
		return m.enterCapture(string(msg.Runes)), nil
	}
	return m, nil
}

func (m Model) enterCapture(initial string) Model {
	m.CaptureMode = true
	m.HistoryVisible = false
	m.quickAddInput.SetValue(initial)
	m.quickAddInput.CursorEnd()
	m.quickAddInput.Focus()
	return m
}

func (m Model) handleCaptureKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.CaptureMode = false
		m.quickAddInput.SetValue("")
		m.quickAddInput.Blur()
		return m, nil
	case "enter":
		title := strings.TrimSpace(m.quickAddInput.Value())
		m.CaptureMode = false
		m.quickAddInput.SetValue("")
		m.quickAddInput.Blur()
		if title == "" {
			return m, nil
		}
		cmd := m.applyMutation(func() {
			m.rt.Store.Add(title)
		})
		m.Status = StatusBar{Text: fmt.Sprintf("added %q", title)}
		return m, cmd
	}
	var inputCmd tea.Cmd
	m.quickAddInput, inputCmd = m.quickAddInput.Update(msg)
	return m, inputCmd
}

func (m Model) toggleAtCursor() (tea.Model, tea.Cmd) {
	tasks := m.rt.Store.Tasks()
	if m.Cursor >= len(tasks) {
		return m, nil
	}
	task := tasks[m.Cursor]
	cmd := m.applyMutation(func() {
		m.rt.Store.Toggle(task.ID)
	})
	verb := "completed"
	if task.Done {
		verb = "reopened"
	}
	m.Status = StatusBar{Text: fmt.Sprintf("%s %q", verb, task.Title)}
	return m, cmd
}

func (m Model) removeAtCursor() (tea.Model, tea.Cmd) {
	tasks := m.rt.Store.Tasks()
	if m.Cursor >= len(tasks) {
		return m, nil
	}
	task := tasks[m.Cursor]
	cmd := m.applyMutation(func() {
		m.rt.Store.Remove(task.ID)
	})
	m.Status = StatusBar{Text: fmt.Sprintf("removed %q", task.Title)}
	return m, cmd
}
