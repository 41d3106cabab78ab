package update

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tasktick/internal/notify"
)

// hideToTray switches to the tray screen instead of exiting. The first
// hide shows a one-time balloon so the user knows the timer keeps
// running in the background.
func (m Model) hideToTray() (tea.Model, tea.Cmd) {
	m.Screen = ScreenTray
	m.CaptureMode = false
	m.quickAddInput.Blur()
	m.Palette.Active = false
	m.commandInput.Blur()
	if !m.TrayNoticeShown {
		m.TrayNoticeShown = true
		return m, m.showBalloon(notify.Balloon{Title: AppName, Body: "Still running in the tray."})
	}
	return m, nil
}

func (m Model) handleTrayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "s", "enter", m.Keys.Tray:
		m.Screen = ScreenMain
		return m, nil
	case "q", "ctrl+c":
		m.rt.saveTasks()
		m.Quitting = true
		return m, tea.Quit
	}
	return m, nil
}
