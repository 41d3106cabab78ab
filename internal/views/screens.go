package views

import (
	"fmt"
	"strings"
)

type TaskRowData struct {
	Title string
	Done  bool
}

type TaskPanelData struct {
	InputView    string
	CaptureMode  bool
	Rows         []TaskRowData
	Cursor       int
	PendingCount int
	TotalCount   int
}

type TimerPanelData struct {
	Display string
	Running bool
}

type TrayScreenData struct {
	AppName      string
	PendingCount int
	TimerDisplay string
	TimerRunning bool
	Balloon      string
}

type HistoryEntryData struct {
	FiredAt      string
	PendingCount int
	Titles       []string
}

func RenderTaskPanel(data TaskPanelData) string {
	var b strings.Builder
	b.WriteString("tasks:\n")
	b.WriteString(data.InputView + "\n")
	if data.CaptureMode {
		b.WriteString("capture: [enter]add [esc]list mode\n")
	} else {
		b.WriteString("actions: [a]dd [j/k]move [space]toggle [x]remove [c]lear done\n")
	}

	if len(data.Rows) == 0 {
		b.WriteString("\n  (no tasks yet)\n")
	} else {
		b.WriteString("\n")
		for i, row := range data.Rows {
			cursor := " "
			if !data.CaptureMode && i == data.Cursor {
				cursor = ">"
			}
			check := "[ ]"
			title := row.Title
			if row.Done {
				check = "[x]"
				title = doneStyle.Render("✓ " + row.Title)
			}
			b.WriteString(fmt.Sprintf("%s %s %s\n", cursor, check, title))
		}
	}

	b.WriteString(fmt.Sprintf("\nPending: %d / Total: %d", data.PendingCount, data.TotalCount))
	return strings.TrimSpace(b.String())
}

func RenderTimerPanel(data TimerPanelData) string {
	var b strings.Builder
	b.WriteString("reminder:\n")
	b.WriteString(timerStyle.Render(data.Display) + "\n")
	if data.Running {
		b.WriteString("counting down; fires every 5 minutes while tasks are pending\n")
	} else {
		b.WriteString("idle; starts when the first task is added, stops when all are done\n")
	}
	return strings.TrimSpace(b.String())
}

func RenderTrayScreen(data TrayScreenData) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(data.AppName+" (tray)") + "\n")
	b.WriteString("window hidden; the app keeps running\n\n")
	if data.TimerRunning {
		b.WriteString(fmt.Sprintf("pending tasks: %d | next reminder in %s\n", data.PendingCount, data.TimerDisplay))
	} else {
		b.WriteString("no pending tasks; reminder idle\n")
	}
	b.WriteString("\nmenu:\n")
	b.WriteString("  [s/enter] Show\n")
	b.WriteString("  [q]       Quit\n")
	if data.Balloon != "" {
		b.WriteString("\n" + balloonStyle.Render(data.Balloon) + "\n")
	}
	return strings.TrimSpace(b.String())
}

func RenderHistoryPanel(entries []HistoryEntryData) string {
	var b strings.Builder
	b.WriteString("reminder history:\n")
	if len(entries) == 0 {
		b.WriteString("  (no reminders fired yet)")
		return b.String()
	}
	for _, e := range entries {
		b.WriteString(fmt.Sprintf("- %s | %d pending | %s\n", e.FiredAt, e.PendingCount, strings.Join(e.Titles, ", ")))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}
