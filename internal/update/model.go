package update

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/sandeepkv93/tasktick/internal/notify"
	"github.com/sandeepkv93/tasktick/internal/storage"
)

type Screen string

const (
	ScreenMain Screen = "Main"
	ScreenTray Screen = "Tray"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Add     string
	Toggle  string
	Remove  string
	Clear   string
	Tray    string
	Palette string
	Help    string
	Close   string
}

// Model is the Bubble Tea model. UI state lives here by value; the
// task store, countdown, and delivery plumbing live on the shared
// Runtime so mutations survive tea's value-copy update cycle.
type Model struct {
	rt *Runtime

	Screen          Screen
	Cursor          int
	CaptureMode     bool
	Palette         CommandPaletteState
	HelpVisible     bool
	HistoryVisible  bool
	HistoryEntries  []storage.FireRecord
	Status          StatusBar
	Keys            GlobalKeyMap
	Quitting        bool
	TrayNoticeShown bool
	LastBalloon     *notify.Balloon
	balloonSeq      int

	quickAddInput textinput.Model
	commandInput  textinput.Model
	timerProgress progress.Model
	helpModel     help.Model
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type TimerTickMsg struct {
	Seq int
}

type TrayBalloonMsg struct {
	Balloon notify.Balloon
}

// ClearBalloonMsg dismisses the balloon banner after its display time.
// Seq ties the dismissal to the balloon that scheduled it so a newer
// balloon is never cleared early.
type ClearBalloonMsg struct {
	Seq int
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

func NewModel() Model {
	cfg := DefaultRuntimeConfig()
	cfg.TasksPath = ""
	cfg.HistoryDBPath = ""
	return NewModelWithRuntime(NewRuntime(cfg, nil, nil, nil, nil))
}

func NewModelWithRuntime(rt *Runtime) Model {
	m := Model{
		rt:     rt,
		Screen: ScreenMain,
		Keys: GlobalKeyMap{
			Add:     "a",
			Toggle:  " ",
			Remove:  "x",
			Clear:   "c",
			Tray:    "t",
			Palette: "/",
			Help:    "?",
			Close:   "q",
		},
	}
	m.initBubbleComponents()
	return m
}

func (m *Model) initBubbleComponents() {
	m.quickAddInput = textinput.New()
	m.quickAddInput.Prompt = "add> "
	m.quickAddInput.Placeholder = "Type a task and press Enter…"
	m.quickAddInput.CharLimit = 256
	m.quickAddInput.Width = 40

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 40

	m.timerProgress = progress.New(progress.WithDefaultGradient())

	m.helpModel = help.New()
}
