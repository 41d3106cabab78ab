package update

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/tasktick/internal/views"
)

const helpIntro = `# Task Timer

Tasks with checkboxes and a five minute reminder loop. The countdown
runs while anything is pending, fires a notification, and starts over.
Closing the window hides to the tray; quit from the tray menu.
`

type helpKeyMap struct {
	Add     key.Binding
	Toggle  key.Binding
	Remove  key.Binding
	Clear   key.Binding
	Move    key.Binding
	Palette key.Binding
	Tray    key.Binding
	Help    key.Binding
	Close   key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Palette, k.Help}
}

func (k helpKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Add, k.Toggle, k.Remove, k.Clear},
		{k.Move, k.Palette, k.Tray, k.Close},
	}
}

func defaultHelpKeys() helpKeyMap {
	return helpKeyMap{
		Add:     key.NewBinding(key.WithKeys("a", "i"), key.WithHelp("a", "add task")),
		Toggle:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle done")),
		Remove:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove task")),
		Clear:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear done")),
		Move:    key.NewBinding(key.WithKeys("j", "k"), key.WithHelp("j/k", "move cursor")),
		Palette: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "command palette")),
		Tray:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "hide to tray")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Close:   key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "close to tray")),
	}
}

func (m Model) renderHelpPane() string {
	m.helpModel.ShowAll = true
	return views.RenderMarkdown(helpIntro) + "\n\n" + m.helpModel.View(defaultHelpKeys())
}
