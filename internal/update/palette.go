package update

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tasktick/internal/commands"
	"github.com/sandeepkv93/tasktick/internal/model"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Palette = CommandPaletteState{}
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		return m, nil
	case "enter":
		raw := m.commandInput.Value()
		m.Palette = CommandPaletteState{}
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		return m.executePaletteCommand(raw)
	}
	var inputCmd tea.Cmd
	m.commandInput, inputCmd = m.commandInput.Update(msg)
	m.Palette.Input = m.commandInput.Value()
	return m, inputCmd
}

// executePaletteCommand parses and runs one palette command. Handlers
// close over the model copy so mutations and the resulting tick chain
// command flow back to the caller.
func (m Model) executePaletteCommand(raw string) (Model, tea.Cmd) {
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}

	var chainCmd tea.Cmd
	handlers := commands.Handlers{
		Add: func(args commands.AddArgs) (commands.Result, error) {
			chainCmd = m.applyMutation(func() {
				m.rt.Store.Add(args.Title)
			})
			return commands.Result{Message: fmt.Sprintf("added %q", args.Title)}, nil
		},
		Done: func(args commands.RowArgs) (commands.Result, error) {
			task, err := m.taskAtRow(args.Row)
			if err != nil {
				return commands.Result{}, err
			}
			chainCmd = m.applyMutation(func() {
				m.rt.Store.Toggle(task.ID)
			})
			verb := "completed"
			if task.Done {
				verb = "reopened"
			}
			return commands.Result{Message: fmt.Sprintf("%s %q", verb, task.Title)}, nil
		},
		Remove: func(args commands.RowArgs) (commands.Result, error) {
			task, err := m.taskAtRow(args.Row)
			if err != nil {
				return commands.Result{}, err
			}
			chainCmd = m.applyMutation(func() {
				m.rt.Store.Remove(task.ID)
			})
			return commands.Result{Message: fmt.Sprintf("removed %q", task.Title)}, nil
		},
		Clear: func() (commands.Result, error) {
			var cleared int
			chainCmd = m.applyMutation(func() {
				cleared = m.rt.Store.ClearDone()
			})
			return commands.Result{Message: fmt.Sprintf("cleared %d completed task(s)", cleared)}, nil
		},
		History: func(args commands.HistoryArgs) (commands.Result, error) {
			if m.rt.History == nil {
				return commands.Result{}, &commands.CommandError{
					Code:    commands.ErrCodeInvalidArgument,
					Message: "reminder history is not available",
				}
			}
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			recs, err := m.rt.History.ListRecentFires(ctx, args.Limit)
			if err != nil {
				return commands.Result{}, &commands.CommandError{
					Code:    commands.ErrCodeInvalidArgument,
					Message: fmt.Sprintf("history lookup failed: %v", err),
				}
			}
			m.HistoryEntries = recs
			m.HistoryVisible = true
			return commands.Result{Message: fmt.Sprintf("showing %d reminder(s)", len(recs))}, nil
		},
	}

	res, err := commands.Execute(cmd, handlers)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}
	m.Status = StatusBar{Text: res.Message}
	return m, chainCmd
}

func (m Model) taskAtRow(row int) (model.Task, error) {
	tasks := m.rt.Store.Tasks()
	if row < 1 || row > len(tasks) {
		return model.Task{}, &commands.CommandError{
			Code:    commands.ErrCodeInvalidArgument,
			Message: fmt.Sprintf("no task at row %d", row),
		}
	}
	return tasks[row-1], nil
}
