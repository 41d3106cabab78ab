package update

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/sandeepkv93/tasktick/internal/model"
	"github.com/sandeepkv93/tasktick/internal/notify"
	"github.com/sandeepkv93/tasktick/internal/persist"
	"github.com/sandeepkv93/tasktick/internal/storage"
	"github.com/sandeepkv93/tasktick/internal/store"
)

const AppName = "Task Timer"

// Runtime is the application root: it owns the task store and the
// countdown, and couples them through the store's change listener so
// every mutation re-evaluates the countdown and persists the list.
// It lives on the heap and is only ever touched from the update loop.
type Runtime struct {
	Store      *store.Store
	Countdown  model.Countdown
	Dispatcher *notify.Dispatcher
	History    storage.Repository
	Logger     *log.Logger
	Config     RuntimeConfig

	// tickSeq invalidates stale tick chains: only the command carrying
	// the current sequence may advance the countdown, so restarting the
	// timer never leaves two live one-second loops.
	tickSeq int
}

func NewRuntime(cfg RuntimeConfig, tasks []model.Task, dispatcher *notify.Dispatcher, history storage.Repository, logger *log.Logger) *Runtime {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rt := &Runtime{
		Store:      store.NewWithTasks(tasks),
		Countdown:  model.NewCountdown(),
		Dispatcher: dispatcher,
		History:    history,
		Logger:     logger,
		Config:     cfg,
	}
	rt.Store.OnChange(rt.onStoreChange)
	rt.Countdown.Reevaluate(rt.Store.PendingCount(), false)
	return rt
}

func (rt *Runtime) onStoreChange(mut store.Mutation) {
	rt.Countdown.Reevaluate(rt.Store.PendingCount(), mut.Kind == store.MutationAdd)
	rt.saveTasks()
}

// saveTasks writes the task file. Failures are absorbed: the list keeps
// working in memory and the error is logged for diagnostics only.
func (rt *Runtime) saveTasks() {
	if strings.TrimSpace(rt.Config.TasksPath) == "" {
		return
	}
	if err := persist.Save(rt.Config.TasksPath, rt.Store.Tasks()); err != nil {
		rt.Logger.Warn("task save failed", "path", rt.Config.TasksPath, "err", err)
	}
}

func (rt *Runtime) armTick() int {
	rt.tickSeq++
	return rt.tickSeq
}

func (rt *Runtime) tickCurrent(seq int) bool {
	return seq == rt.tickSeq
}

// fireReminder hands the fire event to the delivery and history sinks.
// Both are best effort; neither blocks the update loop.
func (rt *Runtime) fireReminder(titles []string, now time.Time) {
	if rt.Dispatcher != nil {
		rt.Dispatcher.Enqueue(notify.Message{
			Title: "Task Reminder",
			Body:  FireBody(titles),
		})
	}
	if rt.History == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	rec := storage.FireRecord{
		ID:           uuid.NewString(),
		FiredAt:      now.UTC(),
		PendingCount: len(titles),
		Titles:       titles,
	}
	if err := rt.History.AppendFire(ctx, rec); err != nil {
		rt.Logger.Warn("fire history append failed", "err", err)
		return
	}
	if err := rt.History.PruneFires(ctx, rt.Config.HistoryKeep); err != nil {
		rt.Logger.Debug("fire history prune failed", "err", err)
	}
}

// FireBody formats the reminder text: up to five pending titles, then a
// "+N more" suffix. Truncation is a presentation decision made here, at
// the consumer, never by the countdown.
func FireBody(titles []string) string {
	var b strings.Builder
	b.WriteString("You have pending tasks! Stay focused")
	shown := titles
	if len(shown) > 5 {
		shown = shown[:5]
	}
	for _, title := range shown {
		b.WriteString("\n• " + title)
	}
	if extra := len(titles) - len(shown); extra > 0 {
		b.WriteString(fmt.Sprintf("\n…and %d more", extra))
	}
	return b.String()
}
