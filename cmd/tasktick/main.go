package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/sandeepkv93/tasktick/internal/notify"
	"github.com/sandeepkv93/tasktick/internal/persist"
	"github.com/sandeepkv93/tasktick/internal/storage"
	"github.com/sandeepkv93/tasktick/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "tasktick failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, cfgErr := update.LoadConfigFile("tasktick.toml", update.DefaultRuntimeConfig())
	cfg = update.RuntimeConfigFromEnv(cfg)

	logger := newLogger()
	if cfgErr != nil {
		logger.Warn("config file ignored", "err", cfgErr)
	}

	// A broken task file starts the app with an empty list rather than
	// refusing to launch.
	tasks, err := persist.Load(cfg.TasksPath)
	if err != nil {
		logger.Warn("task file unreadable, starting empty", "path", cfg.TasksPath, "err", err)
	}

	var history storage.Repository
	if cfg.HistoryDBPath != "" {
		repo, err := storage.OpenSQLite(cfg.HistoryDBPath)
		if err != nil {
			logger.Warn("fire history disabled", "path", cfg.HistoryDBPath, "err", err)
		} else {
			history = repo
			defer repo.Close()
		}
	}

	var primary notify.Notifier = notify.ExecNotifier{}
	if !cfg.DesktopNotifications {
		primary = notify.UnavailableNotifier{}
	}
	dispatcher := notify.NewDispatcher(primary, cfg.DispatchBuffer, logger)
	dispatcher.Start()
	defer dispatcher.Stop()

	rt := update.NewRuntime(cfg, tasks, dispatcher, history, logger)
	program := tea.NewProgram(update.NewModelWithRuntime(rt), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}

// newLogger writes diagnostics to TASKTICK_LOG_FILE when set and stays
// silent otherwise. The terminal belongs to the TUI.
func newLogger() *log.Logger {
	path := os.Getenv("TASKTICK_LOG_FILE")
	if path == "" {
		return log.New(io.Discard)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return log.New(io.Discard)
	}
	return log.New(f)
}
