package update

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

type RuntimeConfig struct {
	TasksPath            string `toml:"tasks_path"`
	HistoryDBPath        string `toml:"history_db_path"`
	DesktopNotifications bool   `toml:"desktop_notifications"`
	DispatchBuffer       int    `toml:"dispatch_buffer"`
	HistoryKeep          int    `toml:"history_keep"`
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		TasksPath:            "tasks.json",
		HistoryDBPath:        "tasktick_history.db",
		DesktopNotifications: true,
		DispatchBuffer:       16,
		HistoryKeep:          100,
	}
}

// LoadConfigFile overlays base with values from a tasktick.toml file.
// A missing file is not an error; a malformed one is, so the caller can
// log it and continue with base.
func LoadConfigFile(path string, base RuntimeConfig) (RuntimeConfig, error) {
	cfg := base
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return base, nil
		}
		return base, err
	}
	return cfg, nil
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvString("TASKTICK_TASKS_PATH"); ok {
		cfg.TasksPath = v
	}
	if v, ok := getEnvString("TASKTICK_HISTORY_DB"); ok {
		cfg.HistoryDBPath = v
	}
	if v, ok := getEnvBool("TASKTICK_DESKTOP_NOTIFICATIONS"); ok {
		cfg.DesktopNotifications = v
	}
	if v, ok := getEnvInt("TASKTICK_DISPATCH_BUFFER"); ok && v > 0 {
		cfg.DispatchBuffer = v
	}
	if v, ok := getEnvInt("TASKTICK_HISTORY_KEEP"); ok && v > 0 {
		cfg.HistoryKeep = v
	}
	return cfg
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
