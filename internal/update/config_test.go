package update

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultRuntimeConfig(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	if cfg.TasksPath != "tasks.json" {
		t.Fatalf("TasksPath = %q", cfg.TasksPath)
	}
	if !cfg.DesktopNotifications {
		t.Fatalf("desktop notifications should default on")
	}
	if cfg.DispatchBuffer <= 0 || cfg.HistoryKeep <= 0 {
		t.Fatalf("buffer/keep defaults must be positive: %+v", cfg)
	}
}

func TestLoadConfigFileMissingKeepsBase(t *testing.T) {
	base := DefaultRuntimeConfig()
	cfg, err := LoadConfigFile(filepath.Join(t.TempDir(), "absent.toml"), base)
	if err != nil {
		t.Fatalf("missing config file should not error: %v", err)
	}
	if cfg != base {
		t.Fatalf("cfg = %+v, want base unchanged", cfg)
	}
}

func TestLoadConfigFileOverlaysValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasktick.toml")
	body := "tasks_path = \"/tmp/other.json\"\ndesktop_notifications = false\nhistory_keep = 7\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfigFile(path, DefaultRuntimeConfig())
	if err != nil {
		t.Fatalf("LoadConfigFile: %v", err)
	}
	if cfg.TasksPath != "/tmp/other.json" {
		t.Fatalf("TasksPath = %q", cfg.TasksPath)
	}
	if cfg.DesktopNotifications {
		t.Fatalf("desktop_notifications = false was not applied")
	}
	if cfg.HistoryKeep != 7 {
		t.Fatalf("HistoryKeep = %d, want 7", cfg.HistoryKeep)
	}
	// Keys absent from the file keep their base values.
	if cfg.DispatchBuffer != DefaultRuntimeConfig().DispatchBuffer {
		t.Fatalf("DispatchBuffer = %d, want base default", cfg.DispatchBuffer)
	}
}

func TestLoadConfigFileMalformedReturnsBaseAndError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasktick.toml")
	if err := os.WriteFile(path, []byte("tasks_path = [not toml"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	base := DefaultRuntimeConfig()
	cfg, err := LoadConfigFile(path, base)
	if err == nil {
		t.Fatalf("malformed config should surface an error for logging")
	}
	if cfg != base {
		t.Fatalf("cfg = %+v, want base on parse failure", cfg)
	}
}

func TestRuntimeConfigFromEnv(t *testing.T) {
	t.Setenv("TASKTICK_TASKS_PATH", "/data/tasks.json")
	t.Setenv("TASKTICK_HISTORY_DB", "/data/history.db")
	t.Setenv("TASKTICK_DESKTOP_NOTIFICATIONS", "off")
	t.Setenv("TASKTICK_DISPATCH_BUFFER", "32")
	t.Setenv("TASKTICK_HISTORY_KEEP", "250")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.TasksPath != "/data/tasks.json" || cfg.HistoryDBPath != "/data/history.db" {
		t.Fatalf("paths not applied: %+v", cfg)
	}
	if cfg.DesktopNotifications {
		t.Fatalf("TASKTICK_DESKTOP_NOTIFICATIONS=off not applied")
	}
	if cfg.DispatchBuffer != 32 || cfg.HistoryKeep != 250 {
		t.Fatalf("numeric overrides not applied: %+v", cfg)
	}
}

func TestRuntimeConfigFromEnvIgnoresGarbage(t *testing.T) {
	t.Setenv("TASKTICK_DISPATCH_BUFFER", "many")
	t.Setenv("TASKTICK_HISTORY_KEEP", "-4")
	t.Setenv("TASKTICK_DESKTOP_NOTIFICATIONS", "maybe")

	base := DefaultRuntimeConfig()
	cfg := RuntimeConfigFromEnv(base)
	if cfg != base {
		t.Fatalf("unparseable env values must leave the base untouched: %+v", cfg)
	}
}
