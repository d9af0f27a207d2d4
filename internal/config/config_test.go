package config

import (
	"testing"
	"time"
)

func TestRuntimeConfigDefaults(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	if cfg.Backend != "sqlite" || cfg.SQLitePath != ".tasktrack.db" {
		t.Fatalf("unexpected storage defaults: %+v", cfg)
	}
	if cfg.TasksKey != "personal-task-tracker-live" || cfg.ThemeKey != "personal-task-tracker-theme" {
		t.Fatalf("unexpected key defaults: %+v", cfg)
	}
	if cfg.StoreTimeout != 2*time.Second || cfg.LogPath != "" || cfg.PreferDark != nil {
		t.Fatalf("unexpected runtime defaults: %+v", cfg)
	}
}

func TestRuntimeConfigFromEnv(t *testing.T) {
	t.Setenv("TASKTRACK_BACKEND", "Redis")
	t.Setenv("TASKTRACK_DB", "state/custom.db")
	t.Setenv("TASKTRACK_REDIS_ADDR", "cache:6380")
	t.Setenv("TASKTRACK_REDIS_DB", "3")
	t.Setenv("TASKTRACK_REDIS_PREFIX", "tt:")
	t.Setenv("TASKTRACK_TASKS_KEY", "tasks")
	t.Setenv("TASKTRACK_THEME_KEY", "theme")
	t.Setenv("TASKTRACK_LOG_FILE", "/tmp/tasktrack.log")
	t.Setenv("TASKTRACK_LOG_LEVEL", "DEBUG")
	t.Setenv("TASKTRACK_STORE_TIMEOUT_MS", "500")
	t.Setenv("TASKTRACK_PREFER_DARK", "yes")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.Backend != "redis" || cfg.SQLitePath != "state/custom.db" {
		t.Fatalf("unexpected storage overrides: %+v", cfg)
	}
	if cfg.RedisAddr != "cache:6380" || cfg.RedisDB != 3 || cfg.RedisPrefix != "tt:" {
		t.Fatalf("unexpected redis overrides: %+v", cfg)
	}
	if cfg.TasksKey != "tasks" || cfg.ThemeKey != "theme" {
		t.Fatalf("unexpected key overrides: %+v", cfg)
	}
	if cfg.LogPath != "/tmp/tasktrack.log" || cfg.LogLevel != "debug" {
		t.Fatalf("unexpected log overrides: %+v", cfg)
	}
	if cfg.StoreTimeout != 500*time.Millisecond {
		t.Fatalf("unexpected timeout override: %v", cfg.StoreTimeout)
	}
	if cfg.PreferDark == nil || !*cfg.PreferDark {
		t.Fatal("expected prefer dark true from env")
	}

	opts := cfg.StorageOptions()
	if opts.Backend != "redis" || opts.RedisAddr != "cache:6380" || opts.RedisPrefix != "tt:" {
		t.Fatalf("unexpected storage options: %+v", opts)
	}
}

func TestRuntimeConfigIgnoresMalformedEnv(t *testing.T) {
	t.Setenv("TASKTRACK_REDIS_DB", "three")
	t.Setenv("TASKTRACK_STORE_TIMEOUT_MS", "-5")
	t.Setenv("TASKTRACK_PREFER_DARK", "maybe")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.RedisDB != 0 || cfg.StoreTimeout != 2*time.Second || cfg.PreferDark != nil {
		t.Fatalf("expected malformed env to be ignored: %+v", cfg)
	}
}
