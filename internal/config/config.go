package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sandeepkv93/tasktrack/internal/storage"
)

const (
	DefaultTasksKey = "personal-task-tracker-live"
	DefaultThemeKey = "personal-task-tracker-theme"
)

type RuntimeConfig struct {
	Backend      string
	SQLitePath   string
	RedisAddr    string
	RedisDB      int
	RedisPrefix  string
	TasksKey     string
	ThemeKey     string
	LogPath      string
	LogLevel     string
	StoreTimeout time.Duration
	// PreferDark overrides terminal background detection when set.
	PreferDark *bool
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		Backend:      storage.BackendSQLite,
		SQLitePath:   ".tasktrack.db",
		RedisAddr:    "localhost:6379",
		RedisDB:      0,
		RedisPrefix:  "tasktrack:",
		TasksKey:     DefaultTasksKey,
		ThemeKey:     DefaultThemeKey,
		LogLevel:     "info",
		StoreTimeout: 2 * time.Second,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvString("TASKTRACK_BACKEND"); ok {
		cfg.Backend = strings.ToLower(v)
	}
	if v, ok := getEnvString("TASKTRACK_DB"); ok {
		cfg.SQLitePath = v
	}
	if v, ok := getEnvString("TASKTRACK_REDIS_ADDR"); ok {
		cfg.RedisAddr = v
	}
	if v, ok := getEnvInt("TASKTRACK_REDIS_DB"); ok && v >= 0 {
		cfg.RedisDB = v
	}
	if v, ok := getEnvString("TASKTRACK_REDIS_PREFIX"); ok {
		cfg.RedisPrefix = v
	}
	if v, ok := getEnvString("TASKTRACK_TASKS_KEY"); ok {
		cfg.TasksKey = v
	}
	if v, ok := getEnvString("TASKTRACK_THEME_KEY"); ok {
		cfg.ThemeKey = v
	}
	if v, ok := getEnvString("TASKTRACK_LOG_FILE"); ok {
		cfg.LogPath = v
	}
	if v, ok := getEnvString("TASKTRACK_LOG_LEVEL"); ok {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v, ok := getEnvInt("TASKTRACK_STORE_TIMEOUT_MS"); ok && v > 0 {
		cfg.StoreTimeout = time.Duration(v) * time.Millisecond
	}
	if v, ok := getEnvBool("TASKTRACK_PREFER_DARK"); ok {
		cfg.PreferDark = &v
	}
	return cfg
}

func (c RuntimeConfig) StorageOptions() storage.Options {
	return storage.Options{
		Backend:     c.Backend,
		SQLitePath:  c.SQLitePath,
		RedisAddr:   c.RedisAddr,
		RedisDB:     c.RedisDB,
		RedisPrefix: c.RedisPrefix,
	}
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
