package store

import (
	"time"

	"assistant/internal/platform/config"
)

// Config aggregates storage configuration
type Config struct {
	AppName string

	SQLite SQLiteConfig
}

// SQLiteConfig configures the embedded sqlite database
type SQLiteConfig struct {
	// Path is the database file path, ":memory:" for an ephemeral db
	Path string

	// BusyTimeout bounds how long writers wait on a locked database
	BusyTimeout time.Duration

	// MaxConns caps the database/sql pool, sqlite wants this small
	MaxConns int

	LogSQL      bool
	SlowQueryMs int
}

// FromConf reads storage config from an env-backed Conf view
// keys are read under the STORE_ prefix
func FromConf(cfg config.Conf) Config {
	v := cfg.Prefix("STORE_")
	return Config{
		AppName: v.MayString("APP_NAME", "assistant"),
		SQLite: SQLiteConfig{
			Path:        v.MayString("SQLITE_PATH", "assistant.db"),
			BusyTimeout: v.MayDuration("SQLITE_BUSY_TIMEOUT", 5*time.Second),
			MaxConns:    v.MayInt("SQLITE_MAX_CONNS", 4),
			LogSQL:      v.MayBool("LOG_SQL", false),
			SlowQueryMs: v.MayInt("SLOW_QUERY_MS", 200),
		},
	}
}
