package store

import (
	"context"
	"fmt"
)

// schema is applied on every open, statements are idempotent
var schema = []string{
	`CREATE TABLE IF NOT EXISTS contacts (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		name TEXT NOT NULL,
		address TEXT,
		phone_number TEXT,
		email TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_contacts_user ON contacts(user_id)`,

	`CREATE TABLE IF NOT EXISTS appointments (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		date TEXT NOT NULL,
		start_time TEXT NOT NULL,
		end_time TEXT,
		location TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_appointments_user ON appointments(user_id)`,

	`CREATE TABLE IF NOT EXISTS reminders (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id TEXT NOT NULL,
		text TEXT NOT NULL,
		date TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id TEXT NOT NULL,
		command TEXT NOT NULL,
		response TEXT,
		timestamp TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_history_user ON history(user_id)`,

	`CREATE TABLE IF NOT EXISTS subscribers (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		email TEXT UNIQUE NOT NULL,
		subscribed_at TEXT NOT NULL
	)`,
}

func ensureSchema(ctx context.Context, q RowQuerier) error {
	for _, stmt := range schema {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
