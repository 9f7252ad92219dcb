package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the database schema if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	// Committed comments, in insertion order
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS comments (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			author TEXT NOT NULL,
			text TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return err
	}

	// Single-value slots such as the last comment author
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	// Backing sequence for database-issued comment ids
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS comment_ids (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			issued_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	return err
}
