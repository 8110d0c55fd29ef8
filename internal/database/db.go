package database

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Database wraps the sqlite connection holding presets, session history and
// settings. The schema here is incidental storage for an in-process app,
// not an interchange format.
type Database struct {
	DB *sql.DB
}

// Open opens (creating if needed) the database at path and ensures the
// schema exists.
func Open(path string) (*Database, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	d := &Database{DB: db}
	if err := d.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

// Close releases the underlying connection.
func (d *Database) Close() error {
	return d.DB.Close()
}

func (d *Database) createTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS presets (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			work_seconds INTEGER NOT NULL,
			rest_seconds INTEGER NOT NULL,
			set_rest_seconds INTEGER DEFAULT 0,
			countdown_seconds INTEGER DEFAULT 0,
			rounds INTEGER NOT NULL,
			sets INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			preset_name TEXT,
			work_seconds INTEGER NOT NULL,
			rest_seconds INTEGER NOT NULL,
			set_rest_seconds INTEGER DEFAULT 0,
			rounds INTEGER NOT NULL,
			sets INTEGER NOT NULL DEFAULT 1,
			started_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			finished_at DATETIME,
			completed INTEGER DEFAULT 0,
			rounds_reached INTEGER DEFAULT 0,
			sets_reached INTEGER DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT
		);`,
	}

	for _, query := range queries {
		if _, err := d.DB.Exec(query); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}
