package db

import (
	"database/sql"

	_ "modernc.org/sqlite"
)

// Open opens the SQLite database with the recommended pragmas.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// one writer at a time keeps sqlite happy under concurrent handlers
	db.SetMaxOpenConns(1)

	_, _ = db.Exec(`PRAGMA journal_mode=WAL;`)
	_, _ = db.Exec(`PRAGMA busy_timeout=3000;`)
	_, _ = db.Exec(`PRAGMA foreign_keys=ON;`)

	return db, db.Ping()
}
