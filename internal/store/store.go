// Package store is the persistence access layer. Every method runs exactly
// one parameterized statement against the database and returns rows, a single
// row, or an inserted id. No transactions, no retries.
package store

import (
	"database/sql"
	"errors"
)

var ErrNotFound = errors.New("not found")

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// notFound maps the driver's empty-result error to the store sentinel.
func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
