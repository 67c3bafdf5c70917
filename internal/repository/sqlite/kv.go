package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sakif/omen/internal/apperror"
	"github.com/sakif/omen/internal/repository"
)

// compile-time check that *DB implements repository.KeyValueRepository
var _ repository.KeyValueRepository = (*DB)(nil)

// Get returns the text stored under key.
// Returns apperror.ErrNotFound if the key has never been written or was deleted.
func (db *DB) Get(ctx context.Context, key string) (string, error) {
	var value string

	err := db.conn.QueryRowContext(ctx,
		`SELECT value FROM kv WHERE key = ?`,
		key,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", apperror.NotFound("key", key)
		}
		return "", fmt.Errorf("sqlite: getting key %s: %w", key, err)
	}

	return value, nil
}

// Set writes value under key, replacing any previous content.
//
// INSERT ... ON CONFLICT DO UPDATE is SQLite's upsert: one statement, no
// read-then-write race between two CLI processes.
func (db *DB) Set(ctx context.Context, key, value string) error {
	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key,
		value,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("sqlite: setting key %s: %w", key, err)
	}

	return nil
}

// Delete removes key entirely. Deleting a missing key succeeds.
func (db *DB) Delete(ctx context.Context, key string) error {
	if _, err := db.conn.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("sqlite: deleting key %s: %w", key, err)
	}

	return nil
}
