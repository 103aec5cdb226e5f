// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Li Zuju

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync/atomic"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/lizuju/photosafe/internal/logger"
	"github.com/lizuju/photosafe/migrations"
)

const kvTable = "kv_entries"

// SQLiteKV is the durable [KVStore] implementation backed by a single
// SQLite table. The schema is versioned through the migrations package.
type SQLiteKV struct {
	db      *sql.DB
	builder sq.StatementBuilderType
	logger  *logger.Logger
	closed  atomic.Bool
}

// NewSQLiteKV opens (or creates) the SQLite database at dsn, applies
// pending migrations, and returns the store. Use ":memory:" for an
// ephemeral database.
func NewSQLiteKV(dsn string, log *logger.Logger) (*SQLiteKV, error) {
	if dsn == "" {
		dsn = ":memory:"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if err = migrations.Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate sqlite db: %w", err)
	}

	return newSQLiteKV(db, log), nil
}

// newSQLiteKV wraps an existing *sql.DB. Used by NewSQLiteKV and by tests
// that substitute a mocked driver.
func newSQLiteKV(db *sql.DB, log *logger.Logger) *SQLiteKV {
	return &SQLiteKV{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
		logger:  log,
	}
}

// Get implements [KVStore].
func (s *SQLiteKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if s.closed.Load() {
		return nil, false, fmt.Errorf("get %q: %w", key, ErrStoreClosed)
	}

	query, args, err := s.builder.
		Select("value").
		From(kvTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("build get query: %w", err)
	}

	var value []byte
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %q: %w", key, err)
	}

	return value, true, nil
}

// Set implements [KVStore]. Existing keys are overwritten.
func (s *SQLiteKV) Set(ctx context.Context, key string, value []byte) error {
	if s.closed.Load() {
		return fmt.Errorf("set %q: %w", key, ErrStoreClosed)
	}

	query, args, err := s.builder.
		Insert(kvTable).
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value").
		ToSql()
	if err != nil {
		return fmt.Errorf("build set query: %w", err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

// Delete implements [KVStore]. Deleting an absent key is not an error.
func (s *SQLiteKV) Delete(ctx context.Context, key string) error {
	if s.closed.Load() {
		return fmt.Errorf("delete %q: %w", key, ErrStoreClosed)
	}

	query, args, err := s.builder.
		Delete(kvTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

// Close closes the underlying database handle. Subsequent operations
// return [ErrStoreClosed]. Idempotent.
func (s *SQLiteKV) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	return s.db.Close()
}
