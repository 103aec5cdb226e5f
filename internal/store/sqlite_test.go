// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Li Zuju

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lizuju/photosafe/internal/logger"
)

func newTestKV(t *testing.T) (*SQLiteKV, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return newSQLiteKV(db, logger.Nop()), mock
}

const (
	selectKVSQL = `SELECT value FROM kv_entries WHERE key = ?`
	upsertKVSQL = `INSERT INTO kv_entries (key,value) VALUES (?,?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	deleteKVSQL = `DELETE FROM kv_entries WHERE key = ?`
)

func TestSQLiteKV_Get_Found(t *testing.T) {
	kv, mock := newTestKV(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectKVSQL)).
		WithArgs("files/snapshot").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte(`[]`)))

	value, ok, err := kv.Get(context.Background(), "files/snapshot")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`[]`), value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteKV_Get_Absent(t *testing.T) {
	kv, mock := newTestKV(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectKVSQL)).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	value, ok, err := kv.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, value)
}

func TestSQLiteKV_Set_Upserts(t *testing.T) {
	kv, mock := newTestKV(t)

	mock.ExpectExec(regexp.QuoteMeta(upsertKVSQL)).
		WithArgs("collections/7/cursor", []byte("42")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := kv.Set(context.Background(), "collections/7/cursor", []byte("42"))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteKV_Set_PropagatesError(t *testing.T) {
	kv, mock := newTestKV(t)

	storageFull := errors.New("database or disk is full")
	mock.ExpectExec(regexp.QuoteMeta(upsertKVSQL)).
		WithArgs("thumbs/1", []byte("blob")).
		WillReturnError(storageFull)

	err := kv.Set(context.Background(), "thumbs/1", []byte("blob"))
	require.Error(t, err)
	assert.ErrorIs(t, err, storageFull)
}

func TestSQLiteKV_Delete(t *testing.T) {
	kv, mock := newTestKV(t)

	mock.ExpectExec(regexp.QuoteMeta(deleteKVSQL)).
		WithArgs("thumbs/9").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, kv.Delete(context.Background(), "thumbs/9"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteKV_OperationsAfterClose(t *testing.T) {
	kv, mock := newTestKV(t)
	ctx := context.Background()

	mock.ExpectClose()
	require.NoError(t, kv.Close())
	// Closing twice is a no-op.
	require.NoError(t, kv.Close())

	_, _, err := kv.Get(ctx, "files/snapshot")
	assert.ErrorIs(t, err, ErrStoreClosed)

	assert.ErrorIs(t, kv.Set(ctx, "files/snapshot", []byte(`[]`)), ErrStoreClosed)
	assert.ErrorIs(t, kv.Delete(ctx, "thumbs/1"), ErrStoreClosed)

	assert.NoError(t, mock.ExpectationsWereMet())
}
