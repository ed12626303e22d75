package db_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/alexanderramin/epicboard/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestUoW(t *testing.T) (*sql.DB, *db.SQLiteUnitOfWork) {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database, db.NewSQLiteUnitOfWork(database)
}

func insertWorkspace(ctx context.Context, tx db.DBTX, id, name string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO workspaces (id, name, created_at, updated_at) VALUES (?, ?, '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`,
		id, name)
	return err
}

func workspaceName(t *testing.T, database *sql.DB, id string) (string, bool) {
	t.Helper()
	var name string
	err := database.QueryRow(`SELECT name FROM workspaces WHERE id = ?`, id).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false
	}
	require.NoError(t, err)
	return name, true
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	database, uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertWorkspace(ctx, tx, "w1", "Platform")
	})
	require.NoError(t, err)

	name, found := workspaceName(t, database, "w1")
	assert.True(t, found, "row should exist after commit")
	assert.Equal(t, "Platform", name)
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	database, uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertWorkspace(ctx, tx, "w2", "Growth"); err != nil {
			return err
		}
		return errors.New("deliberate failure")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliberate failure")

	_, found := workspaceName(t, database, "w2")
	assert.False(t, found, "row should not exist after rollback")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	database, uow := openTestUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertWorkspace(ctx, tx, "w3", "Infra")
			panic("boom")
		})
	})

	_, found := workspaceName(t, database, "w3")
	assert.False(t, found, "row should not exist after panic rollback")
}

func TestWithinTx_ErrorIsPreserved(t *testing.T) {
	_, uow := openTestUoW(t)
	sentinel := errors.New("store exploded")

	err := uow.WithinTx(context.Background(), func(context.Context, db.DBTX) error {
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)
}
