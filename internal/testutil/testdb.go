package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/alexanderramin/epicboard/internal/db"
	"github.com/alexanderramin/epicboard/internal/repository"
)

// NewTestDB opens an in-memory epicboard store with migrations applied and
// closes it when the test ends.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("opening test store: %v", err)
	}
	t.Cleanup(func() {
		_ = database.Close()
	})
	return database
}

// NewTestUoW wraps the test database in the transactional unit of work used
// for plan, status and risk writes.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}

// Store bundles what most service tests need: the raw handle, repositories
// over it and a unit of work on the same connection.
type Store struct {
	DB    *sql.DB
	Repos repository.Set
	UoW   db.UnitOfWork
}

func NewTestStore(t *testing.T) *Store {
	t.Helper()
	database := NewTestDB(t)
	return &Store{
		DB:    database,
		Repos: repository.NewSQLiteSet(database),
		UoW:   NewTestUoW(database),
	}
}

// EpicCount returns how many epics the project currently has.
func (s *Store) EpicCount(t *testing.T, projectID string) int {
	t.Helper()
	n, err := s.Repos.Epics.CountByProject(context.Background(), projectID)
	if err != nil {
		t.Fatalf("counting epics: %v", err)
	}
	return n
}
