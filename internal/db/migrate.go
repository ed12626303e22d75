package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateBackfillTaskOrder(db); err != nil {
		return fmt.Errorf("backfilling task order: %w", err)
	}
	return nil
}

// migrateBackfillTaskOrder assigns order_index to tasks created before the
// column existed, numbering them per epic by creation time.
func migrateBackfillTaskOrder(db *sql.DB) error {
	ctx := context.Background()

	var pending int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks WHERE order_index < 0`).Scan(&pending); err != nil {
		return fmt.Errorf("checking task order: %w", err)
	}
	if pending == 0 {
		return nil
	}

	query := `UPDATE tasks SET order_index = (
		SELECT COUNT(*) FROM tasks t2
		WHERE t2.epic_id = tasks.epic_id
		  AND (t2.created_at < tasks.created_at
		       OR (t2.created_at = tasks.created_at AND t2.id < tasks.id))
	) WHERE order_index < 0`
	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("updating task order: %w", err)
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		email      TEXT NOT NULL UNIQUE,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS workspaces (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		owner_id   TEXT REFERENCES users(id) ON DELETE SET NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS projects (
		id           TEXT PRIMARY KEY,
		workspace_id TEXT NOT NULL REFERENCES workspaces(id) ON DELETE CASCADE,
		name         TEXT NOT NULL,
		goal         TEXT NOT NULL DEFAULT '',
		status       TEXT NOT NULL DEFAULT 'ACTIVE'
		             CHECK(status IN ('ACTIVE','ON_HOLD','COMPLETED','ARCHIVED')),
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_projects_workspace ON projects(workspace_id)`,

	`CREATE TABLE IF NOT EXISTS epics (
		id          TEXT PRIMARY KEY,
		project_id  TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		status      TEXT NOT NULL DEFAULT 'BACKLOG'
		            CHECK(status IN ('BACKLOG','IN_PROGRESS','DONE')),
		order_index INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_epics_project ON epics(project_id)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id              TEXT PRIMARY KEY,
		project_id      TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		epic_id         TEXT NOT NULL REFERENCES epics(id) ON DELETE CASCADE,
		title           TEXT NOT NULL,
		description     TEXT NOT NULL DEFAULT '',
		status          TEXT NOT NULL DEFAULT 'TODO'
		                CHECK(status IN ('TODO','IN_PROGRESS','IN_REVIEW','DONE','BLOCKED')),
		priority        TEXT NOT NULL DEFAULT 'MEDIUM'
		                CHECK(priority IN ('LOW','MEDIUM','HIGH','CRITICAL')),
		estimated_hours INTEGER,
		assignee_id     TEXT REFERENCES users(id) ON DELETE SET NULL,
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_project ON tasks(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_epic ON tasks(epic_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status)`,

	// Added after the initial schema; tolerated as duplicate on re-run.
	`ALTER TABLE tasks ADD COLUMN actual_hours REAL`,
	`ALTER TABLE tasks ADD COLUMN order_index INTEGER NOT NULL DEFAULT -1`,

	`CREATE TABLE IF NOT EXISTS task_updates (
		id         TEXT PRIMARY KEY,
		task_id    TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		user_id    TEXT REFERENCES users(id) ON DELETE SET NULL,
		old_status TEXT,
		new_status TEXT NOT NULL,
		comment    TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_task_updates_task ON task_updates(task_id)`,

	`CREATE TABLE IF NOT EXISTS risks (
		id          TEXT PRIMARY KEY,
		task_id     TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		type        TEXT NOT NULL
		            CHECK(type IN ('BLOCKER','RESOURCE_CONSTRAINT','TIMELINE_RISK','DEPENDENCY_ISSUE','TECHNICAL_DEBT')),
		severity    TEXT NOT NULL
		            CHECK(severity IN ('LOW','MEDIUM','HIGH','CRITICAL')),
		description TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_risks_task ON risks(task_id)`,
}
