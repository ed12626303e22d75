package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/epicboard/internal/db"
	"github.com/alexanderramin/epicboard/internal/domain"
)

// SQLiteTaskUpdateRepo implements TaskUpdateRepo using a SQLite database.
type SQLiteTaskUpdateRepo struct {
	db db.DBTX
}

// NewSQLiteTaskUpdateRepo creates a new SQLiteTaskUpdateRepo.
func NewSQLiteTaskUpdateRepo(conn db.DBTX) *SQLiteTaskUpdateRepo {
	return &SQLiteTaskUpdateRepo{db: conn}
}

func (r *SQLiteTaskUpdateRepo) Create(ctx context.Context, u *domain.TaskUpdate) error {
	var oldStatus interface{}
	if u.OldStatus != nil {
		oldStatus = string(*u.OldStatus)
	}
	query := `INSERT INTO task_updates (id, task_id, user_id, old_status, new_status, comment, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		u.ID,
		u.TaskID,
		nullableStringToValue(u.UserID),
		oldStatus,
		string(u.NewStatus),
		u.Comment,
		formatTime(u.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting task update: %w", err)
	}
	return nil
}

// ListByTask returns updates newest first. A limit <= 0 returns all rows.
func (r *SQLiteTaskUpdateRepo) ListByTask(ctx context.Context, taskID string, limit int) ([]*domain.TaskUpdate, error) {
	query := `SELECT id, task_id, user_id, old_status, new_status, comment, created_at
		FROM task_updates WHERE task_id = ? ORDER BY created_at DESC, rowid DESC`
	args := []any{taskID}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing task updates: %w", err)
	}
	defer rows.Close()

	var updates []*domain.TaskUpdate
	for rows.Next() {
		var u domain.TaskUpdate
		var userID, oldStatus sql.NullString
		var newStatus, createdAtStr string
		if err := rows.Scan(&u.ID, &u.TaskID, &userID, &oldStatus, &newStatus, &u.Comment, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning task update row: %w", err)
		}
		u.UserID = stringPtr(userID)
		if oldStatus.Valid {
			s := domain.TaskStatus(oldStatus.String)
			u.OldStatus = &s
		}
		u.NewStatus = domain.TaskStatus(newStatus)
		u.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		updates = append(updates, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating task updates: %w", err)
	}
	return updates, nil
}
