package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/epicboard/internal/db"
	"github.com/alexanderramin/epicboard/internal/domain"
)

// SQLiteEpicRepo implements EpicRepo using a SQLite database.
type SQLiteEpicRepo struct {
	db db.DBTX
}

// NewSQLiteEpicRepo creates a new SQLiteEpicRepo.
func NewSQLiteEpicRepo(conn db.DBTX) *SQLiteEpicRepo {
	return &SQLiteEpicRepo{db: conn}
}

const epicColumns = `id, project_id, title, description, status, order_index, created_at, updated_at`

func (r *SQLiteEpicRepo) Create(ctx context.Context, e *domain.Epic) error {
	query := `INSERT INTO epics (` + epicColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.ProjectID,
		e.Title,
		e.Description,
		string(e.Status),
		e.OrderIndex,
		formatTime(e.CreatedAt),
		formatTime(e.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting epic: %w", err)
	}
	return nil
}

func (r *SQLiteEpicRepo) GetByID(ctx context.Context, id string) (*domain.Epic, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+epicColumns+` FROM epics WHERE id = ?`, id)
	e, err := scanEpic(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("epic", id)
	}
	return e, err
}

func (r *SQLiteEpicRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Epic, error) {
	query := `SELECT ` + epicColumns + ` FROM epics WHERE project_id = ? ORDER BY order_index, created_at, id`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing epics by project: %w", err)
	}
	defer rows.Close()

	var epics []*domain.Epic
	for rows.Next() {
		e, err := scanEpic(rows)
		if err != nil {
			return nil, err
		}
		epics = append(epics, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating epics: %w", err)
	}
	return epics, nil
}

// CountByProject returns the number of epics already attached to a project.
// Used to continue order_index numbering when a plan is regenerated.
func (r *SQLiteEpicRepo) CountByProject(ctx context.Context, projectID string) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM epics WHERE project_id = ?`, projectID).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting epics: %w", err)
	}
	return n, nil
}

func scanEpic(s rowScanner) (*domain.Epic, error) {
	var e domain.Epic
	var statusStr, createdAtStr, updatedAtStr string
	err := s.Scan(&e.ID, &e.ProjectID, &e.Title, &e.Description, &statusStr, &e.OrderIndex,
		&createdAtStr, &updatedAtStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning epic: %w", err)
	}
	e.Status = domain.EpicStatus(statusStr)

	e.CreatedAt, e.UpdatedAt, err = parseTimestamps(createdAtStr, updatedAtStr)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
