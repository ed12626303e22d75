package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/epicboard/internal/db"
	"github.com/alexanderramin/epicboard/internal/domain"
)

// SQLiteRiskRepo implements RiskRepo using a SQLite database.
type SQLiteRiskRepo struct {
	db db.DBTX
}

// NewSQLiteRiskRepo creates a new SQLiteRiskRepo.
func NewSQLiteRiskRepo(conn db.DBTX) *SQLiteRiskRepo {
	return &SQLiteRiskRepo{db: conn}
}

func (r *SQLiteRiskRepo) Create(ctx context.Context, risk *domain.Risk) error {
	query := `INSERT INTO risks (id, task_id, type, severity, description, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		risk.ID,
		risk.TaskID,
		string(risk.Type),
		string(risk.Severity),
		risk.Description,
		formatTime(risk.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting risk: %w", err)
	}
	return nil
}

func (r *SQLiteRiskRepo) ListByTask(ctx context.Context, taskID string) ([]*domain.Risk, error) {
	query := `SELECT id, task_id, type, severity, description, created_at
		FROM risks WHERE task_id = ? ORDER BY created_at DESC, rowid DESC`
	return r.list(ctx, query, taskID)
}

func (r *SQLiteRiskRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Risk, error) {
	query := `SELECT r.id, r.task_id, r.type, r.severity, r.description, r.created_at
		FROM risks r JOIN tasks t ON t.id = r.task_id
		WHERE t.project_id = ? ORDER BY r.created_at DESC, r.rowid DESC`
	return r.list(ctx, query, projectID)
}

func (r *SQLiteRiskRepo) list(ctx context.Context, query string, arg string) ([]*domain.Risk, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("listing risks: %w", err)
	}
	defer rows.Close()

	var risks []*domain.Risk
	for rows.Next() {
		var risk domain.Risk
		var typeStr, severityStr, createdAtStr string
		if err := rows.Scan(&risk.ID, &risk.TaskID, &typeStr, &severityStr, &risk.Description, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning risk row: %w", err)
		}
		risk.Type = domain.RiskType(typeStr)
		risk.Severity = domain.RiskSeverity(severityStr)
		risk.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		risks = append(risks, &risk)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating risks: %w", err)
	}
	return risks, nil
}
