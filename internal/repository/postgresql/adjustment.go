package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hadir-hr/hadir-backend-go/internal/domain/adjustment"
	"github.com/hadir-hr/hadir-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type adjustmentRepository struct {
	db *database.DB
}

const adjustmentColumns = `id, employee_id, company_id, month, bonus, deduction, adjustment_days,
		description, is_auto_generated, attendance_log_id, added_by_name, category, created_at`

func scanAdjustment(row pgx.Row) (adjustment.SalaryAdjustment, error) {
	var adj adjustment.SalaryAdjustment
	err := row.Scan(
		&adj.ID, &adj.EmployeeID, &adj.CompanyID, &adj.Month, &adj.Bonus, &adj.Deduction, &adj.AdjustmentDays,
		&adj.Description, &adj.IsAutoGenerated, &adj.AttendanceLogID, &adj.AddedByName, &adj.Category, &adj.CreatedAt,
	)
	return adj, err
}

// Create implements adjustment.AdjustmentRepository.
func (r *adjustmentRepository) Create(ctx context.Context, adj adjustment.SalaryAdjustment) (adjustment.SalaryAdjustment, error) {
	if adj.Bonus.IsNegative() || adj.Deduction.IsNegative() {
		return adjustment.SalaryAdjustment{}, adjustment.ErrNegativeAmount
	}
	if !adj.IsAutoGenerated && adj.AttendanceLogID != nil {
		return adjustment.SalaryAdjustment{}, adjustment.ErrManualRowWithLogRef
	}

	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_adjustments (
			id, employee_id, company_id, month, bonus, deduction, adjustment_days,
			description, is_auto_generated, attendance_log_id, added_by_name, category
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		adj.ID,
		adj.EmployeeID,
		adj.CompanyID,
		adj.Month,
		adj.Bonus,
		adj.Deduction,
		adj.AdjustmentDays,
		adj.Description,
		adj.IsAutoGenerated,
		adj.AttendanceLogID,
		adj.AddedByName,
		adj.Category,
	).Scan(&adj.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return adjustment.SalaryAdjustment{}, adjustment.ErrDuplicateAutoRow
		}
		return adjustment.SalaryAdjustment{}, fmt.Errorf("failed to create salary adjustment: %w", err)
	}
	return adj, nil
}

// FindAuto implements adjustment.AdjustmentRepository.
func (r *adjustmentRepository) FindAuto(ctx context.Context, attendanceLogID string, category adjustment.Category) (*adjustment.SalaryAdjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + adjustmentColumns + `
		FROM salary_adjustments
		WHERE attendance_log_id = $1 AND category = $2 AND is_auto_generated = TRUE
		LIMIT 1`

	adj, err := scanAdjustment(q.QueryRow(ctx, query, attendanceLogID, category))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find auto adjustment: %w", err)
	}
	return &adj, nil
}

// DeleteAuto implements adjustment.AdjustmentRepository.
func (r *adjustmentRepository) DeleteAuto(ctx context.Context, attendanceLogID string, categories ...adjustment.Category) (int64, error) {
	if len(categories) == 0 {
		return 0, nil
	}
	q := GetQuerier(ctx, r.db)

	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = string(c)
	}

	query := `
		DELETE FROM salary_adjustments
		WHERE attendance_log_id = $1 AND is_auto_generated = TRUE AND category = ANY($2)
	`

	tag, err := q.Exec(ctx, query, attendanceLogID, names)
	if err != nil {
		return 0, fmt.Errorf("failed to delete auto adjustments: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ListByEmployeeAndMonths implements adjustment.AdjustmentRepository.
func (r *adjustmentRepository) ListByEmployeeAndMonths(ctx context.Context, employeeID string, fromMonth, toMonth time.Time, companyID string) ([]adjustment.SalaryAdjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + adjustmentColumns + `
		FROM salary_adjustments
		WHERE employee_id = $1 AND company_id = $2 AND month BETWEEN $3 AND $4
		ORDER BY month ASC, created_at ASC`

	rows, err := q.Query(ctx, query, employeeID, companyID, fromMonth, toMonth)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary adjustments: %w", err)
	}
	defer rows.Close()

	var result []adjustment.SalaryAdjustment
	for rows.Next() {
		adj, err := scanAdjustment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary adjustment: %w", err)
		}
		result = append(result, adj)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate salary adjustments: %w", err)
	}
	return result, nil
}

func NewAdjustmentRepository(db *database.DB) adjustment.AdjustmentRepository {
	return &adjustmentRepository{db: db}
}
