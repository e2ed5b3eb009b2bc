package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hadir-hr/hadir-backend-go/internal/domain/employee"
	"github.com/hadir-hr/hadir-backend-go/internal/domain/policy"
	"github.com/hadir-hr/hadir-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, company_id, full_name, salary_type, base_salary, hourly_rate,
			telegram_chat_id, language, monthly_late_balance_minutes, created_at, updated_at
		FROM employees
		WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&emp.ID, &emp.CompanyID, &emp.FullName, &emp.SalaryType, &emp.BaseSalary, &emp.HourlyRate,
		&emp.TelegramChatID, &emp.Language, &emp.MonthlyLateBalanceMinutes, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee with id %s: %w", id, err)
	}
	return emp, nil
}

// GetLateBalanceForUpdate implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetLateBalanceForUpdate(ctx context.Context, employeeID string) (*int, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT monthly_late_balance_minutes
		FROM employees
		WHERE id = $1
		FOR UPDATE
	`

	var balance *int
	if err := q.QueryRow(ctx, query, employeeID).Scan(&balance); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to read late balance for employee %s: %w", employeeID, err)
	}
	return balance, nil
}

// CompareAndSetLateBalance implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) CompareAndSetLateBalance(ctx context.Context, employeeID string, expected *int, next int) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET monthly_late_balance_minutes = $1, updated_at = NOW()
		WHERE id = $2 AND monthly_late_balance_minutes IS NOT DISTINCT FROM $3
	`

	tag, err := q.Exec(ctx, query, next, employeeID, expected)
	if err != nil {
		return fmt.Errorf("failed to update late balance for employee %s: %w", employeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrBalanceConflict
	}
	return nil
}

// ResetLateBalances implements employee.EmployeeRepository.
// Each company's month is taken in its policy timezone. Claiming the month in
// late_balance_resets and refilling happen in one statement, so a month is reset once
// however many ticks or instances run it. Companies without a policy fall back to the default.
func (e *employeeRepositoryImpl) ResetLateBalances(ctx context.Context, now time.Time) (int64, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		WITH due AS (
			SELECT DISTINCT e.company_id,
				date_trunc('month', $1::timestamptz AT TIME ZONE COALESCE(p.timezone, $2))::date AS month
			FROM employees e
			LEFT JOIN attendance_policies p ON p.company_id = e.company_id
			WHERE e.deleted_at IS NULL
		),
		claimed AS (
			INSERT INTO late_balance_resets (company_id, month)
			SELECT company_id, month FROM due
			ON CONFLICT (company_id, month) DO NOTHING
			RETURNING company_id
		)
		UPDATE employees e
		SET monthly_late_balance_minutes = GREATEST(COALESCE(
				(SELECT p.monthly_late_allowance_minutes FROM attendance_policies p WHERE p.company_id = e.company_id),
				$3), 0),
			updated_at = NOW()
		WHERE e.deleted_at IS NULL
			AND e.company_id IN (SELECT company_id FROM claimed)
	`

	fallback := policy.Default("")
	tag, err := q.Exec(ctx, query, now, fallback.Timezone, fallback.MonthlyLateAllowanceMinutes)
	if err != nil {
		return 0, fmt.Errorf("failed to reset late balances: %w", err)
	}
	return tag.RowsAffected(), nil
}
