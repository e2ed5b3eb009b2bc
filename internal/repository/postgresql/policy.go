package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hadir-hr/hadir-backend-go/internal/domain/policy"
	"github.com/hadir-hr/hadir-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type policyRepository struct {
	db *database.DB
}

// GetByCompanyID implements policy.PolicyRepository.
func (r *policyRepository) GetByCompanyID(ctx context.Context, companyID string) (policy.Policy, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, work_start_time::text, work_end_time::text, timezone,
			   late_under_15_deduction_days, late_15_to_30_deduction_days, late_over_30_deduction_days,
			   monthly_late_allowance_minutes, overtime_multiplier, absence_deduction_days,
			   break_duration_minutes, weekend_days, created_at, updated_at
		FROM attendance_policies
		WHERE company_id = $1
	`

	var (
		p                        policy.Policy
		start, end               string
		under15, mid, over30, ab decimal.NullDecimal
		weekend                  []int32
	)
	err := q.QueryRow(ctx, query, companyID).Scan(
		&p.ID, &p.CompanyID, &start, &end, &p.Timezone,
		&under15, &mid, &over30,
		&p.MonthlyLateAllowanceMinutes, &p.OvertimeMultiplier, &ab,
		&p.BreakDurationMinutes, &weekend, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return policy.Policy{}, policy.ErrPolicyNotFound
		}
		return policy.Policy{}, fmt.Errorf("failed to get attendance policy: %w", err)
	}

	if p.WorkStartTime, err = policy.ParseTimeOfDay(start); err != nil {
		return policy.Policy{}, fmt.Errorf("failed to parse work start time: %w", err)
	}
	if p.WorkEndTime, err = policy.ParseTimeOfDay(end); err != nil {
		return policy.Policy{}, fmt.Errorf("failed to parse work end time: %w", err)
	}
	p.LateUnder15DeductionDays = nullableDecimal(under15)
	p.Late15To30DeductionDays = nullableDecimal(mid)
	p.LateOver30DeductionDays = nullableDecimal(over30)
	p.AbsenceDeductionDays = nullableDecimal(ab)
	for _, d := range weekend {
		p.WeekendDays = append(p.WeekendDays, time.Weekday(d))
	}
	return p, nil
}

func nullableDecimal(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	return &d.Decimal
}

func NewPolicyRepository(db *database.DB) policy.PolicyRepository {
	return &policyRepository{db: db}
}
