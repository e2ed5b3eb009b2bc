package statistics

import (
	"github.com/hadir-hr/hadir-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type Period string

const (
	PeriodThisMonth Period = "this_month"
	PeriodLastMonth Period = "last_month"
	PeriodThisYear  Period = "this_year"
	PeriodAllTime   Period = "all_time"
)

var periods = []string{
	string(PeriodThisMonth),
	string(PeriodLastMonth),
	string(PeriodThisYear),
	string(PeriodAllTime),
}

type GetStatisticsRequest struct {
	EmployeeID string
	CompanyID  string
	Period     Period
}

func (r *GetStatisticsRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if r.Period == "" {
		r.Period = PeriodThisMonth
	}
	if !validator.IsInSlice(string(r.Period), periods) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "period must be one of this_month, last_month, this_year, all_time"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Summary is an informational projection of one employee's period.
// Bonus and deduction totals come from the salary ledger only; the late and overtime
// minutes are recomputed for display and never feed NetSalary.
type Summary struct {
	EmployeeID           string          `json:"employee_id"`
	Period               Period          `json:"period"`
	From                 string          `json:"from"`
	To                   string          `json:"to"`
	ExpectedWorkDays     int             `json:"expected_work_days"`
	WorkDays             int             `json:"work_days"`
	AbsentDays           int             `json:"absent_days"`
	WorkedMinutes        int             `json:"worked_minutes"`
	LateMinutes          int             `json:"late_minutes"`
	OvertimeMinutes      int             `json:"overtime_minutes"`
	EarnedSalary         decimal.Decimal `json:"earned_salary"`
	TotalBonuses         decimal.Decimal `json:"total_bonuses"`
	TotalDeductions      decimal.Decimal `json:"total_deductions"`
	NetSalary            decimal.Decimal `json:"net_salary"`
	EstimatedOvertimePay decimal.Decimal `json:"estimated_overtime_pay"`
}
