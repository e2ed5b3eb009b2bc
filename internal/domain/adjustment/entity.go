package adjustment

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category tags who owns a ledger row and why it exists.
type Category string

const (
	CategoryLateDeduction    Category = "late_deduction"
	CategoryAbsenceDeduction Category = "absence_deduction"
	CategoryOvertimeBonus    Category = "overtime_bonus"
	CategoryManual           Category = "manual"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryLateDeduction, CategoryAbsenceDeduction, CategoryOvertimeBonus, CategoryManual:
		return true
	}
	return false
}

// SalaryAdjustment is a dated bonus or deduction entry.
// Engine rows carry IsAutoGenerated and an AttendanceLogID; manual rows never do.
type SalaryAdjustment struct {
	ID              string
	EmployeeID      string
	CompanyID       string
	Month           time.Time
	Bonus           decimal.Decimal
	Deduction       decimal.Decimal
	AdjustmentDays  decimal.Decimal
	Description     string
	IsAutoGenerated bool
	AttendanceLogID *string
	AddedByName     string
	Category        Category
	CreatedAt       time.Time
}

// MonthKey returns the first-of-month date key for a calendar date.
func MonthKey(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// Totals sums bonuses and deductions of rows.
func Totals(rows []SalaryAdjustment) (bonus, deduction decimal.Decimal) {
	bonus, deduction = decimal.Zero, decimal.Zero
	for _, r := range rows {
		bonus = bonus.Add(r.Bonus)
		deduction = deduction.Add(r.Deduction)
	}
	return bonus, deduction
}
