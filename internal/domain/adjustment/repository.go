package adjustment

import (
	"context"
	"time"
)

// AdjustmentRepository is the append/remove-only salary adjustment ledger.
type AdjustmentRepository interface {
	// Create appends a row. ErrDuplicateAutoRow when the store's uniqueness rule rejects it.
	Create(ctx context.Context, adj SalaryAdjustment) (SalaryAdjustment, error)

	// FindAuto returns the auto-generated row of category for the attendance record, or nil
	FindAuto(ctx context.Context, attendanceLogID string, category Category) (*SalaryAdjustment, error)

	// DeleteAuto removes auto-generated rows for the attendance record in any of categories
	DeleteAuto(ctx context.Context, attendanceLogID string, categories ...Category) (int64, error)

	// ListByEmployeeAndMonths returns rows whose month key is within [fromMonth, toMonth]
	ListByEmployeeAndMonths(ctx context.Context, employeeID string, fromMonth, toMonth time.Time, companyID string) ([]SalaryAdjustment, error)
}
