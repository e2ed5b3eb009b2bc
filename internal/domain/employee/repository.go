package employee

import (
	"context"
	"time"
)

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string, companyID string) (Employee, error)

	// GetLateBalanceForUpdate reads the stored balance and locks the employee row
	// for the rest of the transaction. Nil means never initialised.
	GetLateBalanceForUpdate(ctx context.Context, employeeID string) (*int, error)

	// CompareAndSetLateBalance writes next only if the stored value still equals expected.
	// Returns ErrBalanceConflict otherwise.
	CompareAndSetLateBalance(ctx context.Context, employeeID string, expected *int, next int) error

	// ResetLateBalances refills balances to the company allowance for every company
	// whose local month containing now has not been reset yet, and records it.
	ResetLateBalances(ctx context.Context, now time.Time) (int64, error)
}
