package latebalance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hadir-hr/hadir-backend-go/internal/domain/employee"
)

// Snapshot is a balance together with the raw stored value it was read from,
// which Save uses as the compare-and-set guard.
type Snapshot struct {
	Balance
	stored *int
}

// Changed reports whether next differs from what is stored.
func (s Snapshot) Changed(next Balance) bool {
	return s.stored == nil || *s.stored != next.Minutes
}

type Tracker struct {
	employeeRepo employee.EmployeeRepository
	now          func() time.Time
}

func NewTracker(employeeRepo employee.EmployeeRepository) *Tracker {
	return &Tracker{employeeRepo: employeeRepo, now: time.Now}
}

// Load reads the employee's balance, locking the row when called inside a transaction.
func (t *Tracker) Load(ctx context.Context, employeeID string, allowance int) (Snapshot, error) {
	stored, err := t.employeeRepo.GetLateBalanceForUpdate(ctx, employeeID)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to read late balance: %w", err)
	}
	return Snapshot{Balance: New(stored, allowance), stored: stored}, nil
}

// Save persists next if it differs from the snapshot. A concurrent writer yields employee.ErrBalanceConflict.
func (t *Tracker) Save(ctx context.Context, employeeID string, snap Snapshot, next Balance) error {
	if !snap.Changed(next) {
		return nil
	}
	if err := t.employeeRepo.CompareAndSetLateBalance(ctx, employeeID, snap.stored, next.Minutes); err != nil {
		return fmt.Errorf("failed to save late balance: %w", err)
	}
	return nil
}

// ResetAll refills balances for companies that entered a month not reset yet.
// Calling it again within the same month is a no-op.
func (t *Tracker) ResetAll(ctx context.Context) error {
	count, err := t.employeeRepo.ResetLateBalances(ctx, t.now())
	if err != nil {
		return fmt.Errorf("failed to reset late balances: %w", err)
	}
	if count > 0 {
		slog.Info("Late balances reset", "employees", count)
	}
	return nil
}
