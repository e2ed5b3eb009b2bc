package engine

import (
	"testing"

	"github.com/hadir-hr/hadir-backend-go/internal/domain/payroll"
)

// Identifiers seeded by NewMemBackedEngine.
const (
	TestCompanyID  = companyID
	TestEmployeeID = employeeID
)

// MemBackedEngine is the real engine over the in-memory store, for callers
// outside this package that wrap it in their own transaction.
type MemBackedEngine struct {
	Engine payroll.AdjustmentEngine
	Tx     Transactor
	f      *engineFixture
}

func NewMemBackedEngine(t *testing.T, balance int) *MemBackedEngine {
	f := newFixture(t, minutes(balance))
	return &MemBackedEngine{Engine: f.engine, Tx: memTx{f.store}, f: f}
}

func (m *MemBackedEngine) QueuedNotifications() int { return len(m.f.notifier.outcomes) }

func (m *MemBackedEngine) AttendanceCount() int { return len(m.f.store.attendance) }

func (m *MemBackedEngine) AdjustmentCount() int { return len(m.f.store.adjustments) }

func (m *MemBackedEngine) LateBalance() *int { return m.f.store.balance(employeeID) }
