package engine

import (
	"context"
	"errors"
	"maps"
	"sort"
	"time"

	"github.com/hadir-hr/hadir-backend-go/internal/domain/adjustment"
	"github.com/hadir-hr/hadir-backend-go/internal/domain/attendance"
	"github.com/hadir-hr/hadir-backend-go/internal/domain/employee"
	"github.com/hadir-hr/hadir-backend-go/internal/domain/payroll"
	"github.com/hadir-hr/hadir-backend-go/internal/domain/policy"
)

// memStore is an in-memory stand-in for the database. memTx snapshots it on begin
// and restores the snapshot when the unit of work fails.
type memStore struct {
	attendance  map[string]attendance.Attendance
	adjustments map[string]adjustment.SalaryAdjustment
	employees   map[string]employee.Employee
	policies    map[string]policy.Policy

	failAdjustmentCreate error
	balanceConflicts     int
	casCalls             int
}

func newMemStore() *memStore {
	return &memStore{
		attendance:  map[string]attendance.Attendance{},
		adjustments: map[string]adjustment.SalaryAdjustment{},
		employees:   map[string]employee.Employee{},
		policies:    map[string]policy.Policy{},
	}
}

type memSnapshot struct {
	attendance  map[string]attendance.Attendance
	adjustments map[string]adjustment.SalaryAdjustment
	employees   map[string]employee.Employee
}

func (s *memStore) snapshot() memSnapshot {
	return memSnapshot{
		attendance:  maps.Clone(s.attendance),
		adjustments: maps.Clone(s.adjustments),
		employees:   maps.Clone(s.employees),
	}
}

func (s *memStore) restore(snap memSnapshot) {
	s.attendance = snap.attendance
	s.adjustments = snap.adjustments
	s.employees = snap.employees
}

// autoRows returns the engine rows for a record, ordered by category.
func (s *memStore) autoRows(logID string) []adjustment.SalaryAdjustment {
	var rows []adjustment.SalaryAdjustment
	for _, a := range s.adjustments {
		if a.IsAutoGenerated && a.AttendanceLogID != nil && *a.AttendanceLogID == logID {
			rows = append(rows, a)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Category < rows[j].Category })
	return rows
}

func (s *memStore) balance(employeeID string) *int {
	return s.employees[employeeID].MonthlyLateBalanceMinutes
}

type memTx struct{ store *memStore }

type memTxKey struct{}

// memTxState holds the callbacks waiting for the outermost commit.
type memTxState struct{ afterCommit []func() }

// WithinTransaction joins a transaction already in ctx, like the postgres transactor.
func (t memTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(memTxKey{}).(*memTxState); ok {
		return fn(ctx)
	}
	snap := t.store.snapshot()
	state := &memTxState{}
	if err := fn(context.WithValue(ctx, memTxKey{}, state)); err != nil {
		t.store.restore(snap)
		return err
	}
	for _, hook := range state.afterCommit {
		hook()
	}
	return nil
}

func (t memTx) AfterCommit(ctx context.Context, fn func()) {
	state, ok := ctx.Value(memTxKey{}).(*memTxState)
	if !ok {
		fn()
		return
	}
	state.afterCommit = append(state.afterCommit, fn)
}

type memAttendanceRepo struct{ store *memStore }

func (r memAttendanceRepo) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	for _, existing := range r.store.attendance {
		if existing.EmployeeID == a.EmployeeID && attendance.DateKey(existing.Date) == attendance.DateKey(a.Date) {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
	}
	r.store.attendance[a.ID] = a
	return a, nil
}

func (r memAttendanceRepo) GetByID(ctx context.Context, id string, companyID string) (attendance.Attendance, error) {
	a, ok := r.store.attendance[id]
	if !ok || a.CompanyID != companyID {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return a, nil
}

func (r memAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, companyID string) (*attendance.Attendance, error) {
	for _, a := range r.store.attendance {
		if a.EmployeeID == employeeID && a.CompanyID == companyID && attendance.DateKey(a.Date) == attendance.DateKey(date) {
			return &a, nil
		}
	}
	return nil, nil
}

func (r memAttendanceRepo) Update(ctx context.Context, a attendance.Attendance) error {
	if _, ok := r.store.attendance[a.ID]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	r.store.attendance[a.ID] = a
	return nil
}

func (r memAttendanceRepo) ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time, companyID string) ([]attendance.Attendance, error) {
	return nil, errors.New("not used")
}

type memAdjustmentRepo struct{ store *memStore }

func (r memAdjustmentRepo) Create(ctx context.Context, adj adjustment.SalaryAdjustment) (adjustment.SalaryAdjustment, error) {
	if r.store.failAdjustmentCreate != nil {
		return adjustment.SalaryAdjustment{}, r.store.failAdjustmentCreate
	}
	if adj.IsAutoGenerated {
		for _, row := range r.store.autoRows(*adj.AttendanceLogID) {
			if row.Category == adj.Category {
				return adjustment.SalaryAdjustment{}, adjustment.ErrDuplicateAutoRow
			}
		}
	}
	r.store.adjustments[adj.ID] = adj
	return adj, nil
}

func (r memAdjustmentRepo) FindAuto(ctx context.Context, logID string, category adjustment.Category) (*adjustment.SalaryAdjustment, error) {
	for _, row := range r.store.autoRows(logID) {
		if row.Category == category {
			return &row, nil
		}
	}
	return nil, nil
}

func (r memAdjustmentRepo) DeleteAuto(ctx context.Context, logID string, categories ...adjustment.Category) (int64, error) {
	var n int64
	for _, row := range r.store.autoRows(logID) {
		for _, c := range categories {
			if row.Category == c {
				delete(r.store.adjustments, row.ID)
				n++
			}
		}
	}
	return n, nil
}

func (r memAdjustmentRepo) ListByEmployeeAndMonths(ctx context.Context, employeeID string, from, to time.Time, companyID string) ([]adjustment.SalaryAdjustment, error) {
	return nil, errors.New("not used")
}

type memEmployeeRepo struct{ store *memStore }

func (r memEmployeeRepo) GetByID(ctx context.Context, id string, companyID string) (employee.Employee, error) {
	e, ok := r.store.employees[id]
	if !ok || e.CompanyID != companyID {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r memEmployeeRepo) GetLateBalanceForUpdate(ctx context.Context, employeeID string) (*int, error) {
	e, ok := r.store.employees[employeeID]
	if !ok {
		return nil, employee.ErrEmployeeNotFound
	}
	return e.MonthlyLateBalanceMinutes, nil
}

func (r memEmployeeRepo) CompareAndSetLateBalance(ctx context.Context, employeeID string, expected *int, next int) error {
	r.store.casCalls++
	if r.store.balanceConflicts > 0 {
		r.store.balanceConflicts--
		return employee.ErrBalanceConflict
	}
	e := r.store.employees[employeeID]
	stored := e.MonthlyLateBalanceMinutes
	if (stored == nil) != (expected == nil) || (stored != nil && *stored != *expected) {
		return employee.ErrBalanceConflict
	}
	e.MonthlyLateBalanceMinutes = &next
	r.store.employees[employeeID] = e
	return nil
}

func (r memEmployeeRepo) ResetLateBalances(ctx context.Context, now time.Time) (int64, error) {
	return 0, errors.New("not used")
}

type memPolicyRepo struct{ store *memStore }

func (r memPolicyRepo) GetByCompanyID(ctx context.Context, companyID string) (policy.Policy, error) {
	p, ok := r.store.policies[companyID]
	if !ok {
		return policy.Policy{}, policy.ErrPolicyNotFound
	}
	return p, nil
}

type recordingNotifier struct {
	outcomes []payroll.Outcome
	err      error
}

func (n *recordingNotifier) QueueOutcome(ctx context.Context, outcome payroll.Outcome) error {
	if n.err != nil {
		return n.err
	}
	n.outcomes = append(n.outcomes, outcome)
	return nil
}

func (n *recordingNotifier) Stop() {}
