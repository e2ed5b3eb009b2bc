package latebalance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hadir-hr/hadir-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestNew(t *testing.T) {
	cases := []struct {
		name      string
		stored    *int
		allowance int
		want      int
	}{
		{"unset starts at allowance", nil, 60, 60},
		{"stored value kept", intPtr(25), 60, 25},
		{"above allowance clamped", intPtr(90), 60, 60},
		{"negative clamped", intPtr(-5), 60, 0},
		{"negative allowance treated as zero", nil, -10, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, New(c.stored, c.allowance).Minutes)
		})
	}
}

func TestConsume(t *testing.T) {
	b := New(nil, 60)

	b, taken := b.Consume(10)
	assert.Equal(t, 10, taken)
	assert.Equal(t, 50, b.Minutes)

	b, taken = b.Consume(80)
	assert.Equal(t, 50, taken)
	assert.Equal(t, 0, b.Minutes)

	b, taken = b.Consume(5)
	assert.Equal(t, 0, taken)
	assert.Equal(t, 0, b.Minutes)
}

func TestRestore_CappedAtAllowance(t *testing.T) {
	b := New(intPtr(50), 60)

	b, restored := b.Restore(25)
	assert.Equal(t, 10, restored)
	assert.Equal(t, 60, b.Minutes)

	_, restored = b.Restore(-3)
	assert.Equal(t, 0, restored)
}

func TestConsumeThenRestoreConservesBalance(t *testing.T) {
	start := New(intPtr(37), 60)
	for n := 0; n <= 40; n++ {
		after, taken := start.Consume(n)
		back, _ := after.Restore(taken)
		assert.Equal(t, start.Minutes, back.Minutes, "n=%d", n)
	}
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	stored   *int
	casErr   error
	casCalls int
	resetErr error
	// company months already reset, keyed "2024-04"
	resetMonths map[string]bool
	resetAt     []time.Time
}

func (f *fakeEmployeeRepo) GetLateBalanceForUpdate(ctx context.Context, employeeID string) (*int, error) {
	return f.stored, nil
}

func (f *fakeEmployeeRepo) CompareAndSetLateBalance(ctx context.Context, employeeID string, expected *int, next int) error {
	f.casCalls++
	if f.casErr != nil {
		return f.casErr
	}
	f.stored = &next
	return nil
}

func (f *fakeEmployeeRepo) ResetLateBalances(ctx context.Context, now time.Time) (int64, error) {
	if f.resetErr != nil {
		return 0, f.resetErr
	}
	f.resetAt = append(f.resetAt, now)
	month := now.Format("2006-01")
	if f.resetMonths[month] {
		return 0, nil
	}
	f.resetMonths[month] = true
	return 3, nil
}

func TestTracker_SaveSkipsUnchanged(t *testing.T) {
	repo := &fakeEmployeeRepo{stored: intPtr(40)}
	tracker := NewTracker(repo)
	ctx := context.Background()

	snap, err := tracker.Load(ctx, "e1", 60)
	require.NoError(t, err)
	require.NoError(t, tracker.Save(ctx, "e1", snap, snap.Balance))
	assert.Equal(t, 0, repo.casCalls)

	next, _ := snap.Consume(5)
	require.NoError(t, tracker.Save(ctx, "e1", snap, next))
	assert.Equal(t, 1, repo.casCalls)
	assert.Equal(t, 35, *repo.stored)
}

func TestTracker_SaveInitialisesUnsetBalance(t *testing.T) {
	repo := &fakeEmployeeRepo{}
	tracker := NewTracker(repo)
	ctx := context.Background()

	snap, err := tracker.Load(ctx, "e1", 60)
	require.NoError(t, err)
	require.NoError(t, tracker.Save(ctx, "e1", snap, snap.Balance))
	assert.Equal(t, 1, repo.casCalls)
	assert.Equal(t, 60, *repo.stored)
}

func TestTracker_SaveConflict(t *testing.T) {
	repo := &fakeEmployeeRepo{stored: intPtr(40), casErr: employee.ErrBalanceConflict}
	tracker := NewTracker(repo)
	ctx := context.Background()

	snap, err := tracker.Load(ctx, "e1", 60)
	require.NoError(t, err)
	next, _ := snap.Consume(5)

	err = tracker.Save(ctx, "e1", snap, next)
	assert.ErrorIs(t, err, employee.ErrBalanceConflict)
}

func TestTracker_ResetAllPassesClock(t *testing.T) {
	repo := &fakeEmployeeRepo{resetMonths: map[string]bool{}}
	tracker := NewTracker(repo)
	// the process was down over the month boundary and comes back on the 3rd
	tracker.now = func() time.Time { return time.Date(2024, 4, 3, 14, 0, 0, 0, time.UTC) }

	require.NoError(t, tracker.ResetAll(context.Background()))
	require.NoError(t, tracker.ResetAll(context.Background()))

	require.Len(t, repo.resetAt, 2)
	assert.Equal(t, time.Date(2024, 4, 3, 14, 0, 0, 0, time.UTC), repo.resetAt[0])
	assert.True(t, repo.resetMonths["2024-04"])

	repo.resetErr = errors.New("db down")
	assert.Error(t, tracker.ResetAll(context.Background()))
}
