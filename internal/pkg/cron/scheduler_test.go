package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingResetter struct {
	calls atomic.Int32
	err   error
}

func (c *countingResetter) ResetAll(ctx context.Context) error {
	c.calls.Add(1)
	return c.err
}

func TestLateBalanceReset_RunsOnEveryTick(t *testing.T) {
	s := NewScheduler()
	resetter := &countingResetter{}
	RegisterLateBalanceReset(s, resetter, time.Hour)

	// mid-month and well past the first hour of the month both reach the resetter
	for _, now := range []time.Time{
		time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 4, 1, 0, 5, 0, 0, time.UTC),
		time.Date(2024, 4, 3, 14, 0, 0, 0, time.UTC),
	} {
		s.now = func() time.Time { return now }
		assert.Equal(t, 1, s.RunOnce(context.Background()))
	}
	assert.Equal(t, int32(3), resetter.calls.Load())
}

func TestScheduler_DueGatesTick(t *testing.T) {
	s := NewScheduler()
	resetter := &countingResetter{}
	s.AddJob(Job{
		Name:     "weekdays",
		Interval: time.Hour,
		Due:      func(now time.Time) bool { return now.Weekday() != time.Sunday },
		Fn:       resetter.ResetAll,
	})

	s.now = func() time.Time { return time.Date(2024, 3, 17, 9, 0, 0, 0, time.UTC) }
	assert.Equal(t, 0, s.RunOnce(context.Background()))
	s.now = func() time.Time { return time.Date(2024, 3, 18, 9, 0, 0, 0, time.UTC) }
	assert.Equal(t, 1, s.RunOnce(context.Background()))
	assert.Equal(t, int32(1), resetter.calls.Load())
}

func TestScheduler_FailedJobDoesNotStopOthers(t *testing.T) {
	s := NewScheduler()
	failing := &countingResetter{err: errors.New("db down")}
	ok := &countingResetter{}
	s.AddJob(Job{Name: "failing", Interval: time.Hour, Fn: failing.ResetAll})
	s.AddJob(Job{Name: "ok", Interval: time.Hour, Fn: ok.ResetAll})

	assert.Equal(t, 2, s.RunOnce(context.Background()))
	assert.Equal(t, int32(1), ok.calls.Load())
}

func TestScheduler_StartRunsImmediatelyAndStops(t *testing.T) {
	s := NewScheduler()
	resetter := &countingResetter{}
	s.AddJob(Job{Name: "tick", Interval: time.Hour, Fn: resetter.ResetAll})

	s.Start()
	require.Eventually(t, func() bool { return resetter.calls.Load() == 1 }, time.Second, 10*time.Millisecond)
	s.Stop()
}
