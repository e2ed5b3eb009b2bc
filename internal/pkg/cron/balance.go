package cron

import (
	"context"
	"time"
)

type lateBalanceResetter interface {
	ResetAll(ctx context.Context) error
}

// RegisterLateBalanceReset refills monthly late allowances. The job runs on every
// tick; the resetter records which company months are done, so the first tick
// after a month boundary resets and the rest do nothing, even after downtime.
func RegisterLateBalanceReset(scheduler *Scheduler, tracker lateBalanceResetter, interval time.Duration) {
	scheduler.AddJob(Job{
		Name:     "reset_late_balances",
		Interval: interval,
		Fn:       tracker.ResetAll,
	})
}
