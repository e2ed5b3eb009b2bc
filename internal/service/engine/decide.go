package engine

import (
	"time"

	"github.com/hadir-hr/hadir-backend-go/internal/domain/payroll"
	"github.com/hadir-hr/hadir-backend-go/internal/domain/policy"
	"github.com/hadir-hr/hadir-backend-go/internal/service/latebalance"
	"github.com/shopspring/decimal"
)

const (
	graceBandMinutes  = 15
	middleBandMinutes = 30
)

// LateMinutes is the whole minutes between the expected start on the check-in's
// company-local date and the check-in itself. Early arrivals count as zero.
func LateMinutes(checkIn time.Time, p policy.Policy) int {
	late := checkIn.Sub(p.ExpectedStart(checkIn))
	if late <= 0 {
		return 0
	}
	return int(late / time.Minute)
}

// Decision is the result of applying the late tiers to one arrival.
type Decision struct {
	Tier            payroll.Tier
	DeductionDays   decimal.Decimal
	Amount          decimal.Decimal
	BalanceConsumed int
	BalanceAfter    latebalance.Balance
}

// Charges reports whether the decision produces a ledger row.
func (d Decision) Charges() bool {
	return d.DeductionDays.IsPositive()
}

// Decide applies the late tiers top-down, first match wins:
// over 30 minutes, then 15 to 30, then the grace band which consumes balance first.
func Decide(lateMinutes int, bal latebalance.Balance, p policy.Policy, dailyRate decimal.Decimal) Decision {
	d := Decision{
		Tier:          payroll.TierNone,
		DeductionDays: decimal.Zero,
		Amount:        decimal.Zero,
		BalanceAfter:  bal,
	}

	switch {
	case lateMinutes > middleBandMinutes:
		d.Tier = payroll.TierOverThirty
		d.DeductionDays = p.OverThirtyDays()
	case lateMinutes > graceBandMinutes:
		d.Tier = payroll.TierFifteenToThirty
		d.DeductionDays = p.FifteenToThirtyDays()
	case lateMinutes > 0:
		after, taken := bal.Consume(lateMinutes)
		d.BalanceAfter = after
		d.BalanceConsumed = taken
		if taken == lateMinutes {
			d.Tier = payroll.TierGrace
			return d
		}
		d.Tier = payroll.TierUnderFifteen
		d.DeductionDays = p.UnderFifteenDays()
	default:
		return d
	}

	d.Amount = DeductionAmount(dailyRate, d.DeductionDays)
	return d
}

// DeductionAmount converts days into money at dailyRate, rounded to cents.
func DeductionAmount(dailyRate, days decimal.Decimal) decimal.Decimal {
	if !days.IsPositive() {
		return decimal.Zero
	}
	return dailyRate.Mul(days).Round(2)
}
