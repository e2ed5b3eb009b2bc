package engine

import (
	"time"

	"github.com/hadir-hr/hadir-backend-go/internal/domain/policy"
	"github.com/shopspring/decimal"
)

// WorkedMinutes is the time between check-in and check-out net of the policy break.
// A check-out past midnight is clamped to the end of the check-in's company-local day.
// Freelancers are paid for breaks, so nothing is subtracted for them.
func WorkedMinutes(checkIn, checkOut time.Time, p policy.Policy, freelancer bool) int {
	loc := p.Location()
	local := checkIn.In(loc)
	endOfDay := time.Date(local.Year(), local.Month(), local.Day()+1, 0, 0, 0, 0, loc)
	if checkOut.After(endOfDay) {
		checkOut = endOfDay
	}
	if !checkOut.After(checkIn) {
		return 0
	}

	minutes := int(checkOut.Sub(checkIn) / time.Minute)
	if !freelancer {
		minutes -= p.BreakDurationMinutes
	}
	if minutes < 0 {
		return 0
	}
	return minutes
}

// OvertimeMinutes is the worked time beyond the policy's expected day.
func OvertimeMinutes(checkIn, checkOut time.Time, p policy.Policy, freelancer bool) int {
	extra := WorkedMinutes(checkIn, checkOut, p, freelancer) - p.ExpectedDailyMinutes()
	if extra < 0 {
		return 0
	}
	return extra
}

var minutesPerHour = decimal.NewFromInt(60)

// OvertimePay is hourlyValue x multiplier x minutes/60, rounded to cents.
func OvertimePay(hourlyValue, multiplier decimal.Decimal, minutes int) decimal.Decimal {
	if minutes <= 0 || !hourlyValue.IsPositive() {
		return decimal.Zero
	}
	return hourlyValue.Mul(multiplier).Mul(decimal.NewFromInt(int64(minutes))).Div(minutesPerHour).Round(2)
}
