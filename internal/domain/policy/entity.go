package policy

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TimeOfDay is a wall-clock time without a date, e.g. 09:00.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay accepts "15:04" or "15:04:05".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
		}
	}
	return TimeOfDay{}, fmt.Errorf("invalid time of day %q", s)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Minutes returns minutes since midnight.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// On places the time of day on the calendar date of day, in loc.
func (t TimeOfDay) On(day time.Time, loc *time.Location) time.Time {
	local := day.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), t.Hour, t.Minute, 0, 0, loc)
}

// Policy is the per-company attendance and payroll configuration.
// A nil tier value means the company has not configured that tier; it deducts nothing.
type Policy struct {
	ID                          string
	CompanyID                   string
	WorkStartTime               TimeOfDay
	WorkEndTime                 TimeOfDay
	Timezone                    string
	LateUnder15DeductionDays    *decimal.Decimal
	Late15To30DeductionDays     *decimal.Decimal
	LateOver30DeductionDays     *decimal.Decimal
	MonthlyLateAllowanceMinutes int
	OvertimeMultiplier          decimal.Decimal
	AbsenceDeductionDays        *decimal.Decimal
	BreakDurationMinutes        int
	WeekendDays                 []time.Weekday
	CreatedAt                   time.Time
	UpdatedAt                   time.Time
}

// Default is used for companies that never saved a policy.
func Default(companyID string) Policy {
	return Policy{
		CompanyID:                   companyID,
		WorkStartTime:               TimeOfDay{Hour: 9},
		WorkEndTime:                 TimeOfDay{Hour: 17},
		Timezone:                    "UTC",
		MonthlyLateAllowanceMinutes: 0,
		OvertimeMultiplier:          decimal.NewFromFloat(1.5),
		BreakDurationMinutes:        60,
		WeekendDays:                 []time.Weekday{time.Friday, time.Saturday},
	}
}

// Location resolves the policy timezone, falling back to UTC.
func (p Policy) Location() *time.Location {
	if p.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ExpectedStart is the work start on the calendar date of t (company-local).
func (p Policy) ExpectedStart(t time.Time) time.Time {
	return p.WorkStartTime.On(t, p.Location())
}

// ExpectedDailyMinutes is the scheduled working time net of the break.
func (p Policy) ExpectedDailyMinutes() int {
	minutes := p.WorkEndTime.Minutes() - p.WorkStartTime.Minutes() - p.BreakDurationMinutes
	if minutes < 0 {
		return 0
	}
	return minutes
}

func (p Policy) IsWeekend(day time.Weekday) bool {
	for _, w := range p.WeekendDays {
		if w == day {
			return true
		}
	}
	return false
}

func (p Policy) UnderFifteenDays() decimal.Decimal { return orZero(p.LateUnder15DeductionDays) }
func (p Policy) FifteenToThirtyDays() decimal.Decimal {
	return orZero(p.Late15To30DeductionDays)
}
func (p Policy) OverThirtyDays() decimal.Decimal { return orZero(p.LateOver30DeductionDays) }
func (p Policy) AbsenceDays() decimal.Decimal    { return orZero(p.AbsenceDeductionDays) }

func orZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
