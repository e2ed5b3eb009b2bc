package statistics

import (
	"fmt"
	"time"

	"github.com/hadir-hr/hadir-backend-go/internal/domain/statistics"
)

// Range is an inclusive span of calendar dates, each at midnight UTC.
type Range struct {
	From time.Time
	To   time.Time
}

// ResolvePeriod turns a named period into dates using the company-local calendar at now.
// All-time starts at since, typically the employee's creation date.
func ResolvePeriod(period statistics.Period, now time.Time, loc *time.Location, since time.Time) (Range, error) {
	local := now.In(loc)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
	monthStart := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, time.UTC)

	switch period {
	case statistics.PeriodThisMonth, "":
		return Range{From: monthStart, To: monthStart.AddDate(0, 1, -1)}, nil
	case statistics.PeriodLastMonth:
		start := monthStart.AddDate(0, -1, 0)
		return Range{From: start, To: monthStart.AddDate(0, 0, -1)}, nil
	case statistics.PeriodThisYear:
		start := time.Date(local.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		return Range{From: start, To: start.AddDate(1, 0, -1)}, nil
	case statistics.PeriodAllTime:
		s := since.In(loc)
		start := time.Date(s.Year(), s.Month(), s.Day(), 0, 0, 0, 0, time.UTC)
		if since.IsZero() || start.After(today) {
			start = today
		}
		return Range{From: start, To: today}, nil
	default:
		return Range{}, fmt.Errorf("%w: %q", statistics.ErrInvalidPeriod, period)
	}
}
