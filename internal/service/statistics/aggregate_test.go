package statistics

import (
	"testing"
	"time"

	"github.com/hadir-hr/hadir-backend-go/internal/domain/adjustment"
	"github.com/hadir-hr/hadir-backend-go/internal/domain/attendance"
	"github.com/hadir-hr/hadir-backend-go/internal/domain/employee"
	"github.com/hadir-hr/hadir-backend-go/internal/domain/policy"
	"github.com/hadir-hr/hadir-backend-go/internal/domain/statistics"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
}

func clock(d, hour, minute int) *time.Time {
	t := time.Date(2024, 3, d, hour, minute, 0, 0, time.UTC)
	return &t
}

func monthly() employee.Employee {
	return employee.Employee{ID: "e1", SalaryType: employee.SalaryTypeMonthly, BaseSalary: decimal.NewFromInt(3000)}
}

func record(d int, in, out *time.Time, status attendance.Status) attendance.Attendance {
	return attendance.Attendance{Date: day(d), CheckInTime: in, CheckOutTime: out, Status: status}
}

func TestExpectedWorkDays(t *testing.T) {
	p := policy.Default("c1") // Friday and Saturday off

	// March 2024 has 31 days, 5 Fridays and 5 Saturdays
	assert.Equal(t, 21, ExpectedWorkDays(day(1), day(31), p))
	assert.Equal(t, 1, ExpectedWorkDays(day(11), day(11), p))
	assert.Equal(t, 0, ExpectedWorkDays(day(15), day(16), p))
}

func TestAggregate_LedgerIsTruth(t *testing.T) {
	p := policy.Default("c1")
	in := Input{
		Employee: monthly(),
		Policy:   p,
		From:     day(1),
		To:       day(31),
		Records: []attendance.Attendance{
			// 40 minutes late and 80 minutes of overtime, none of it booked in the ledger
			record(11, clock(11, 9, 40), clock(11, 19, 0), attendance.StatusCheckedOut),
			record(12, clock(12, 9, 0), clock(12, 17, 0), attendance.StatusCheckedOut),
		},
		Adjustments: []adjustment.SalaryAdjustment{
			{Bonus: decimal.NewFromInt(25)},
			{Deduction: decimal.NewFromInt(50)},
		},
	}

	s := Aggregate(in)

	assert.Equal(t, 2, s.WorkDays)
	assert.Equal(t, 40, s.LateMinutes)
	assert.Equal(t, 80, s.OvertimeMinutes)
	assert.True(t, s.EstimatedOvertimePay.IsPositive())
	assert.Equal(t, "200", s.EarnedSalary.String())
	assert.Equal(t, "25", s.TotalBonuses.String())
	assert.Equal(t, "50", s.TotalDeductions.String())
	assert.Equal(t, "175", s.NetSalary.String())
}

func TestAggregate_AbsentAndActiveRecords(t *testing.T) {
	in := Input{
		Employee: monthly(),
		Policy:   policy.Default("c1"),
		From:     day(1),
		To:       day(31),
		Records: []attendance.Attendance{
			record(11, nil, nil, attendance.StatusAbsent),
			record(12, clock(12, 9, 0), nil, attendance.StatusCheckedIn),
			record(13, clock(13, 9, 0), nil, attendance.StatusOnBreak),
			record(14, clock(14, 9, 0), nil, attendance.StatusCheckedOut),
		},
	}

	s := Aggregate(in)

	assert.Equal(t, 1, s.AbsentDays)
	assert.Equal(t, 2, s.WorkDays)
	assert.Equal(t, 0, s.WorkedMinutes)
	assert.Equal(t, "200", s.NetSalary.String())
}

func TestAggregate_FreelancerPaidByHourWithoutBreak(t *testing.T) {
	emp := employee.Employee{ID: "f1", SalaryType: employee.SalaryTypeFreelance, HourlyRate: decimal.NewFromInt(20)}
	in := Input{
		Employee: emp,
		Policy:   policy.Default("c1"),
		From:     day(1),
		To:       day(31),
		Records: []attendance.Attendance{
			record(11, clock(11, 9, 30), clock(11, 13, 0), attendance.StatusCheckedOut),
		},
	}

	s := Aggregate(in)

	assert.Equal(t, 210, s.WorkedMinutes)
	assert.Equal(t, 0, s.LateMinutes)
	assert.Equal(t, 0, s.OvertimeMinutes)
	assert.Equal(t, "70", s.EarnedSalary.String())
	assert.Equal(t, "70", s.NetSalary.String())
}

func TestAggregate_DailySalary(t *testing.T) {
	emp := employee.Employee{ID: "d1", SalaryType: employee.SalaryTypeDaily, BaseSalary: decimal.NewFromInt(120)}
	in := Input{
		Employee: emp,
		Policy:   policy.Default("c1"),
		From:     day(1),
		To:       day(31),
		Records: []attendance.Attendance{
			record(11, clock(11, 9, 0), clock(11, 17, 0), attendance.StatusCheckedOut),
			record(12, clock(12, 9, 0), clock(12, 17, 0), attendance.StatusCheckedOut),
		},
	}

	assert.Equal(t, "240", Aggregate(in).EarnedSalary.String())
}

func TestAggregate_CheckoutPastMidnightIsClamped(t *testing.T) {
	next := time.Date(2024, 3, 12, 3, 0, 0, 0, time.UTC)
	in := Input{
		Employee: monthly(),
		Policy:   policy.Default("c1"),
		From:     day(1),
		To:       day(31),
		Records: []attendance.Attendance{
			record(11, clock(11, 20, 0), &next, attendance.StatusCheckedOut),
		},
	}

	assert.Equal(t, 180, Aggregate(in).WorkedMinutes)
}

func TestResolvePeriod(t *testing.T) {
	now := time.Date(2024, 3, 15, 22, 30, 0, 0, time.UTC)
	since := time.Date(2023, 11, 5, 8, 0, 0, 0, time.UTC)

	r, err := ResolvePeriod(statistics.PeriodThisMonth, now, time.UTC, since)
	require.NoError(t, err)
	assert.Equal(t, day(1), r.From)
	assert.Equal(t, day(31), r.To)

	r, err = ResolvePeriod(statistics.PeriodLastMonth, now, time.UTC, since)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), r.From)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), r.To)

	r, err = ResolvePeriod(statistics.PeriodThisYear, now, time.UTC, since)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), r.From)
	assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), r.To)

	r, err = ResolvePeriod(statistics.PeriodAllTime, now, time.UTC, since)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 11, 5, 0, 0, 0, 0, time.UTC), r.From)
	assert.Equal(t, day(15), r.To)

	_, err = ResolvePeriod("fortnight", now, time.UTC, since)
	assert.ErrorIs(t, err, statistics.ErrInvalidPeriod)
}

func TestResolvePeriod_UsesCompanyCalendar(t *testing.T) {
	// 22:30 UTC on the last day of March is already April in Riyadh
	now := time.Date(2024, 3, 31, 22, 30, 0, 0, time.UTC)
	riyadh, err := time.LoadLocation("Asia/Riyadh")
	require.NoError(t, err)

	r, err := ResolvePeriod(statistics.PeriodThisMonth, now, riyadh, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), r.From)
}
