package statistics

import (
	"time"

	"github.com/hadir-hr/hadir-backend-go/internal/domain/adjustment"
	"github.com/hadir-hr/hadir-backend-go/internal/domain/attendance"
	"github.com/hadir-hr/hadir-backend-go/internal/domain/employee"
	"github.com/hadir-hr/hadir-backend-go/internal/domain/policy"
	"github.com/hadir-hr/hadir-backend-go/internal/domain/statistics"
	"github.com/hadir-hr/hadir-backend-go/internal/service/engine"
	"github.com/shopspring/decimal"
)

// Input is everything Aggregate needs. From and To are inclusive calendar dates.
type Input struct {
	Employee    employee.Employee
	Policy      policy.Policy
	From        time.Time
	To          time.Time
	Records     []attendance.Attendance
	Adjustments []adjustment.SalaryAdjustment
}

var minutesPerHour = decimal.NewFromInt(60)

// Aggregate replays the attendance records and ledger rows of a period.
func Aggregate(in Input) statistics.Summary {
	emp, p := in.Employee, in.Policy
	freelancer := emp.IsFreelancer()

	s := statistics.Summary{
		EmployeeID:       emp.ID,
		From:             attendance.DateKey(in.From),
		To:               attendance.DateKey(in.To),
		ExpectedWorkDays: ExpectedWorkDays(in.From, in.To, p),
	}

	for _, rec := range in.Records {
		if rec.Status == attendance.StatusAbsent {
			s.AbsentDays++
			continue
		}
		if rec.CheckInTime == nil {
			continue
		}
		if rec.CheckOutTime == nil {
			// still at work: counts as a day, contributes no minutes yet
			if rec.Status.IsActive() {
				s.WorkDays++
			}
			continue
		}

		s.WorkDays++
		s.WorkedMinutes += engine.WorkedMinutes(*rec.CheckInTime, *rec.CheckOutTime, p, freelancer)
		if !freelancer {
			s.LateMinutes += engine.LateMinutes(*rec.CheckInTime, p)
			s.OvertimeMinutes += engine.OvertimeMinutes(*rec.CheckInTime, *rec.CheckOutTime, p, false)
		}
	}

	s.EarnedSalary = earnedSalary(emp, s.WorkDays, s.WorkedMinutes)
	s.TotalBonuses, s.TotalDeductions = adjustment.Totals(in.Adjustments)
	s.NetSalary = s.EarnedSalary.Add(s.TotalBonuses).Sub(s.TotalDeductions)
	s.EstimatedOvertimePay = engine.OvertimePay(emp.HourlyValue(p.ExpectedDailyMinutes()), p.OvertimeMultiplier, s.OvertimeMinutes)
	return s
}

func earnedSalary(emp employee.Employee, workDays, workedMinutes int) decimal.Decimal {
	switch emp.SalaryType {
	case employee.SalaryTypeFreelance:
		return decimal.NewFromInt(int64(workedMinutes)).Div(minutesPerHour).Mul(emp.HourlyRate).Round(2)
	default:
		return emp.DailyRate().Mul(decimal.NewFromInt(int64(workDays))).Round(2)
	}
}

// ExpectedWorkDays counts the days in [from, to] that are not weekend days.
func ExpectedWorkDays(from, to time.Time, p policy.Policy) int {
	from = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	to = time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)

	days := 0
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if !p.IsWeekend(d.Weekday()) {
			days++
		}
	}
	return days
}
