package statistics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hadir-hr/hadir-backend-go/internal/domain/adjustment"
	"github.com/hadir-hr/hadir-backend-go/internal/domain/attendance"
	"github.com/hadir-hr/hadir-backend-go/internal/domain/employee"
	"github.com/hadir-hr/hadir-backend-go/internal/domain/policy"
	"github.com/hadir-hr/hadir-backend-go/internal/domain/statistics"
	"golang.org/x/sync/errgroup"
)

type StatisticsServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	adjustmentRepo adjustment.AdjustmentRepository
	employeeRepo   employee.EmployeeRepository
	policyRepo     policy.PolicyRepository
	now            func() time.Time
}

func NewStatisticsService(
	attendanceRepo attendance.AttendanceRepository,
	adjustmentRepo adjustment.AdjustmentRepository,
	employeeRepo employee.EmployeeRepository,
	policyRepo policy.PolicyRepository,
) statistics.StatisticsService {
	return &StatisticsServiceImpl{
		attendanceRepo: attendanceRepo,
		adjustmentRepo: adjustmentRepo,
		employeeRepo:   employeeRepo,
		policyRepo:     policyRepo,
		now:            time.Now,
	}
}

func (s *StatisticsServiceImpl) GetEmployeeStatistics(ctx context.Context, req statistics.GetStatisticsRequest) (statistics.Summary, error) {
	if err := req.Validate(); err != nil {
		return statistics.Summary{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, req.CompanyID)
	if err != nil {
		return statistics.Summary{}, fmt.Errorf("failed to get employee: %w", err)
	}
	p, err := s.policyRepo.GetByCompanyID(ctx, req.CompanyID)
	if errors.Is(err, policy.ErrPolicyNotFound) {
		p = policy.Default(req.CompanyID)
	} else if err != nil {
		return statistics.Summary{}, fmt.Errorf("failed to get attendance policy: %w", err)
	}

	span, err := ResolvePeriod(req.Period, s.now(), p.Location(), emp.CreatedAt)
	if err != nil {
		return statistics.Summary{}, err
	}

	var (
		records     []attendance.Attendance
		adjustments []adjustment.SalaryAdjustment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.attendanceRepo.ListByEmployeeAndRange(gctx, emp.ID, span.From, span.To, req.CompanyID)
		if err != nil {
			return fmt.Errorf("failed to list attendance: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		adjustments, err = s.adjustmentRepo.ListByEmployeeAndMonths(gctx, emp.ID, adjustment.MonthKey(span.From), adjustment.MonthKey(span.To), req.CompanyID)
		if err != nil {
			return fmt.Errorf("failed to list salary adjustments: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return statistics.Summary{}, err
	}

	summary := Aggregate(Input{
		Employee:    emp,
		Policy:      p,
		From:        span.From,
		To:          span.To,
		Records:     records,
		Adjustments: adjustments,
	})
	summary.Period = req.Period
	return summary, nil
}
