package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/hadir-hr/hadir-backend-go/internal/domain/adjustment"
	"github.com/hadir-hr/hadir-backend-go/internal/domain/attendance"
	"github.com/hadir-hr/hadir-backend-go/internal/domain/employee"
	"github.com/hadir-hr/hadir-backend-go/internal/domain/notification"
	"github.com/hadir-hr/hadir-backend-go/internal/domain/payroll"
	"github.com/hadir-hr/hadir-backend-go/internal/domain/policy"
	"github.com/hadir-hr/hadir-backend-go/internal/service/latebalance"
	"github.com/shopspring/decimal"
)

// maxAttempts bounds retries after a lost balance compare-and-set.
const maxAttempts = 3

// Transactor runs fn as one unit of work. Repositories called with the ctx
// handed to fn take part in it.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
	// AfterCommit runs fn once the outermost transaction in ctx commits, or
	// immediately when ctx carries none.
	AfterCommit(ctx context.Context, fn func())
}

type AdjustmentEngineImpl struct {
	tx             Transactor
	attendanceRepo attendance.AttendanceRepository
	adjustmentRepo adjustment.AdjustmentRepository
	employeeRepo   employee.EmployeeRepository
	policyRepo     policy.PolicyRepository
	tracker        *latebalance.Tracker
	notifier       notification.Service
}

func NewAdjustmentEngine(
	tx Transactor,
	attendanceRepo attendance.AttendanceRepository,
	adjustmentRepo adjustment.AdjustmentRepository,
	employeeRepo employee.EmployeeRepository,
	policyRepo policy.PolicyRepository,
	notifier notification.Service,
) payroll.AdjustmentEngine {
	return &AdjustmentEngineImpl{
		tx:             tx,
		attendanceRepo: attendanceRepo,
		adjustmentRepo: adjustmentRepo,
		employeeRepo:   employeeRepo,
		policyRepo:     policyRepo,
		tracker:        latebalance.NewTracker(employeeRepo),
		notifier:       notifier,
	}
}

// run executes op in a transaction, retrying when the late balance was changed
// underneath it. The employee notification waits for the outermost commit, so a
// caller's enclosing transaction that rolls back sends nothing.
func (e *AdjustmentEngineImpl) run(ctx context.Context, op func(ctx context.Context) (payroll.Outcome, error)) (payroll.Outcome, error) {
	var outcome payroll.Outcome
	for attempt := 1; ; attempt++ {
		err := e.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
			o, err := op(txCtx)
			if err != nil {
				return err
			}
			outcome = o
			e.tx.AfterCommit(txCtx, func() { e.notify(ctx, o) })
			return nil
		})
		if err == nil {
			break
		}
		if errors.Is(err, employee.ErrBalanceConflict) && attempt < maxAttempts {
			slog.Warn("Late balance conflict, retrying", "attempt", attempt, "error", err)
			continue
		}
		return payroll.Outcome{}, err
	}
	return outcome, nil
}

// notify logs a committed outcome and hands it to the notifier.
func (e *AdjustmentEngineImpl) notify(ctx context.Context, outcome payroll.Outcome) {
	slog.Info("Attendance adjustment applied",
		"action", outcome.Action,
		"attendance_id", outcome.AttendanceID,
		"employee_id", outcome.EmployeeID,
		"tier", outcome.Tier,
		"deduction_delta", outcome.DeductionDelta.String(),
		"balance_before", outcome.BalanceBefore,
		"balance_after", outcome.BalanceAfter,
		"rows_deleted", outcome.RowsDeleted,
	)

	if e.notifier == nil {
		return
	}
	err := e.notifier.QueueOutcome(ctx, outcome)
	switch {
	case errors.Is(err, notification.ErrNoRecipient):
		slog.Debug("No notification recipient", "employee_id", outcome.EmployeeID)
	case err != nil:
		slog.Warn("Failed to queue adjustment notification", "attendance_id", outcome.AttendanceID, "error", err)
	}
}

// ========== CHECK-IN ==========

func (e *AdjustmentEngineImpl) OnApprove(ctx context.Context, req payroll.ApproveCheckInRequest) (payroll.Outcome, error) {
	return e.run(ctx, func(ctx context.Context) (payroll.Outcome, error) {
		p, err := e.loadPolicy(ctx, req.CompanyID)
		if err != nil {
			return payroll.Outcome{}, err
		}
		emp, err := e.employeeRepo.GetByID(ctx, req.EmployeeID, req.CompanyID)
		if err != nil {
			return payroll.Outcome{}, fmt.Errorf("failed to get employee: %w", err)
		}

		date := attendance.CalendarDate(req.CheckInTime, p.Location())
		existing, err := e.attendanceRepo.GetByEmployeeAndDate(ctx, emp.ID, date, req.CompanyID)
		if err != nil {
			return payroll.Outcome{}, fmt.Errorf("failed to check existing attendance: %w", err)
		}
		if existing != nil {
			if existing.Status == attendance.StatusAbsent {
				return payroll.Outcome{}, attendance.ErrAttendanceAbsent
			}
			return payroll.Outcome{}, attendance.ErrAlreadyCheckedIn
		}

		checkIn := req.CheckInTime
		record := attendance.Attendance{
			ID:          newID(),
			EmployeeID:  emp.ID,
			CompanyID:   req.CompanyID,
			Date:        date,
			CheckInTime: &checkIn,
			Status:      attendance.StatusCheckedIn,
		}

		outcome := newOutcome(payroll.ActionApprove, record, emp, req.ApproverName)
		outcome.Timezone = p.Timezone
		outcome.NewCheckIn = &checkIn
		outcome.NewLateMinutes = LateMinutes(checkIn, p)

		snap, err := e.tracker.Load(ctx, emp.ID, p.MonthlyLateAllowanceMinutes)
		if err != nil {
			return payroll.Outcome{}, err
		}
		outcome.BalanceBefore = snap.Minutes

		decision := e.decide(outcome.NewLateMinutes, snap.Balance, p, emp)
		record.GraceMinutesConsumed = &decision.BalanceConsumed

		if _, err := e.attendanceRepo.Create(ctx, record); err != nil {
			return payroll.Outcome{}, fmt.Errorf("failed to create attendance: %w", err)
		}
		if err := e.bookLateDeduction(ctx, &outcome, record, decision, req.ApproverName); err != nil {
			return payroll.Outcome{}, err
		}
		if err := e.tracker.Save(ctx, emp.ID, snap, decision.BalanceAfter); err != nil {
			return payroll.Outcome{}, err
		}

		applyDecision(&outcome, decision)
		return outcome, nil
	})
}

// OnRecalculateEdit undoes the previous late decision of the record and decides again
// from scratch. Running it twice with the same times leaves the same state.
func (e *AdjustmentEngineImpl) OnRecalculateEdit(ctx context.Context, req payroll.EditCheckInRequest) (payroll.Outcome, error) {
	return e.run(ctx, func(ctx context.Context) (payroll.Outcome, error) {
		record, err := e.attendanceRepo.GetByID(ctx, req.AttendanceID, req.CompanyID)
		if err != nil {
			return payroll.Outcome{}, fmt.Errorf("failed to get attendance: %w", err)
		}
		if record.Status == attendance.StatusAbsent {
			return payroll.Outcome{}, attendance.ErrAttendanceAbsent
		}
		p, err := e.loadPolicy(ctx, req.CompanyID)
		if err != nil {
			return payroll.Outcome{}, err
		}
		emp, err := e.employeeRepo.GetByID(ctx, record.EmployeeID, req.CompanyID)
		if err != nil {
			return payroll.Outcome{}, fmt.Errorf("failed to get employee: %w", err)
		}

		newCheckIn := req.NewCheckInTime
		if attendance.DateKey(attendance.CalendarDate(newCheckIn, p.Location())) != attendance.DateKey(record.Date) {
			return payroll.Outcome{}, attendance.ErrDateMismatch
		}
		if record.CheckOutTime != nil && record.CheckOutTime.Before(newCheckIn) {
			return payroll.Outcome{}, attendance.ErrCheckOutBeforeCheckIn
		}

		oldCheckIn := record.CheckInTime
		if req.OldCheckInTime != nil {
			oldCheckIn = req.OldCheckInTime
		}

		outcome := newOutcome(payroll.ActionEditCheckIn, record, emp, req.EditorName)
		outcome.Timezone = p.Timezone
		outcome.OldCheckIn = oldCheckIn
		outcome.NewCheckIn = &newCheckIn
		if oldCheckIn != nil {
			outcome.OldLateMinutes = LateMinutes(*oldCheckIn, p)
		}
		outcome.NewLateMinutes = LateMinutes(newCheckIn, p)

		previous, err := e.adjustmentRepo.FindAuto(ctx, record.ID, adjustment.CategoryLateDeduction)
		if err != nil {
			return payroll.Outcome{}, fmt.Errorf("failed to find late deduction: %w", err)
		}
		if previous != nil {
			outcome.OldDeduction = previous.Deduction
		}

		snap, err := e.tracker.Load(ctx, emp.ID, p.MonthlyLateAllowanceMinutes)
		if err != nil {
			return payroll.Outcome{}, err
		}
		outcome.BalanceBefore = snap.Minutes

		balance, restored := snap.Restore(graceToRestore(record, outcome.OldLateMinutes, previous))
		outcome.BalanceRestored = restored

		deleted, err := e.adjustmentRepo.DeleteAuto(ctx, record.ID, adjustment.CategoryLateDeduction)
		if err != nil {
			return payroll.Outcome{}, fmt.Errorf("failed to delete late deduction: %w", err)
		}
		outcome.RowsDeleted = deleted

		decision := e.decide(outcome.NewLateMinutes, balance, p, emp)
		if err := e.bookLateDeduction(ctx, &outcome, record, decision, req.EditorName); err != nil {
			return payroll.Outcome{}, err
		}

		record.CheckInTime = &newCheckIn
		record.GraceMinutesConsumed = &decision.BalanceConsumed
		if err := e.attendanceRepo.Update(ctx, record); err != nil {
			return payroll.Outcome{}, fmt.Errorf("failed to update attendance: %w", err)
		}
		if err := e.tracker.Save(ctx, emp.ID, snap, decision.BalanceAfter); err != nil {
			return payroll.Outcome{}, err
		}

		applyDecision(&outcome, decision)
		return outcome, nil
	})
}

// ========== ABSENCE ==========

func (e *AdjustmentEngineImpl) OnMarkAbsent(ctx context.Context, req payroll.MarkAbsentRequest) (payroll.Outcome, error) {
	return e.run(ctx, func(ctx context.Context) (payroll.Outcome, error) {
		p, err := e.loadPolicy(ctx, req.CompanyID)
		if err != nil {
			return payroll.Outcome{}, err
		}

		var record attendance.Attendance
		isNew := false
		if req.AttendanceID != nil {
			record, err = e.attendanceRepo.GetByID(ctx, *req.AttendanceID, req.CompanyID)
			if err != nil {
				return payroll.Outcome{}, fmt.Errorf("failed to get attendance: %w", err)
			}
		} else {
			found, err := e.attendanceRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, req.Date, req.CompanyID)
			if err != nil {
				return payroll.Outcome{}, fmt.Errorf("failed to get attendance: %w", err)
			}
			if found != nil {
				record = *found
			} else {
				isNew = true
				record = attendance.Attendance{
					ID:         newID(),
					EmployeeID: req.EmployeeID,
					CompanyID:  req.CompanyID,
					Date:       req.Date,
				}
			}
		}

		emp, err := e.employeeRepo.GetByID(ctx, record.EmployeeID, req.CompanyID)
		if err != nil {
			return payroll.Outcome{}, fmt.Errorf("failed to get employee: %w", err)
		}

		outcome := newOutcome(payroll.ActionMarkAbsent, record, emp, req.ActorName)
		outcome.Timezone = p.Timezone
		outcome.OldCheckIn = record.CheckInTime
		outcome.OldCheckOut = record.CheckOutTime
		if record.CheckInTime != nil {
			outcome.OldLateMinutes = LateMinutes(*record.CheckInTime, p)
		}

		previous, err := e.adjustmentRepo.FindAuto(ctx, record.ID, adjustment.CategoryLateDeduction)
		if err != nil {
			return payroll.Outcome{}, fmt.Errorf("failed to find late deduction: %w", err)
		}
		if previous != nil {
			outcome.OldDeduction = previous.Deduction
		}
		previousAbsence, err := e.adjustmentRepo.FindAuto(ctx, record.ID, adjustment.CategoryAbsenceDeduction)
		if err != nil {
			return payroll.Outcome{}, fmt.Errorf("failed to find absence deduction: %w", err)
		}
		if previousAbsence != nil {
			outcome.OldDeduction = outcome.OldDeduction.Add(previousAbsence.Deduction)
		}
		previousBonus, err := e.adjustmentRepo.FindAuto(ctx, record.ID, adjustment.CategoryOvertimeBonus)
		if err != nil {
			return payroll.Outcome{}, fmt.Errorf("failed to find overtime bonus: %w", err)
		}
		if previousBonus != nil {
			outcome.OldBonus = previousBonus.Bonus
		}

		snap, err := e.tracker.Load(ctx, emp.ID, p.MonthlyLateAllowanceMinutes)
		if err != nil {
			return payroll.Outcome{}, err
		}
		outcome.BalanceBefore = snap.Minutes
		balance := snap.Balance
		if record.CheckInTime != nil {
			balance, outcome.BalanceRestored = snap.Restore(graceToRestore(record, outcome.OldLateMinutes, previous))
		}

		deleted, err := e.adjustmentRepo.DeleteAuto(ctx, record.ID,
			adjustment.CategoryLateDeduction,
			adjustment.CategoryOvertimeBonus,
			adjustment.CategoryAbsenceDeduction,
		)
		if err != nil {
			return payroll.Outcome{}, fmt.Errorf("failed to delete engine adjustments: %w", err)
		}
		outcome.RowsDeleted = deleted

		record.MarkAbsent()
		if isNew {
			outcome.RecordCreated = true
			_, err = e.attendanceRepo.Create(ctx, record)
		} else {
			err = e.attendanceRepo.Update(ctx, record)
		}
		if err != nil {
			return payroll.Outcome{}, fmt.Errorf("failed to save absent attendance: %w", err)
		}
		outcome.AttendanceID = record.ID

		days := p.AbsenceDays()
		outcome.DeductionDays = days
		outcome.NewDeduction = decimal.Zero
		if days.IsPositive() {
			row, err := e.adjustmentRepo.Create(ctx, adjustment.SalaryAdjustment{
				ID:              newID(),
				EmployeeID:      emp.ID,
				CompanyID:       req.CompanyID,
				Month:           adjustment.MonthKey(record.Date),
				Bonus:           decimal.Zero,
				Deduction:       DeductionAmount(emp.DailyRate(), days),
				AdjustmentDays:  days,
				Description:     fmt.Sprintf("Absence on %s (%s day) - by %s", attendance.DateKey(record.Date), days.String(), req.ActorName),
				IsAutoGenerated: true,
				AttendanceLogID: &record.ID,
				AddedByName:     req.ActorName,
				Category:        adjustment.CategoryAbsenceDeduction,
			})
			if err != nil {
				return payroll.Outcome{}, fmt.Errorf("failed to create absence deduction: %w", err)
			}
			outcome.NewDeduction = row.Deduction
			outcome.AdjustmentID = &row.ID
		}
		outcome.DeductionDelta = outcome.NewDeduction.Sub(outcome.OldDeduction)
		outcome.NewBonus = decimal.Zero

		if err := e.tracker.Save(ctx, emp.ID, snap, balance); err != nil {
			return payroll.Outcome{}, err
		}
		outcome.BalanceAfter = balance.Minutes
		return outcome, nil
	})
}

// OnUnmarkAbsent only removes the absence deduction. New check-in times go through
// OnRecalculateEdit or OnApprove separately.
func (e *AdjustmentEngineImpl) OnUnmarkAbsent(ctx context.Context, req payroll.UnmarkAbsentRequest) (payroll.Outcome, error) {
	return e.run(ctx, func(ctx context.Context) (payroll.Outcome, error) {
		record, err := e.attendanceRepo.GetByID(ctx, req.AttendanceID, req.CompanyID)
		if err != nil {
			return payroll.Outcome{}, fmt.Errorf("failed to get attendance: %w", err)
		}
		emp, err := e.employeeRepo.GetByID(ctx, record.EmployeeID, req.CompanyID)
		if err != nil {
			return payroll.Outcome{}, fmt.Errorf("failed to get employee: %w", err)
		}

		outcome := newOutcome(payroll.ActionUnmarkAbsent, record, emp, req.ActorName)

		previous, err := e.adjustmentRepo.FindAuto(ctx, record.ID, adjustment.CategoryAbsenceDeduction)
		if err != nil {
			return payroll.Outcome{}, fmt.Errorf("failed to find absence deduction: %w", err)
		}
		if previous != nil {
			outcome.OldDeduction = previous.Deduction
			outcome.DeductionDays = previous.AdjustmentDays
		}

		deleted, err := e.adjustmentRepo.DeleteAuto(ctx, record.ID, adjustment.CategoryAbsenceDeduction)
		if err != nil {
			return payroll.Outcome{}, fmt.Errorf("failed to delete absence deduction: %w", err)
		}
		outcome.RowsDeleted = deleted
		outcome.DeductionDelta = outcome.NewDeduction.Sub(outcome.OldDeduction)
		return outcome, nil
	})
}

// ========== CHECK-OUT & OVERTIME ==========

// OnCheckoutEdited stores the new check-out, if given, and drops the overtime bonus.
// The bonus is not recomputed; it has to be approved again.
func (e *AdjustmentEngineImpl) OnCheckoutEdited(ctx context.Context, req payroll.EditCheckOutRequest) (payroll.Outcome, error) {
	return e.run(ctx, func(ctx context.Context) (payroll.Outcome, error) {
		record, err := e.attendanceRepo.GetByID(ctx, req.AttendanceID, req.CompanyID)
		if err != nil {
			return payroll.Outcome{}, fmt.Errorf("failed to get attendance: %w", err)
		}
		emp, err := e.employeeRepo.GetByID(ctx, record.EmployeeID, req.CompanyID)
		if err != nil {
			return payroll.Outcome{}, fmt.Errorf("failed to get employee: %w", err)
		}

		p, err := e.loadPolicy(ctx, req.CompanyID)
		if err != nil {
			return payroll.Outcome{}, err
		}

		outcome := newOutcome(payroll.ActionEditCheckOut, record, emp, req.EditorName)
		outcome.Timezone = p.Timezone
		outcome.OldCheckOut = record.CheckOutTime

		if req.NewCheckOutTime != nil {
			if record.Status == attendance.StatusAbsent {
				return payroll.Outcome{}, attendance.ErrAttendanceAbsent
			}
			if record.CheckInTime == nil {
				return payroll.Outcome{}, attendance.ErrNotCheckedIn
			}
			if req.NewCheckOutTime.Before(*record.CheckInTime) {
				return payroll.Outcome{}, attendance.ErrCheckOutBeforeCheckIn
			}
			checkOut := *req.NewCheckOutTime
			record.CheckOutTime = &checkOut
			record.Status = attendance.StatusCheckedOut
			if err := e.attendanceRepo.Update(ctx, record); err != nil {
				return payroll.Outcome{}, fmt.Errorf("failed to update attendance: %w", err)
			}
		}
		outcome.NewCheckOut = record.CheckOutTime

		previous, err := e.adjustmentRepo.FindAuto(ctx, record.ID, adjustment.CategoryOvertimeBonus)
		if err != nil {
			return payroll.Outcome{}, fmt.Errorf("failed to find overtime bonus: %w", err)
		}
		if previous != nil {
			outcome.OldBonus = previous.Bonus
		}

		deleted, err := e.adjustmentRepo.DeleteAuto(ctx, record.ID, adjustment.CategoryOvertimeBonus)
		if err != nil {
			return payroll.Outcome{}, fmt.Errorf("failed to delete overtime bonus: %w", err)
		}
		outcome.RowsDeleted = deleted
		return outcome, nil
	})
}

// ApproveOvertime books the bonus for minutes worked beyond the expected day.
func (e *AdjustmentEngineImpl) ApproveOvertime(ctx context.Context, req payroll.ApproveOvertimeRequest) (payroll.Outcome, error) {
	return e.run(ctx, func(ctx context.Context) (payroll.Outcome, error) {
		record, err := e.attendanceRepo.GetByID(ctx, req.AttendanceID, req.CompanyID)
		if err != nil {
			return payroll.Outcome{}, fmt.Errorf("failed to get attendance: %w", err)
		}
		if record.Status == attendance.StatusAbsent {
			return payroll.Outcome{}, attendance.ErrAttendanceAbsent
		}
		if record.CheckInTime == nil {
			return payroll.Outcome{}, attendance.ErrNotCheckedIn
		}
		if record.CheckOutTime == nil {
			return payroll.Outcome{}, payroll.ErrNoCheckOut
		}
		p, err := e.loadPolicy(ctx, req.CompanyID)
		if err != nil {
			return payroll.Outcome{}, err
		}
		emp, err := e.employeeRepo.GetByID(ctx, record.EmployeeID, req.CompanyID)
		if err != nil {
			return payroll.Outcome{}, fmt.Errorf("failed to get employee: %w", err)
		}

		outcome := newOutcome(payroll.ActionApproveOvertime, record, emp, req.ApproverName)
		outcome.Timezone = p.Timezone
		outcome.NewCheckIn = record.CheckInTime
		outcome.NewCheckOut = record.CheckOutTime
		outcome.OvertimeMinutes = OvertimeMinutes(*record.CheckInTime, *record.CheckOutTime, p, emp.IsFreelancer())

		previous, err := e.adjustmentRepo.FindAuto(ctx, record.ID, adjustment.CategoryOvertimeBonus)
		if err != nil {
			return payroll.Outcome{}, fmt.Errorf("failed to find overtime bonus: %w", err)
		}
		if previous != nil {
			outcome.OldBonus = previous.Bonus
		}

		deleted, err := e.adjustmentRepo.DeleteAuto(ctx, record.ID, adjustment.CategoryOvertimeBonus)
		if err != nil {
			return payroll.Outcome{}, fmt.Errorf("failed to delete overtime bonus: %w", err)
		}
		outcome.RowsDeleted = deleted

		amount := OvertimePay(emp.HourlyValue(p.ExpectedDailyMinutes()), p.OvertimeMultiplier, outcome.OvertimeMinutes)
		if amount.IsPositive() {
			row, err := e.adjustmentRepo.Create(ctx, adjustment.SalaryAdjustment{
				ID:              newID(),
				EmployeeID:      emp.ID,
				CompanyID:       req.CompanyID,
				Month:           adjustment.MonthKey(record.Date),
				Bonus:           amount,
				Deduction:       decimal.Zero,
				AdjustmentDays:  decimal.Zero,
				Description:     fmt.Sprintf("Overtime %d min on %s - approved by %s", outcome.OvertimeMinutes, attendance.DateKey(record.Date), req.ApproverName),
				IsAutoGenerated: true,
				AttendanceLogID: &record.ID,
				AddedByName:     req.ApproverName,
				Category:        adjustment.CategoryOvertimeBonus,
			})
			if err != nil {
				return payroll.Outcome{}, fmt.Errorf("failed to create overtime bonus: %w", err)
			}
			outcome.NewBonus = row.Bonus
			outcome.AdjustmentID = &row.ID
		}
		return outcome, nil
	})
}

// ========== HELPERS ==========

func (e *AdjustmentEngineImpl) loadPolicy(ctx context.Context, companyID string) (policy.Policy, error) {
	p, err := e.policyRepo.GetByCompanyID(ctx, companyID)
	if errors.Is(err, policy.ErrPolicyNotFound) {
		return policy.Default(companyID), nil
	}
	if err != nil {
		return policy.Policy{}, fmt.Errorf("failed to get attendance policy: %w", err)
	}
	return p, nil
}

// decide applies Decide, except that freelancers get tier none and keep their grace
// balance: they are paid by the hour actually worked, so lateness already costs them.
func (e *AdjustmentEngineImpl) decide(lateMinutes int, bal latebalance.Balance, p policy.Policy, emp employee.Employee) Decision {
	if emp.IsFreelancer() {
		return Decision{Tier: payroll.TierNone, DeductionDays: decimal.Zero, Amount: decimal.Zero, BalanceAfter: bal}
	}
	return Decide(lateMinutes, bal, p, emp.DailyRate())
}

func (e *AdjustmentEngineImpl) bookLateDeduction(ctx context.Context, outcome *payroll.Outcome, record attendance.Attendance, d Decision, actor string) error {
	if !d.Charges() {
		return nil
	}
	row, err := e.adjustmentRepo.Create(ctx, adjustment.SalaryAdjustment{
		ID:              newID(),
		EmployeeID:      record.EmployeeID,
		CompanyID:       record.CompanyID,
		Month:           adjustment.MonthKey(record.Date),
		Bonus:           decimal.Zero,
		Deduction:       d.Amount,
		AdjustmentDays:  d.DeductionDays,
		Description:     fmt.Sprintf("Late arrival %d min on %s, tier %s (%s day) - by %s", outcome.NewLateMinutes, attendance.DateKey(record.Date), d.Tier, d.DeductionDays.String(), actor),
		IsAutoGenerated: true,
		AttendanceLogID: &record.ID,
		AddedByName:     actor,
		Category:        adjustment.CategoryLateDeduction,
	})
	if err != nil {
		return fmt.Errorf("failed to create late deduction: %w", err)
	}
	outcome.AdjustmentID = &row.ID
	return nil
}

// graceToRestore is what the record's current check-in took from the balance.
// Records written before consumption was tracked fall back to inference: an arrival
// in the grace band without a monetary deduction consumed its full late minutes.
func graceToRestore(record attendance.Attendance, oldLateMinutes int, previous *adjustment.SalaryAdjustment) int {
	if record.GraceMinutesConsumed != nil {
		return *record.GraceMinutesConsumed
	}
	if oldLateMinutes <= 0 || oldLateMinutes > graceBandMinutes {
		return 0
	}
	if previous != nil && previous.Deduction.IsPositive() {
		return 0
	}
	return oldLateMinutes
}

func newOutcome(action payroll.Action, record attendance.Attendance, emp employee.Employee, actor string) payroll.Outcome {
	return payroll.Outcome{
		Action:         action,
		AttendanceID:   record.ID,
		EmployeeID:     emp.ID,
		EmployeeName:   emp.FullName,
		Date:           attendance.DateKey(record.Date),
		Actor:          actor,
		Tier:           payroll.TierNone,
		DeductionDays:  decimal.Zero,
		OldDeduction:   decimal.Zero,
		NewDeduction:   decimal.Zero,
		DeductionDelta: decimal.Zero,
		OldBonus:       decimal.Zero,
		NewBonus:       decimal.Zero,
		Language:       string(emp.Language),
		TelegramChatID: emp.TelegramChatID,
	}
}

func applyDecision(outcome *payroll.Outcome, d Decision) {
	outcome.Tier = d.Tier
	outcome.DeductionDays = d.DeductionDays
	outcome.NewDeduction = d.Amount
	outcome.DeductionDelta = d.Amount.Sub(outcome.OldDeduction)
	outcome.BalanceConsumed = d.BalanceConsumed
	outcome.BalanceAfter = d.BalanceAfter.Minutes
}

func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}
