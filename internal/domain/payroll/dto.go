package payroll

import (
	"time"

	"github.com/hadir-hr/hadir-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== ENGINE REQUESTS ==========

type ApproveCheckInRequest struct {
	EmployeeID   string
	CompanyID    string
	CheckInTime  time.Time
	ApproverName string
}

type EditCheckInRequest struct {
	AttendanceID string
	CompanyID    string
	// OldCheckInTime overrides the stored check-in when the caller already overwrote it
	OldCheckInTime *time.Time
	NewCheckInTime time.Time
	EditorName     string
}

type MarkAbsentRequest struct {
	// AttendanceID takes precedence over EmployeeID+Date
	AttendanceID *string
	EmployeeID   string
	CompanyID    string
	Date         time.Time
	ActorName    string
}

type UnmarkAbsentRequest struct {
	AttendanceID string
	CompanyID    string
	ActorName    string
}

type EditCheckOutRequest struct {
	AttendanceID    string
	CompanyID       string
	NewCheckOutTime *time.Time
	EditorName      string
}

type ApproveOvertimeRequest struct {
	AttendanceID string
	CompanyID    string
	ApproverName string
}

// ========== ENGINE OUTCOME ==========

// Outcome is everything one engine operation decided and wrote.
// The HTTP response and the employee notification are both rendered from it.
type Outcome struct {
	Action          Action          `json:"action"`
	AttendanceID    string          `json:"attendance_id"`
	EmployeeID      string          `json:"employee_id"`
	EmployeeName    string          `json:"employee_name"`
	Date            string          `json:"date"`
	Timezone        string          `json:"timezone"`
	Actor           string          `json:"actor"`
	OldCheckIn      *time.Time      `json:"old_check_in,omitempty"`
	NewCheckIn      *time.Time      `json:"new_check_in,omitempty"`
	OldCheckOut     *time.Time      `json:"old_check_out,omitempty"`
	NewCheckOut     *time.Time      `json:"new_check_out,omitempty"`
	OldLateMinutes  int             `json:"old_late_minutes"`
	NewLateMinutes  int             `json:"new_late_minutes"`
	Tier            Tier            `json:"tier"`
	DeductionDays   decimal.Decimal `json:"deduction_days"`
	OldDeduction    decimal.Decimal `json:"old_deduction"`
	NewDeduction    decimal.Decimal `json:"new_deduction"`
	DeductionDelta  decimal.Decimal `json:"deduction_delta"`
	OldBonus        decimal.Decimal `json:"old_bonus"`
	NewBonus        decimal.Decimal `json:"new_bonus"`
	OvertimeMinutes int             `json:"overtime_minutes"`
	BalanceBefore   int             `json:"balance_before"`
	BalanceAfter    int             `json:"balance_after"`
	BalanceRestored int             `json:"balance_restored"`
	BalanceConsumed int             `json:"balance_consumed"`
	RowsDeleted     int64           `json:"rows_deleted"`
	AdjustmentID    *string         `json:"adjustment_id,omitempty"`
	RecordCreated   bool            `json:"record_created,omitempty"`
	Language        string          `json:"-"`
	TelegramChatID  *int64          `json:"-"`
}

// ========== WEBHOOK DTOs ==========

// HookRequest is the body of the serverless/bot webhook.
type HookRequest struct {
	Action          Action  `json:"action"`
	AttendanceLogID *string `json:"attendance_log_id,omitempty"`
	EmployeeID      *string `json:"employee_id,omitempty"`
	Date            *string `json:"date,omitempty"`
	OldTime         *string `json:"old_time,omitempty"`
	NewTime         *string `json:"new_time,omitempty"`
	ActorName       string  `json:"actor_name"`
	CompanyID       string  `json:"company_id"`
}

func (r *HookRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CompanyID) {
		errs = append(errs, validator.ValidationError{Field: "company_id", Message: "company_id is required"})
	}
	if validator.IsEmpty(r.ActorName) {
		errs = append(errs, validator.ValidationError{Field: "actor_name", Message: "actor_name is required"})
	}

	hasLog := r.AttendanceLogID != nil && !validator.IsEmpty(*r.AttendanceLogID)
	hasNaturalKey := r.EmployeeID != nil && !validator.IsEmpty(*r.EmployeeID) && r.Date != nil

	switch r.Action {
	case ActionEditCheckIn:
		if !hasLog {
			errs = append(errs, validator.ValidationError{Field: "attendance_log_id", Message: "attendance_log_id is required"})
		}
		if r.NewTime == nil {
			errs = append(errs, validator.ValidationError{Field: "new_time", Message: "new_time is required"})
		}
	case ActionMarkAbsent:
		if !hasLog && !hasNaturalKey {
			errs = append(errs, validator.ValidationError{Field: "attendance_log_id", Message: "attendance_log_id or employee_id and date are required"})
		}
	case ActionUnmarkAbsent, ActionEditCheckOut, ActionApproveOvertime:
		if !hasLog {
			errs = append(errs, validator.ValidationError{Field: "attendance_log_id", Message: "attendance_log_id is required"})
		}
	default:
		errs = append(errs, validator.ValidationError{Field: "action", Message: "unsupported action"})
	}

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
		}
	}
	if r.OldTime != nil {
		if _, ok := validator.IsValidDateTime(*r.OldTime); !ok {
			errs = append(errs, validator.ValidationError{Field: "old_time", Message: "old_time must be an RFC3339 timestamp"})
		}
	}
	if r.NewTime != nil {
		if _, ok := validator.IsValidDateTime(*r.NewTime); !ok {
			errs = append(errs, validator.ValidationError{Field: "new_time", Message: "new_time must be an RFC3339 timestamp"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== ADMIN DTOs ==========

type EditTimeRequest struct {
	Time *string `json:"time"`
}

func (r *EditTimeRequest) Validate(required bool) error {
	var errs validator.ValidationErrors

	if r.Time == nil {
		if required {
			errs = append(errs, validator.ValidationError{Field: "time", Message: "time is required"})
		}
	} else if _, ok := validator.IsValidDateTime(*r.Time); !ok {
		errs = append(errs, validator.ValidationError{Field: "time", Message: "time must be an RFC3339 timestamp"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MarkAbsentByDateRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
}

func (r *MarkAbsentByDateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
