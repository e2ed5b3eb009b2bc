package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/hadir-hr/hadir-backend-go/internal/domain/adjustment"
	"github.com/hadir-hr/hadir-backend-go/internal/domain/attendance"
	"github.com/hadir-hr/hadir-backend-go/internal/domain/checkin"
	"github.com/hadir-hr/hadir-backend-go/internal/domain/employee"
	"github.com/hadir-hr/hadir-backend-go/internal/domain/payroll"
	"github.com/hadir-hr/hadir-backend-go/internal/domain/statistics"
	"github.com/hadir-hr/hadir-backend-go/internal/domain/user"
	"github.com/hadir-hr/hadir-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth errors
	case errors.Is(err, user.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing access token")
	case errors.Is(err, user.ErrInvalidWebhookSecret):
		Unauthorized(w, "Invalid webhook secret")
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, "Manager access required")
	case errors.Is(err, user.ErrForbiddenEmployee):
		Forbidden(w, "Not allowed to access this employee")
	case errors.Is(err, user.ErrCompanyIDRequired):
		Forbidden(w, "Company ID is required")

	// Not found
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, checkin.ErrRequestNotFound):
		NotFound(w, "Check-in request not found")

	// Lost a race with another writer
	case errors.Is(err, employee.ErrBalanceConflict):
		Conflict(w, "Late balance changed concurrently, please retry")
	case errors.Is(err, adjustment.ErrDuplicateAutoRow):
		Conflict(w, "Adjustment for this attendance record already exists")

	// Invalid state
	case errors.Is(err, checkin.ErrRequestAlreadyProcessed):
		BadRequest(w, "Check-in request already processed", nil)
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		BadRequest(w, "Employee has already checked in on this date", nil)
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, "Attendance record has no check-in time", nil)
	case errors.Is(err, attendance.ErrAttendanceAbsent):
		BadRequest(w, "Attendance record is marked absent", nil)
	case errors.Is(err, attendance.ErrDateMismatch):
		BadRequest(w, "Time does not fall on the attendance date", nil)
	case errors.Is(err, attendance.ErrCheckOutBeforeCheckIn):
		BadRequest(w, "Check-out time is before check-in time", nil)
	case errors.Is(err, payroll.ErrNoCheckOut):
		BadRequest(w, "Attendance record has no check-out time", nil)
	case errors.Is(err, payroll.ErrUnsupportedAction):
		BadRequest(w, "Unsupported action", nil)
	case errors.Is(err, statistics.ErrInvalidPeriod):
		BadRequest(w, "Invalid statistics period", nil)

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
