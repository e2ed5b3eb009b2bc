package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hadir-hr/hadir-backend-go/internal/domain/payroll"
	"github.com/hadir-hr/hadir-backend-go/internal/domain/user"
	"github.com/hadir-hr/hadir-backend-go/internal/handler/http/response"
	"github.com/hadir-hr/hadir-backend-go/internal/pkg/jwt"
	"github.com/hadir-hr/hadir-backend-go/internal/pkg/validator"
)

// AttendanceHandler exposes the manager-side attendance corrections.
type AttendanceHandler interface {
	EditCheckIn(w http.ResponseWriter, r *http.Request)
	EditCheckOut(w http.ResponseWriter, r *http.Request)
	MarkAbsent(w http.ResponseWriter, r *http.Request)
	MarkAbsentByDate(w http.ResponseWriter, r *http.Request)
	UnmarkAbsent(w http.ResponseWriter, r *http.Request)
	ApproveOvertime(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	engine payroll.AdjustmentEngine
}

func NewAttendanceHandler(engine payroll.AdjustmentEngine) AttendanceHandler {
	return &attendanceHandlerImpl{engine: engine}
}

// EditCheckIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) EditCheckIn(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	var req payroll.EditTimeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := req.Validate(true); err != nil {
		response.HandleError(w, err)
		return
	}

	outcome, err := h.engine.OnRecalculateEdit(r.Context(), payroll.EditCheckInRequest{
		AttendanceID:   chi.URLParam(r, "id"),
		CompanyID:      p.CompanyID,
		NewCheckInTime: *parseTime(req.Time),
		EditorName:     p.Name,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Check-in updated", outcome)
}

// EditCheckOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) EditCheckOut(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	var req payroll.EditTimeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := req.Validate(false); err != nil {
		response.HandleError(w, err)
		return
	}

	outcome, err := h.engine.OnCheckoutEdited(r.Context(), payroll.EditCheckOutRequest{
		AttendanceID:    chi.URLParam(r, "id"),
		CompanyID:       p.CompanyID,
		NewCheckOutTime: parseTime(req.Time),
		EditorName:      p.Name,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Check-out updated", outcome)
}

// MarkAbsent implements AttendanceHandler.
func (h *attendanceHandlerImpl) MarkAbsent(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	outcome, err := h.engine.OnMarkAbsent(r.Context(), payroll.MarkAbsentRequest{
		AttendanceID: &id,
		CompanyID:    p.CompanyID,
		ActorName:    p.Name,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Marked absent", outcome)
}

// MarkAbsentByDate implements AttendanceHandler.
func (h *attendanceHandlerImpl) MarkAbsentByDate(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	var req payroll.MarkAbsentByDateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	date, _ := validator.IsValidDate(req.Date)
	outcome, err := h.engine.OnMarkAbsent(r.Context(), payroll.MarkAbsentRequest{
		EmployeeID: req.EmployeeID,
		CompanyID:  p.CompanyID,
		Date:       date,
		ActorName:  p.Name,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if outcome.RecordCreated {
		response.Created(w, "Marked absent", outcome)
		return
	}
	response.SuccessWithMessage(w, "Marked absent", outcome)
}

// UnmarkAbsent implements AttendanceHandler.
func (h *attendanceHandlerImpl) UnmarkAbsent(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	outcome, err := h.engine.OnUnmarkAbsent(r.Context(), payroll.UnmarkAbsentRequest{
		AttendanceID: chi.URLParam(r, "id"),
		CompanyID:    p.CompanyID,
		ActorName:    p.Name,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Absence removed", outcome)
}

// ApproveOvertime implements AttendanceHandler.
func (h *attendanceHandlerImpl) ApproveOvertime(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	outcome, err := h.engine.ApproveOvertime(r.Context(), payroll.ApproveOvertimeRequest{
		AttendanceID: chi.URLParam(r, "id"),
		CompanyID:    p.CompanyID,
		ApproverName: p.Name,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime approved", outcome)
}

// principal writes 401 and returns false when the token carries no usable caller.
func principal(w http.ResponseWriter, r *http.Request) (user.Principal, bool) {
	p, err := jwt.PrincipalFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, "Failed to extract claims from context")
		return user.Principal{}, false
	}
	if p.CompanyID == "" {
		response.Unauthorized(w, "company_id claim is missing or invalid")
		return user.Principal{}, false
	}
	return p, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		response.BadRequest(w, "Invalid request body", nil)
		return false
	}
	return true
}
