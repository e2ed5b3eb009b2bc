package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/hadir-hr/hadir-backend-go/internal/domain/payroll"
	"github.com/hadir-hr/hadir-backend-go/internal/handler/http/response"
	"github.com/hadir-hr/hadir-backend-go/internal/pkg/validator"
)

type HookHandler interface {
	Attendance(w http.ResponseWriter, r *http.Request)
}

type hookHandlerImpl struct {
	engine payroll.AdjustmentEngine
}

func NewHookHandler(engine payroll.AdjustmentEngine) HookHandler {
	return &hookHandlerImpl{engine: engine}
}

// Attendance implements HookHandler.
func (h *hookHandlerImpl) Attendance(w http.ResponseWriter, r *http.Request) {
	var req payroll.HookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode hook request", "error", err)
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	outcome, err := h.dispatch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, outcome)
}

// dispatch assumes req passed Validate.
func (h *hookHandlerImpl) dispatch(ctx context.Context, req payroll.HookRequest) (payroll.Outcome, error) {
	logID := ""
	if req.AttendanceLogID != nil {
		logID = *req.AttendanceLogID
	}

	switch req.Action {
	case payroll.ActionEditCheckIn:
		newTime := parseTime(req.NewTime)
		return h.engine.OnRecalculateEdit(ctx, payroll.EditCheckInRequest{
			AttendanceID:   logID,
			CompanyID:      req.CompanyID,
			OldCheckInTime: parseTime(req.OldTime),
			NewCheckInTime: *newTime,
			EditorName:     req.ActorName,
		})

	case payroll.ActionMarkAbsent:
		markReq := payroll.MarkAbsentRequest{
			CompanyID: req.CompanyID,
			ActorName: req.ActorName,
		}
		if logID != "" {
			markReq.AttendanceID = &logID
		} else {
			markReq.EmployeeID = *req.EmployeeID
			markReq.Date, _ = validator.IsValidDate(*req.Date)
		}
		return h.engine.OnMarkAbsent(ctx, markReq)

	case payroll.ActionUnmarkAbsent:
		return h.engine.OnUnmarkAbsent(ctx, payroll.UnmarkAbsentRequest{
			AttendanceID: logID,
			CompanyID:    req.CompanyID,
			ActorName:    req.ActorName,
		})

	case payroll.ActionEditCheckOut:
		return h.engine.OnCheckoutEdited(ctx, payroll.EditCheckOutRequest{
			AttendanceID:    logID,
			CompanyID:       req.CompanyID,
			NewCheckOutTime: parseTime(req.NewTime),
			EditorName:      req.ActorName,
		})

	case payroll.ActionApproveOvertime:
		return h.engine.ApproveOvertime(ctx, payroll.ApproveOvertimeRequest{
			AttendanceID: logID,
			CompanyID:    req.CompanyID,
			ApproverName: req.ActorName,
		})
	}
	return payroll.Outcome{}, payroll.ErrUnsupportedAction
}

// parseTime returns nil for a nil or malformed timestamp.
func parseTime(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, ok := validator.IsValidDateTime(*s)
	if !ok {
		return nil
	}
	return &t
}
