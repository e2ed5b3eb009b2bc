package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hadir-hr/hadir-backend-go/internal/domain/checkin"
	"github.com/hadir-hr/hadir-backend-go/internal/handler/http/response"
)

type CheckinHandler interface {
	Review(w http.ResponseWriter, r *http.Request)
}

type checkinHandlerImpl struct {
	reviewService checkin.ReviewService
}

func NewCheckinHandler(reviewService checkin.ReviewService) CheckinHandler {
	return &checkinHandlerImpl{reviewService: reviewService}
}

// Review implements CheckinHandler.
func (h *checkinHandlerImpl) Review(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	var req checkin.ReviewRequest
	if !decodeBody(w, r, &req) {
		return
	}
	req.RequestID = chi.URLParam(r, "id")
	req.CompanyID = p.CompanyID
	req.ReviewerID = p.UserID
	req.Reviewer = p.Name

	resp, err := h.reviewService.Review(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Check-in request "+string(resp.Status), resp)
}
