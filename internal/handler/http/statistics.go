package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hadir-hr/hadir-backend-go/internal/domain/statistics"
	"github.com/hadir-hr/hadir-backend-go/internal/domain/user"
	"github.com/hadir-hr/hadir-backend-go/internal/handler/http/response"
)

type StatisticsHandler interface {
	GetEmployeeStatistics(w http.ResponseWriter, r *http.Request)
}

type statisticsHandlerImpl struct {
	statisticsService statistics.StatisticsService
}

func NewStatisticsHandler(statisticsService statistics.StatisticsService) StatisticsHandler {
	return &statisticsHandlerImpl{statisticsService: statisticsService}
}

// GetEmployeeStatistics implements StatisticsHandler.
// Employees may only read their own statistics.
func (h *statisticsHandlerImpl) GetEmployeeStatistics(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	employeeID := chi.URLParam(r, "id")
	if !p.CanViewEmployee(employeeID) {
		response.HandleError(w, user.ErrForbiddenEmployee)
		return
	}

	summary, err := h.statisticsService.GetEmployeeStatistics(r.Context(), statistics.GetStatisticsRequest{
		EmployeeID: employeeID,
		CompanyID:  p.CompanyID,
		Period:     statistics.Period(r.URL.Query().Get("period")),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
