package checkin

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hadir-hr/hadir-backend-go/internal/domain/checkin"
	"github.com/hadir-hr/hadir-backend-go/internal/domain/payroll"
	"github.com/hadir-hr/hadir-backend-go/internal/pkg/validator"
	"github.com/hadir-hr/hadir-backend-go/internal/service/engine"
)

type ReviewServiceImpl struct {
	tx          engine.Transactor
	requestRepo checkin.RequestRepository
	engine      payroll.AdjustmentEngine
	now         func() time.Time
}

func NewReviewService(tx engine.Transactor, requestRepo checkin.RequestRepository, adjustmentEngine payroll.AdjustmentEngine) checkin.ReviewService {
	return &ReviewServiceImpl{
		tx:          tx,
		requestRepo: requestRepo,
		engine:      adjustmentEngine,
		now:         time.Now,
	}
}

// Review settles a pending request. Approving and the status change commit together,
// so a request is never approved twice.
func (s *ReviewServiceImpl) Review(ctx context.Context, req checkin.ReviewRequest) (checkin.ReviewResponse, error) {
	if err := req.Validate(); err != nil {
		return checkin.ReviewResponse{}, err
	}

	var resp checkin.ReviewResponse
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		request, err := s.requestRepo.GetByID(ctx, req.RequestID, req.CompanyID)
		if err != nil {
			return fmt.Errorf("failed to get check-in request: %w", err)
		}
		if request.Status != checkin.RequestStatusPending {
			return checkin.ErrRequestAlreadyProcessed
		}

		reviewedAt := s.now()
		request.ReviewedAt = &reviewedAt
		if req.ReviewerID != "" {
			request.ReviewedBy = &req.ReviewerID
		}

		if req.Action == checkin.ReviewReject {
			request.Status = checkin.RequestStatusRejected
			request.RejectedReason = req.Reason
			if err := s.requestRepo.MarkReviewed(ctx, request); err != nil {
				return fmt.Errorf("failed to reject check-in request: %w", err)
			}
			resp = checkin.ReviewResponse{RequestID: request.ID, Status: request.Status}
			return nil
		}

		checkInTime := request.RequestedTime
		if req.Action == checkin.ReviewModify {
			checkInTime, _ = validator.IsValidDateTime(*req.NewTime)
		}

		outcome, err := s.engine.OnApprove(ctx, payroll.ApproveCheckInRequest{
			EmployeeID:   request.EmployeeID,
			CompanyID:    request.CompanyID,
			CheckInTime:  checkInTime,
			ApproverName: req.Reviewer,
		})
		if err != nil {
			return err
		}

		request.Status = checkin.RequestStatusApproved
		request.ApprovedTime = &checkInTime
		request.AttendanceID = &outcome.AttendanceID
		if err := s.requestRepo.MarkReviewed(ctx, request); err != nil {
			return fmt.Errorf("failed to approve check-in request: %w", err)
		}
		resp = checkin.ReviewResponse{RequestID: request.ID, Status: request.Status, Outcome: &outcome}
		return nil
	})
	if err != nil {
		return checkin.ReviewResponse{}, err
	}

	slog.Info("Check-in request reviewed", "request_id", resp.RequestID, "status", resp.Status, "reviewer", req.Reviewer)
	return resp, nil
}
