package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hadir-hr/hadir-backend-go/internal/domain/checkin"
	"github.com/hadir-hr/hadir-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type checkinRequestRepository struct {
	db *database.DB
}

func NewCheckinRequestRepository(db *database.DB) checkin.RequestRepository {
	return &checkinRequestRepository{db: db}
}

// GetByID implements checkin.RequestRepository. Inside a transaction the row
// stays locked until commit, so concurrent reviews of one request serialize.
func (r *checkinRequestRepository) GetByID(ctx context.Context, id string, companyID string) (checkin.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, company_id, requested_time, status, reviewed_by, reviewed_at,
			approved_time, attendance_id, rejected_reason, created_at
		FROM checkin_requests
		WHERE id = $1 AND company_id = $2
		FOR UPDATE
	`

	var req checkin.Request
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&req.ID, &req.EmployeeID, &req.CompanyID, &req.RequestedTime, &req.Status, &req.ReviewedBy, &req.ReviewedAt,
		&req.ApprovedTime, &req.AttendanceID, &req.RejectedReason, &req.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return checkin.Request{}, checkin.ErrRequestNotFound
		}
		return checkin.Request{}, fmt.Errorf("failed to get check-in request: %w", err)
	}
	return req, nil
}

// MarkReviewed implements checkin.RequestRepository.
func (r *checkinRequestRepository) MarkReviewed(ctx context.Context, req checkin.Request) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE checkin_requests
		SET status = $1, reviewed_by = $2, reviewed_at = $3, approved_time = $4,
			attendance_id = $5, rejected_reason = $6
		WHERE id = $7 AND company_id = $8 AND status = 'pending'
	`

	tag, err := q.Exec(ctx, query,
		req.Status,
		req.ReviewedBy,
		req.ReviewedAt,
		req.ApprovedTime,
		req.AttendanceID,
		req.RejectedReason,
		req.ID,
		req.CompanyID,
	)
	if err != nil {
		return fmt.Errorf("failed to mark check-in request reviewed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return checkin.ErrRequestAlreadyProcessed
	}
	return nil
}
