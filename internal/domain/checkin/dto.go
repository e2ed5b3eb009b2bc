package checkin

import (
	"github.com/hadir-hr/hadir-backend-go/internal/domain/payroll"
	"github.com/hadir-hr/hadir-backend-go/internal/pkg/validator"
)

type ReviewRequest struct {
	RequestID  string       `json:"-"`
	CompanyID  string       `json:"-"`
	ReviewerID string       `json:"-"`
	Reviewer   string       `json:"-"`
	Action     ReviewAction `json:"action"`
	NewTime    *string      `json:"new_time,omitempty"`
	Reason     *string      `json:"reason,omitempty"`
}

func (r *ReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RequestID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "request id is required"})
	}

	switch r.Action {
	case ReviewApprove, ReviewReject:
	case ReviewModify:
		if r.NewTime == nil {
			errs = append(errs, validator.ValidationError{Field: "new_time", Message: "new_time is required when modifying"})
		} else if _, ok := validator.IsValidDateTime(*r.NewTime); !ok {
			errs = append(errs, validator.ValidationError{Field: "new_time", Message: "new_time must be an RFC3339 timestamp"})
		}
	default:
		errs = append(errs, validator.ValidationError{Field: "action", Message: "action must be approve, reject or modify"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReviewResponse struct {
	RequestID string        `json:"request_id"`
	Status    RequestStatus `json:"status"`
	// Outcome is set for approve and modify
	Outcome *payroll.Outcome `json:"outcome,omitempty"`
}
