package checkin

import "time"

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// Request is a manager-gated check-in submitted through the bot.
type Request struct {
	ID             string
	EmployeeID     string
	CompanyID      string
	RequestedTime  time.Time
	Status         RequestStatus
	ReviewedBy     *string
	ReviewedAt     *time.Time
	ApprovedTime   *time.Time
	AttendanceID   *string
	RejectedReason *string
	CreatedAt      time.Time
}

type ReviewAction string

const (
	ReviewApprove ReviewAction = "approve"
	ReviewReject  ReviewAction = "reject"
	ReviewModify  ReviewAction = "modify"
)
