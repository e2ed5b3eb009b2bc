package policy

import (
	"context"
	"errors"
)

var ErrPolicyNotFound = errors.New("attendance policy not found")

// PolicyRepository reads company policies. The engine never writes them.
type PolicyRepository interface {
	// GetByCompanyID returns ErrPolicyNotFound when the company has no policy row
	GetByCompanyID(ctx context.Context, companyID string) (Policy, error)
}
