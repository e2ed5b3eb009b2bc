package checkin

import "context"

type RequestRepository interface {
	GetByID(ctx context.Context, id string, companyID string) (Request, error)

	// MarkReviewed moves a pending request to its final status.
	// Returns ErrRequestAlreadyProcessed when the request was not pending anymore.
	MarkReviewed(ctx context.Context, req Request) error
}
