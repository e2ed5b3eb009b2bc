package checkin

import "context"

type ReviewService interface {
	// Review approves, modifies or rejects a pending check-in request
	Review(ctx context.Context, req ReviewRequest) (ReviewResponse, error)
}
