package checkin

import "errors"

var (
	ErrRequestNotFound         = errors.New("check-in request not found")
	ErrRequestAlreadyProcessed = errors.New("check-in request is no longer pending")
)
