package user

import "errors"

var (
	ErrInvalidToken          = errors.New("invalid or missing access token")
	ErrManagerAccessRequired = errors.New("manager access required")
	ErrCompanyIDRequired     = errors.New("company ID is required")
	ErrForbiddenEmployee     = errors.New("not allowed to access this employee")
	ErrInvalidWebhookSecret  = errors.New("invalid webhook secret")
)
