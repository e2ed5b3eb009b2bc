package notification

import "errors"

var (
	ErrQueueFull      = errors.New("notification queue is full")
	ErrServiceStopped = errors.New("notification service is stopped")
	ErrNoRecipient    = errors.New("employee has no telegram chat linked")
)
