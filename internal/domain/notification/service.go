package notification

import (
	"context"

	"github.com/hadir-hr/hadir-backend-go/internal/domain/payroll"
)

// Service renders engine outcomes and delivers them in the background.
// Delivery is best-effort; nothing here may fail the operation that produced the outcome.
type Service interface {
	// QueueOutcome enqueues the employee message for outcome without blocking
	QueueOutcome(ctx context.Context, outcome payroll.Outcome) error

	// Stop drains the queue and waits for workers to exit
	Stop()
}

// Sender delivers one message to a chat.
type Sender interface {
	Send(ctx context.Context, chatID int64, text string) error
}
