package notification

import "github.com/hadir-hr/hadir-backend-go/internal/domain/payroll"

// Message is a rendered notification addressed to one Telegram chat.
type Message struct {
	ChatID     int64
	EmployeeID string
	Action     payroll.Action
	Text       string
}
