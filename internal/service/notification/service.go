package notification

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/hadir-hr/hadir-backend-go/internal/domain/notification"
	"github.com/hadir-hr/hadir-backend-go/internal/domain/payroll"
)

// Config holds notification service configuration
type Config struct {
	WorkerCount int           // default: 2
	QueueSize   int           // default: 1000
	SendTimeout time.Duration // default: 10 seconds
}

type service struct {
	sender notification.Sender
	config Config

	queue   chan notification.Message
	wg      sync.WaitGroup
	stopCh  chan struct{}
	mu      sync.RWMutex
	stopped bool
}

// NewNotificationService creates a new notification service with background workers
func NewNotificationService(sender notification.Sender, cfg Config) notification.Service {
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 2
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 1000
	}
	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = 10 * time.Second
	}

	s := &service{
		sender: sender,
		config: cfg,
		queue:  make(chan notification.Message, cfg.QueueSize),
		stopCh: make(chan struct{}),
	}

	for i := 0; i < cfg.WorkerCount; i++ {
		s.wg.Add(1)
		go s.worker(i)
	}

	slog.Info("Notification service started", "workers", cfg.WorkerCount, "queue_size", cfg.QueueSize)
	return s
}

// worker delivers queued messages until Stop, then drains what is left
func (s *service) worker(id int) {
	defer s.wg.Done()

	for {
		select {
		case msg := <-s.queue:
			s.deliver(id, msg)
		case <-s.stopCh:
			for {
				select {
				case msg := <-s.queue:
					s.deliver(id, msg)
				default:
					return
				}
			}
		}
	}
}

func (s *service) deliver(workerID int, msg notification.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.SendTimeout)
	defer cancel()

	if err := s.sender.Send(ctx, msg.ChatID, msg.Text); err != nil {
		slog.Error("Failed to deliver notification",
			"worker", workerID,
			"employee_id", msg.EmployeeID,
			"action", msg.Action,
			"error", err,
		)
		return
	}
	slog.Debug("Notification delivered", "worker", workerID, "employee_id", msg.EmployeeID, "action", msg.Action)
}

// QueueOutcome renders the outcome for its employee and queues it without blocking
func (s *service) QueueOutcome(ctx context.Context, outcome payroll.Outcome) error {
	if outcome.TelegramChatID == nil {
		return notification.ErrNoRecipient
	}
	msg := notification.Message{
		ChatID:     *outcome.TelegramChatID,
		EmployeeID: outcome.EmployeeID,
		Action:     outcome.Action,
		Text:       Render(outcome),
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.stopped {
		return notification.ErrServiceStopped
	}

	select {
	case s.queue <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return notification.ErrQueueFull
	}
}

// Stop gracefully stops the notification service
func (s *service) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	close(s.stopCh)
	s.mu.Unlock()

	s.wg.Wait()
	slog.Info("Notification service stopped")
}
