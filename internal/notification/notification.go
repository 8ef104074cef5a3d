package notification

import (
	"context"
	"log/slog"
)

const (
	// KindOnboarding is the welcome-back SMS nudging a user to finish onboarding.
	KindOnboarding = "onboarding"
	// KindMoneySent signals a completed outgoing transfer.
	KindMoneySent = "money_sent"
	// KindMoneyRequested signals an incoming money request.
	KindMoneyRequested = "money_requested"
)

// Message describes a notification payload.
type Message struct {
	Kind        string
	Destination string
	Body        string
}

// Notifier delivers notifications to downstream systems. Delivery is
// fire-and-forget: callers ignore the error on non-critical paths.
type Notifier interface {
	Send(ctx context.Context, message Message) error
}

// LoggerNotifier is a stub implementation that writes notifications to the
// logger in place of a real SMS gateway.
type LoggerNotifier struct {
	logger *slog.Logger
}

// NewLoggerNotifier constructs a logging notifier stub.
func NewLoggerNotifier(logger *slog.Logger) *LoggerNotifier {
	return &LoggerNotifier{logger: logger}
}

// Send writes the message to the structured logger.
func (n *LoggerNotifier) Send(_ context.Context, message Message) error {
	if n == nil || n.logger == nil {
		return nil
	}
	n.logger.Info("notification", "kind", message.Kind, "destination", message.Destination, "body", message.Body)
	return nil
}
