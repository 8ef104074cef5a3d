package payments

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/okapi-fin/okapi/internal/notification"
)

// Service holds the money-movement operations. These are placeholders: no
// ledger posting happens yet, every call reports success and emits the
// notification the eventual implementation would send.
type Service struct {
	notifier notification.Notifier
}

// NewService constructs a payment service stub.
func NewService(notifier notification.Notifier) *Service {
	return &Service{notifier: notifier}
}

// SendMoney pretends to move funds from the user to the recipient.
func (s *Service) SendMoney(ctx context.Context, userID, recipientID string, amount decimal.Decimal) error {
	s.notify(ctx, notification.KindMoneySent, recipientID,
		fmt.Sprintf("You received %s from user %s", amount.String(), userID))
	return nil
}

// RequestMoney pretends to record a money request against another user.
func (s *Service) RequestMoney(ctx context.Context, userID, requesterID string, amount decimal.Decimal) error {
	s.notify(ctx, notification.KindMoneyRequested, userID,
		fmt.Sprintf("User %s requested %s from you", requesterID, amount.String()))
	return nil
}

// PayBill pretends to settle a bill on the user's behalf.
func (s *Service) PayBill(_ context.Context, _, _ string, _ decimal.Decimal) error {
	return nil
}

func (s *Service) notify(ctx context.Context, kind, destination, body string) {
	if s.notifier == nil {
		return
	}
	_ = s.notifier.Send(ctx, notification.Message{Kind: kind, Destination: destination, Body: body})
}
