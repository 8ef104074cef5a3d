package payments

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/okapi-fin/okapi/internal/notification"
)

type testNotifier struct {
	last notification.Message
}

func (n *testNotifier) Send(_ context.Context, msg notification.Message) error {
	n.last = msg
	return nil
}

func TestSendMoneyNotifiesRecipient(t *testing.T) {
	notifier := &testNotifier{}
	svc := NewService(notifier)
	ctx := context.Background()

	recipient := uuid.NewString()
	if err := svc.SendMoney(ctx, uuid.NewString(), recipient, decimal.NewFromInt(100)); err != nil {
		t.Fatalf("send money: %v", err)
	}
	if notifier.last.Kind != notification.KindMoneySent {
		t.Fatalf("expected money_sent notification, got %+v", notifier.last)
	}
	if notifier.last.Destination != recipient {
		t.Fatalf("notification must target the recipient")
	}
}

func TestStubsSucceedWithoutNotifier(t *testing.T) {
	svc := NewService(nil)
	ctx := context.Background()

	if err := svc.SendMoney(ctx, "a", "b", decimal.NewFromInt(1)); err != nil {
		t.Fatalf("send money: %v", err)
	}
	if err := svc.RequestMoney(ctx, "a", "b", decimal.NewFromInt(1)); err != nil {
		t.Fatalf("request money: %v", err)
	}
	if err := svc.PayBill(ctx, "a", "bill-1", decimal.NewFromInt(1)); err != nil {
		t.Fatalf("pay bill: %v", err)
	}
}
