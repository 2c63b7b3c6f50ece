package services

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"go.uber.org/zap"

	"globetrotter/pkg/utils"
)

func TestSimulatedPaymentReference(t *testing.T) {
	svc := &simulatedPaymentService{
		logger: zap.NewNop(),
		now:    func() time.Time { return time.UnixMilli(1761000000123) },
	}
	res, err := svc.Charge(context.Background(), PaymentRequest{Amount: 500, Currency: "USD", Method: MethodUPI})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !regexp.MustCompile(`^pay_1761000000123_[0-9a-z]{9}$`).MatchString(res.Reference) {
		t.Fatalf("reference = %q", res.Reference)
	}
	if res.Provider != "simulated" || res.PaidAt != 1761000000 {
		t.Fatalf("result = %+v", res)
	}
}

func TestSimulatedPaymentRejects(t *testing.T) {
	svc := NewSimulatedPaymentService(zap.NewNop())

	if _, err := svc.Charge(context.Background(), PaymentRequest{Amount: -1}); !errors.Is(err, utils.ErrPaymentFailed) {
		t.Fatalf("negative amount: err = %v", err)
	}
	if _, err := svc.Charge(context.Background(), PaymentRequest{Amount: 1, Method: "cheque"}); !errors.Is(err, utils.ErrPaymentFailed) {
		t.Fatalf("unknown method: err = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := svc.Charge(ctx, PaymentRequest{Amount: 1}); !errors.Is(err, context.Canceled) {
		t.Fatalf("cancelled context: err = %v", err)
	}
}

func TestStripeRejectsBeforeCallingAPI(t *testing.T) {
	svc := NewStripePaymentService(StripeConfig{SecretKey: "sk_test_unused", PaymentMethod: "pm_card_visa"}, zap.NewNop())

	if _, err := svc.Charge(context.Background(), PaymentRequest{Amount: 0, Currency: "USD"}); !errors.Is(err, utils.ErrPaymentFailed) {
		t.Fatalf("zero amount: err = %v", err)
	}
	if _, err := svc.Charge(context.Background(), PaymentRequest{Amount: 10, Currency: "INR", Method: MethodUPI}); !errors.Is(err, utils.ErrPaymentFailed) {
		t.Fatalf("upi: err = %v", err)
	}
}

func TestMinorUnits(t *testing.T) {
	cases := []struct {
		amount   int64
		currency string
		want     int64
	}{
		{250, "USD", 25000},
		{250, "inr", 25000},
		{250, "JPY", 250},
		{0, "EUR", 0},
	}
	for _, c := range cases {
		if got := minorUnits(c.amount, c.currency); got != c.want {
			t.Fatalf("minorUnits(%d, %s) = %d, want %d", c.amount, c.currency, got, c.want)
		}
	}
}
