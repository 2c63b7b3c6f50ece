package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"

	"globetrotter/pkg/utils"
)

const stripeProvider = "stripe"

// zeroDecimalCurrencies are charged in whole units by Stripe.
var zeroDecimalCurrencies = map[string]bool{
	"BIF": true, "CLP": true, "DJF": true, "GNF": true, "JPY": true, "KMF": true,
	"KRW": true, "MGA": true, "PYG": true, "RWF": true, "UGX": true, "VND": true,
	"VUV": true, "XAF": true, "XOF": true, "XPF": true,
}

// minorUnits converts a whole-unit amount to the smallest currency unit.
func minorUnits(amount int64, currency string) int64 {
	if zeroDecimalCurrencies[strings.ToUpper(currency)] {
		return amount
	}
	return amount * 100
}

type StripeConfig struct {
	SecretKey string
	// PaymentMethod is confirmed server side, e.g. pm_card_visa in test mode.
	PaymentMethod string
}

type stripePaymentService struct {
	client paymentintent.Client
	method string
	logger *zap.Logger
}

func NewStripePaymentService(cfg StripeConfig, logger *zap.Logger) PaymentService {
	return &stripePaymentService{
		client: paymentintent.Client{B: stripe.GetBackend(stripe.APIBackend), Key: cfg.SecretKey},
		method: cfg.PaymentMethod,
		logger: logger,
	}
}

func (p *stripePaymentService) Charge(ctx context.Context, req PaymentRequest) (*PaymentResult, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive, got %d", utils.ErrPaymentFailed, req.Amount)
	}
	if req.Method != "" && req.Method != MethodCard {
		return nil, fmt.Errorf("%w: stripe only accepts card payments", utils.ErrPaymentFailed)
	}

	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(minorUnits(req.Amount, req.Currency)),
		Currency:      stripe.String(strings.ToLower(req.Currency)),
		Description:   stripe.String(req.Description),
		PaymentMethod: stripe.String(p.method),
		Confirm:       stripe.Bool(true),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String("never"),
		},
	}
	params.Context = ctx
	params.SetIdempotencyKey(uuid.NewString())

	intent, err := p.client.New(params)
	if err != nil {
		p.logger.Error("stripe charge failed", zap.Int64("amount", req.Amount), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", utils.ErrPaymentFailed, err)
	}
	if intent.Status != stripe.PaymentIntentStatusSucceeded {
		p.logger.Warn("stripe charge not settled",
			zap.String("intent", intent.ID),
			zap.String("status", string(intent.Status)),
		)
		return nil, fmt.Errorf("%w: payment intent %s is %s", utils.ErrPaymentFailed, intent.ID, intent.Status)
	}

	p.logger.Info("payment captured",
		zap.String("reference", intent.ID),
		zap.Int64("amount", req.Amount),
		zap.String("currency", req.Currency),
		zap.String("provider", stripeProvider),
	)
	return &PaymentResult{Reference: intent.ID, Provider: stripeProvider, PaidAt: intent.Created}, nil
}
