package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"globetrotter/pkg/utils"
)

type PaymentMethod string

const (
	MethodCard       PaymentMethod = "card"
	MethodUPI        PaymentMethod = "upi"
	MethodNetBanking PaymentMethod = "netbanking"
	MethodWallet     PaymentMethod = "wallet"
)

type PaymentRequest struct {
	Amount      int64
	Currency    string
	Method      PaymentMethod
	Description string
}

type PaymentResult struct {
	Reference string
	Provider  string
	PaidAt    int64
}

type PaymentService interface {
	Charge(ctx context.Context, req PaymentRequest) (*PaymentResult, error)
}

// simulatedPaymentService approves every well-formed charge. References look
// like pay_<unix millis>_<9 base-36 chars>.
type simulatedPaymentService struct {
	logger *zap.Logger
	now    func() time.Time
}

const simulatedProvider = "simulated"

func NewSimulatedPaymentService(logger *zap.Logger) PaymentService {
	return &simulatedPaymentService{logger: logger, now: time.Now}
}

func (p *simulatedPaymentService) Charge(ctx context.Context, req PaymentRequest) (*PaymentResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", utils.ErrPaymentFailed, err)
	}
	if req.Amount < 0 {
		return nil, fmt.Errorf("%w: negative amount %d", utils.ErrPaymentFailed, req.Amount)
	}
	switch req.Method {
	case "", MethodCard, MethodUPI, MethodNetBanking, MethodWallet:
	default:
		return nil, fmt.Errorf("%w: unsupported payment method %q", utils.ErrPaymentFailed, req.Method)
	}

	suffix, err := utils.GenerateConfirmationCode(utils.ConfirmationCodeLength)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", utils.ErrPaymentFailed, err)
	}

	now := p.now()
	ref := fmt.Sprintf("pay_%d_%s", now.UnixMilli(), strings.ToLower(suffix))

	p.logger.Info("payment captured",
		zap.String("reference", ref),
		zap.Int64("amount", req.Amount),
		zap.String("currency", req.Currency),
		zap.String("method", string(req.Method)),
	)

	return &PaymentResult{Reference: ref, Provider: simulatedProvider, PaidAt: now.Unix()}, nil
}
