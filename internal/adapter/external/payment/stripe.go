package payment

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"github.com/stripe/stripe-go/v76/transfer"

	"github.com/seu-repo/condomino/internal/ports"
)

type StripeGateway struct {
	apiKey string
	log    *zap.Logger
}

func NewStripeGateway(apiKey string, log *zap.Logger) ports.PayoutGateway {
	stripe.Key = apiKey
	return &StripeGateway{
		apiKey: apiKey,
		log:    log,
	}
}

// CreateCharge opens a payment intent for a paid facility booking and
// returns its id. The resident completes the payment out of band and
// proves it by attaching a receipt.
func (s *StripeGateway) CreateCharge(ctx context.Context, customerRef string, amount float64) (string, error) {
	if amount <= 0 {
		return "", errors.New("invalid amount")
	}

	s.log.Info("Creating charge",
		zap.Float64("amount", amount),
		zap.String("customer_ref", customerRef),
	)

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(amount * 100)),
		Currency: stripe.String(string(stripe.CurrencyBRL)),
	}
	if customerRef != "" {
		params.AddMetadata("customer_ref", customerRef)
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		s.log.Error("Failed to create charge", zap.Error(err))
		return "", fmt.Errorf("stripe: create payment intent: %w", err)
	}

	s.log.Info("Charge created",
		zap.String("payment_intent_id", pi.ID),
		zap.String("status", string(pi.Status)),
	)

	return pi.ID, nil
}

// Transfer moves an affiliate's settled balance to their payout account.
func (s *StripeGateway) Transfer(ctx context.Context, paymentKey string, amount float64) (string, error) {
	if paymentKey == "" {
		return "", errors.New("payment key is required")
	}
	if amount <= 0 {
		return "", errors.New("invalid amount")
	}

	s.log.Info("Creating transfer",
		zap.Float64("amount", amount),
		zap.String("payment_key", paymentKey),
	)

	params := &stripe.TransferParams{
		Amount:      stripe.Int64(int64(amount * 100)),
		Currency:    stripe.String(string(stripe.CurrencyBRL)),
		Destination: stripe.String(paymentKey),
	}
	params.Context = ctx

	t, err := transfer.New(params)
	if err != nil {
		s.log.Error("Failed to create transfer",
			zap.String("payment_key", paymentKey),
			zap.Error(err),
		)
		return "", fmt.Errorf("stripe: create transfer: %w", err)
	}

	s.log.Info("Transfer created", zap.String("transfer_id", t.ID))

	return t.ID, nil
}
