// Package circuitbreaker shields the payout gateway behind a circuit
// breaker so a degraded payment provider cannot stall the settlement
// sweep or the booking flow.
package circuitbreaker

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/seu-repo/condomino/internal/ports"
)

// ErrGatewayUnavailable is returned while the circuit is open.
var ErrGatewayUnavailable = errors.New("payment gateway unavailable")

// PayoutGateway decorates a ports.PayoutGateway with gobreaker. Charges
// and transfers share one breaker: the failure mode they guard against
// is the provider being down, not a single operation misbehaving.
type PayoutGateway struct {
	inner ports.PayoutGateway
	cb    *gobreaker.CircuitBreaker
	log   *zap.Logger
}

func NewPayoutGateway(inner ports.PayoutGateway, log *zap.Logger) *PayoutGateway {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "payout-gateway",
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Warn("Circuit breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	return &PayoutGateway{
		inner: inner,
		cb:    cb,
		log:   log,
	}
}

func (g *PayoutGateway) CreateCharge(ctx context.Context, customerRef string, amount float64) (string, error) {
	result, err := g.cb.Execute(func() (interface{}, error) {
		return g.inner.CreateCharge(ctx, customerRef, amount)
	})
	if err != nil {
		return "", g.translate(err)
	}
	return result.(string), nil
}

func (g *PayoutGateway) Transfer(ctx context.Context, paymentKey string, amount float64) (string, error) {
	result, err := g.cb.Execute(func() (interface{}, error) {
		return g.inner.Transfer(ctx, paymentKey, amount)
	})
	if err != nil {
		return "", g.translate(err)
	}
	return result.(string), nil
}

func (g *PayoutGateway) translate(err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return ErrGatewayUnavailable
	}
	return err
}
