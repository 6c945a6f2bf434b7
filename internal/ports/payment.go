package ports

import "context"

// PayoutGateway is the third-party payment API the core depends on:
// charges for paid bookings, transfers for affiliate payouts.
type PayoutGateway interface {
	CreateCharge(ctx context.Context, customerRef string, amount float64) (string, error)
	Transfer(ctx context.Context, paymentKey string, amount float64) (string, error)
}
