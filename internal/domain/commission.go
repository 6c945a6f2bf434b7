package domain

import (
	"fmt"
	"time"
)

// CommissionStatus represents the status of an affiliate commission
type CommissionStatus string

const (
	CommissionStatusBlocked   CommissionStatus = "blocked"
	CommissionStatusAvailable CommissionStatus = "available"
	CommissionStatusPaid      CommissionStatus = "paid"
	CommissionStatusCancelled CommissionStatus = "cancelled"
)

// Commission is a single referral earning. Status only ever moves
// forward: BLOCKED -> AVAILABLE -> PAID, or to CANCELLED from any
// non-PAID state.
type Commission struct {
	ID          string           `json:"id" gorm:"primaryKey"`
	AffiliateID string           `json:"affiliate_id" gorm:"index"`
	TenantID    string           `json:"tenant_id" gorm:"index"` // paying tenant
	Amount      float64          `json:"amount"`
	SaleDate    time.Time        `json:"sale_date"`
	ReleaseDate time.Time        `json:"release_date" gorm:"index"`
	Status      CommissionStatus `json:"status" gorm:"index"`
	TransferID  string           `json:"transfer_id,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// TransitionTo enforces the forward-only state machine.
func (c *Commission) TransitionTo(next CommissionStatus) error {
	allowed := map[CommissionStatus][]CommissionStatus{
		CommissionStatusBlocked:   {CommissionStatusAvailable, CommissionStatusCancelled},
		CommissionStatusAvailable: {CommissionStatusPaid, CommissionStatusCancelled},
	}
	for _, s := range allowed[c.Status] {
		if s == next {
			c.Status = next
			return nil
		}
	}
	return fmt.Errorf("commission %s: illegal transition %s -> %s", c.ID, c.Status, next)
}

// AffiliateProfile holds the referral code and the payment key payouts
// are transferred to.
type AffiliateProfile struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	UserID       string    `json:"user_id" gorm:"uniqueIndex"`
	ReferralCode string    `json:"referral_code" gorm:"uniqueIndex"`
	PaymentKey   string    `json:"payment_key"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AffiliateConfig holds commission lifecycle configuration
type AffiliateConfig struct {
	// CommissionRate is the affiliate's share of a confirmed payment
	CommissionRate float64 `json:"commission_rate"`

	// MaturationDays is the hold before a commission becomes payable
	MaturationDays int `json:"maturation_days"`

	// MinPayout is the minimum available balance that triggers a transfer
	MinPayout float64 `json:"min_payout"`
}

// DefaultAffiliateConfig returns sensible defaults
func DefaultAffiliateConfig() *AffiliateConfig {
	return &AffiliateConfig{
		CommissionRate: 0.10,
		MaturationDays: 30,
		MinPayout:      30.00,
	}
}
