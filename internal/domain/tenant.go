package domain

import (
	"time"
)

type SubscriptionStatus string

const (
	SubscriptionTrial     SubscriptionStatus = "trial"
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionPastDue   SubscriptionStatus = "past_due"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

// Tenant is a condominium organization, the unit of data isolation.
type Tenant struct {
	ID                  string             `json:"id" gorm:"primaryKey"`
	Name                string             `json:"name"`
	EnrollmentKeyword   string             `json:"-"` // secret residents use to self-enroll
	PlanID              string             `json:"plan_id"`
	Subscription        SubscriptionStatus `json:"subscription"`
	ExpiresAt           time.Time          `json:"expires_at"`
	ReferralAffiliateID *string            `json:"referral_affiliate_id,omitempty" gorm:"index"`
	CreatedAt           time.Time          `json:"created_at"`
	UpdatedAt           time.Time          `json:"updated_at"`
}

// IsActive reports whether the tenant may be operated on at the given
// instant: either the subscription has not expired yet, or the
// subscription state itself keeps it alive while renewal catches up.
func (t *Tenant) IsActive(now time.Time) bool {
	if t.Subscription == SubscriptionTrial || t.Subscription == SubscriptionActive {
		return true
	}
	return !t.ExpiresAt.Before(truncateToDay(now))
}

func truncateToDay(ts time.Time) time.Time {
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, ts.Location())
}
