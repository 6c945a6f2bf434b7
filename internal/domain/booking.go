package domain

import (
	"time"
)

// BookingStatus represents the status of a facility booking
type BookingStatus string

const (
	BookingStatusPending       BookingStatus = "pending"
	BookingStatusUnderAnalysis BookingStatus = "under_analysis" // proof of payment attached
	BookingStatusApproved      BookingStatus = "approved"
	BookingStatusRejected      BookingStatus = "rejected"
	BookingStatusCancelled     BookingStatus = "cancelled"
	BookingStatusExpired       BookingStatus = "expired" // no payment proof within the grace window
)

// Booking reserves a facility for a time range on a given date.
// StartMinute and EndMinute are minutes since midnight; the range is
// half-open [start,end).
type Booking struct {
	ID          string        `json:"id" gorm:"primaryKey"`
	TenantID    string        `json:"tenant_id" gorm:"index"`
	FacilityID  string        `json:"facility_id" gorm:"index"`
	RequesterID string        `json:"requester_id" gorm:"index"`
	Date        time.Time     `json:"date" gorm:"index"`
	StartMinute int           `json:"start_minute"`
	EndMinute   int           `json:"end_minute"`
	Price       float64       `json:"price"`
	Status      BookingStatus `json:"status" gorm:"index"`
	ChargeID    string        `json:"charge_id,omitempty"`
	ReceiptURL  string        `json:"receipt_url,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`

	// Relations (for JSON responses)
	Facility *Facility `json:"facility,omitempty" gorm:"foreignKey:FacilityID"`
}

// IsTerminal reports whether the booking can no longer hold its slot.
func (b *Booking) IsTerminal() bool {
	switch b.Status {
	case BookingStatusCancelled, BookingStatusRejected, BookingStatusExpired:
		return true
	}
	return false
}

// Overlaps reports whether the half-open ranges intersect.
func (b *Booking) Overlaps(start, end int) bool {
	return start < b.EndMinute && end > b.StartMinute
}

// BookingConfig holds booking lifecycle configuration
type BookingConfig struct {
	// GraceWindow is how long a PENDING booking may wait for payment proof
	GraceWindow time.Duration `json:"grace_window"`

	// SweepInterval is how often the expiry sweep runs
	SweepInterval time.Duration `json:"sweep_interval"`

	// Location is the business timezone used to decide which calendar
	// day "today" is. Defaults to UTC.
	Location *time.Location `json:"-"`
}

// DefaultBookingConfig returns sensible defaults
func DefaultBookingConfig() *BookingConfig {
	return &BookingConfig{
		GraceWindow:   30 * time.Minute,
		SweepInterval: time.Minute,
		Location:      time.UTC,
	}
}
