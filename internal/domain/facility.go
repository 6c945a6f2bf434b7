package domain

import (
	"time"
)

// Facility is a bookable common area of a condominium. OpensAt and
// ClosesAt are minutes since midnight.
type Facility struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	TenantID  string    `json:"tenant_id" gorm:"index"`
	Name      string    `json:"name"`
	OpensAt   int       `json:"opens_at"`
	ClosesAt  int       `json:"closes_at"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WithinWindow reports whether [start,end) fits the facility's open hours.
func (f *Facility) WithinWindow(start, end int) bool {
	return start >= f.OpensAt && end <= f.ClosesAt
}
