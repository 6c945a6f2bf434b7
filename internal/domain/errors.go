package domain

import "errors"

// Request-path errors are returned to the caller as structured failures.
// Auth failures stay generic to avoid account enumeration.
var (
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrInvalidProfileSelection = errors.New("selected profile is not a valid candidate")
	ErrInvalidTwoFactorCode    = errors.New("invalid two-factor code")

	ErrPastDate          = errors.New("booking date is in the past")
	ErrInvalidTimeRange  = errors.New("time range is outside the facility window or inverted")
	ErrSlotConflict      = errors.New("an active booking already holds an overlapping slot")
	ErrPaymentInitiation = errors.New("payment charge could not be created")

	ErrMissingTenantContext = errors.New("tenant scope missing from context")
	ErrNotFound             = errors.New("record not found")
	ErrForbidden            = errors.New("operation not allowed for this user")
)
