package ports

import (
	"context"
	"time"

	"github.com/seu-repo/condomino/internal/domain"
)

// Clock supplies the current time. Sweeps and eligibility windows take
// it injected so tests can advance time.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock used outside of tests.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Identity is the immutable authenticated principal produced once per
// request by token resolution.
type Identity struct {
	UserID   string
	Role     domain.UserRole
	TenantID string // empty when the account has no tenant association
}

// AuthStatus distinguishes the three non-error outcomes of a login attempt.
type AuthStatus string

const (
	AuthStatusAuthenticated     AuthStatus = "authenticated"
	AuthStatusMultipleProfiles  AuthStatus = "multiple_profiles"
	AuthStatusTwoFactorRequired AuthStatus = "two_factor_required"
)

// LoginInput carries one login attempt. SelectedProfileID and
// TwoFactorCode are filled in on re-invocation after the corresponding
// prompt.
type LoginInput struct {
	Identifier        string // email or CPF
	Password          string
	SelectedProfileID string
	TwoFactorCode     string
	DeviceID          string
	TrustDevice       bool
	KeepLogged        bool
}

// AuthResult is the outcome of Authenticate. Token and Profile are set
// only when Status is AuthStatusAuthenticated; Candidates only for
// AuthStatusMultipleProfiles.
type AuthResult struct {
	Status     AuthStatus
	Token      string
	Profile    *domain.ProfileSummary
	Candidates []domain.ProfileSummary
}

type AuthService interface {
	Authenticate(ctx context.Context, in LoginInput) (*AuthResult, error)
	// ResolveToken verifies a session token and binds it to the account
	// matching the token's tenant claim (lowest user id when none matches).
	ResolveToken(ctx context.Context, token string) (*Identity, error)
	// Enroll2FA generates and stores a TOTP secret for the user.
	Enroll2FA(ctx context.Context, userID string) (string, error)
}

// TOTPVerifier abstracts the time-based one-time-code algorithm.
type TOTPVerifier interface {
	GenerateSecret(account string) (string, error)
	Verify(secret, code string) bool
}

// CreateBookingInput carries one booking request. Start and End are
// minutes since midnight.
type CreateBookingInput struct {
	FacilityID  string
	RequesterID string
	Date        time.Time
	Start       int
	End         int
}

type BookingService interface {
	CreateBooking(ctx context.Context, in CreateBookingInput) (*domain.Booking, error)
	AttachReceipt(ctx context.Context, bookingID, requesterID, receiptURL string) error
	Review(ctx context.Context, bookingID string, approve bool) error
	Cancel(ctx context.Context, bookingID, requesterID string) error
	ListBookings(ctx context.Context, status string, limit, offset int) ([]domain.Booking, error)
	// ExpireStaleBookings is the per-minute sweep over stale PENDING rows.
	ExpireStaleBookings(ctx context.Context) error
}

type AffiliateService interface {
	// RecordCommission reacts to a payment-confirmation event. Tenants
	// without a referring affiliate produce no commission.
	RecordCommission(ctx context.Context, payingTenantID string, grossAmount float64) error
	// SettleAffiliatePayouts is the daily sweep: matures due commissions
	// and pays out balances above the threshold, one affiliate at a time.
	SettleAffiliatePayouts(ctx context.Context) error
	ListCommissions(ctx context.Context, affiliateUserID string, limit, offset int) ([]domain.Commission, error)
	AvailableBalance(ctx context.Context, affiliateUserID string) (float64, error)
}

// EmailService handles email notifications. Failures are logged by the
// caller, never propagated into the triggering operation.
type EmailService interface {
	Send(ctx context.Context, to, subject, body string) error
	SendHTML(ctx context.Context, to, subject, htmlBody string) error
	SendTemplate(ctx context.Context, to, templateName string, data map[string]interface{}) error
}

type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
	// SetNX stores the value only when the key is absent, reporting
	// whether this caller won it. Locks are built on this.
	SetNX(ctx context.Context, key string, value string, expiration time.Duration) (bool, error)
	Delete(ctx context.Context, key string) error
	Ping() error
	Close() error
}
