package ports

import (
	"context"
	"time"

	"github.com/seu-repo/condomino/internal/domain"
)

type UserRepository interface {
	Save(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByLogin returns every account whose email or document matches
	// the identifier, across all tenants.
	FindByLogin(ctx context.Context, identifier string) ([]domain.User, error)
}

type TenantRepository interface {
	Save(ctx context.Context, tenant *domain.Tenant) error
	FindByID(ctx context.Context, id string) (*domain.Tenant, error)
}

type TrustedDeviceRepository interface {
	// Upsert replaces any existing (user, device) row.
	Upsert(ctx context.Context, device *domain.TrustedDevice) error
	Find(ctx context.Context, userID, deviceID string) (*domain.TrustedDevice, error)
}

type FacilityRepository interface {
	Save(ctx context.Context, facility *domain.Facility) error
	FindByID(ctx context.Context, id string) (*domain.Facility, error)
}

// BookingRepository handles booking persistence. List operations are
// tenant scoped: they read the tenant id from the request context and
// fail closed when it is absent.
type BookingRepository interface {
	Save(ctx context.Context, booking *domain.Booking) error
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	FindByFacilityAndDate(ctx context.Context, facilityID string, date time.Time) ([]domain.Booking, error)
	// SaveInSlot inserts the booking only if no non-terminal booking
	// overlaps its range, re-checking inside a single transaction.
	// Returns domain.ErrSlotConflict when the slot is taken.
	SaveInSlot(ctx context.Context, booking *domain.Booking) error
	// FindStalePending returns PENDING bookings created before the cutoff.
	FindStalePending(ctx context.Context, cutoff time.Time) ([]domain.Booking, error)
	SaveAll(ctx context.Context, bookings []domain.Booking) error
	ListByTenant(ctx context.Context, status string, limit, offset int) ([]domain.Booking, error)
}

type CommissionRepository interface {
	Save(ctx context.Context, commission *domain.Commission) error
	// FindDueBlocked returns BLOCKED commissions whose release date has
	// passed for the given affiliate.
	FindDueBlocked(ctx context.Context, affiliateID string, asOf time.Time) ([]domain.Commission, error)
	FindByStatus(ctx context.Context, affiliateID string, status domain.CommissionStatus) ([]domain.Commission, error)
	ListByAffiliate(ctx context.Context, affiliateID string, limit, offset int) ([]domain.Commission, error)
	// AffiliateIDsWithOpen returns affiliates holding at least one
	// BLOCKED or AVAILABLE commission.
	AffiliateIDsWithOpen(ctx context.Context) ([]string, error)
}

type AffiliateRepository interface {
	Save(ctx context.Context, profile *domain.AffiliateProfile) error
	FindByID(ctx context.Context, id string) (*domain.AffiliateProfile, error)
	FindByUserID(ctx context.Context, userID string) (*domain.AffiliateProfile, error)
	FindByReferralCode(ctx context.Context, code string) (*domain.AffiliateProfile, error)
}
