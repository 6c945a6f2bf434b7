package mocks

import (
	"context"
	"time"

	"github.com/seu-repo/condomino/internal/domain"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	SaveFunc        func(ctx context.Context, user *domain.User) error
	FindByIDFunc    func(ctx context.Context, id string) (*domain.User, error)
	FindByLoginFunc func(ctx context.Context, identifier string) ([]domain.User, error)
}

func (m *MockUserRepository) Save(ctx context.Context, user *domain.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByLogin(ctx context.Context, identifier string) ([]domain.User, error) {
	if m.FindByLoginFunc != nil {
		return m.FindByLoginFunc(ctx, identifier)
	}
	return []domain.User{}, nil
}

// MockTenantRepository is a mock implementation of TenantRepository
type MockTenantRepository struct {
	SaveFunc     func(ctx context.Context, tenant *domain.Tenant) error
	FindByIDFunc func(ctx context.Context, id string) (*domain.Tenant, error)
}

func (m *MockTenantRepository) Save(ctx context.Context, tenant *domain.Tenant) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, tenant)
	}
	return nil
}

func (m *MockTenantRepository) FindByID(ctx context.Context, id string) (*domain.Tenant, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

// MockTrustedDeviceRepository is a mock implementation of TrustedDeviceRepository
type MockTrustedDeviceRepository struct {
	UpsertFunc func(ctx context.Context, device *domain.TrustedDevice) error
	FindFunc   func(ctx context.Context, userID, deviceID string) (*domain.TrustedDevice, error)
}

func (m *MockTrustedDeviceRepository) Upsert(ctx context.Context, device *domain.TrustedDevice) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, device)
	}
	return nil
}

func (m *MockTrustedDeviceRepository) Find(ctx context.Context, userID, deviceID string) (*domain.TrustedDevice, error) {
	if m.FindFunc != nil {
		return m.FindFunc(ctx, userID, deviceID)
	}
	return nil, nil
}

// MockFacilityRepository is a mock implementation of FacilityRepository
type MockFacilityRepository struct {
	SaveFunc     func(ctx context.Context, facility *domain.Facility) error
	FindByIDFunc func(ctx context.Context, id string) (*domain.Facility, error)
}

func (m *MockFacilityRepository) Save(ctx context.Context, facility *domain.Facility) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, facility)
	}
	return nil
}

func (m *MockFacilityRepository) FindByID(ctx context.Context, id string) (*domain.Facility, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

// MockBookingRepository is a mock implementation of BookingRepository
type MockBookingRepository struct {
	SaveFunc                  func(ctx context.Context, booking *domain.Booking) error
	FindByIDFunc              func(ctx context.Context, id string) (*domain.Booking, error)
	FindByFacilityAndDateFunc func(ctx context.Context, facilityID string, date time.Time) ([]domain.Booking, error)
	SaveInSlotFunc            func(ctx context.Context, booking *domain.Booking) error
	FindStalePendingFunc      func(ctx context.Context, cutoff time.Time) ([]domain.Booking, error)
	SaveAllFunc               func(ctx context.Context, bookings []domain.Booking) error
	ListByTenantFunc          func(ctx context.Context, status string, limit, offset int) ([]domain.Booking, error)
}

func (m *MockBookingRepository) Save(ctx context.Context, booking *domain.Booking) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, booking)
	}
	return nil
}

func (m *MockBookingRepository) FindByID(ctx context.Context, id string) (*domain.Booking, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockBookingRepository) FindByFacilityAndDate(ctx context.Context, facilityID string, date time.Time) ([]domain.Booking, error) {
	if m.FindByFacilityAndDateFunc != nil {
		return m.FindByFacilityAndDateFunc(ctx, facilityID, date)
	}
	return []domain.Booking{}, nil
}

func (m *MockBookingRepository) SaveInSlot(ctx context.Context, booking *domain.Booking) error {
	if m.SaveInSlotFunc != nil {
		return m.SaveInSlotFunc(ctx, booking)
	}
	return nil
}

func (m *MockBookingRepository) FindStalePending(ctx context.Context, cutoff time.Time) ([]domain.Booking, error) {
	if m.FindStalePendingFunc != nil {
		return m.FindStalePendingFunc(ctx, cutoff)
	}
	return []domain.Booking{}, nil
}

func (m *MockBookingRepository) SaveAll(ctx context.Context, bookings []domain.Booking) error {
	if m.SaveAllFunc != nil {
		return m.SaveAllFunc(ctx, bookings)
	}
	return nil
}

func (m *MockBookingRepository) ListByTenant(ctx context.Context, status string, limit, offset int) ([]domain.Booking, error) {
	if m.ListByTenantFunc != nil {
		return m.ListByTenantFunc(ctx, status, limit, offset)
	}
	return []domain.Booking{}, nil
}

// MockCommissionRepository is a mock implementation of CommissionRepository
type MockCommissionRepository struct {
	SaveFunc                 func(ctx context.Context, commission *domain.Commission) error
	FindDueBlockedFunc       func(ctx context.Context, affiliateID string, asOf time.Time) ([]domain.Commission, error)
	FindByStatusFunc         func(ctx context.Context, affiliateID string, status domain.CommissionStatus) ([]domain.Commission, error)
	ListByAffiliateFunc      func(ctx context.Context, affiliateID string, limit, offset int) ([]domain.Commission, error)
	AffiliateIDsWithOpenFunc func(ctx context.Context) ([]string, error)
}

func (m *MockCommissionRepository) Save(ctx context.Context, commission *domain.Commission) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, commission)
	}
	return nil
}

func (m *MockCommissionRepository) FindDueBlocked(ctx context.Context, affiliateID string, asOf time.Time) ([]domain.Commission, error) {
	if m.FindDueBlockedFunc != nil {
		return m.FindDueBlockedFunc(ctx, affiliateID, asOf)
	}
	return []domain.Commission{}, nil
}

func (m *MockCommissionRepository) FindByStatus(ctx context.Context, affiliateID string, status domain.CommissionStatus) ([]domain.Commission, error) {
	if m.FindByStatusFunc != nil {
		return m.FindByStatusFunc(ctx, affiliateID, status)
	}
	return []domain.Commission{}, nil
}

func (m *MockCommissionRepository) ListByAffiliate(ctx context.Context, affiliateID string, limit, offset int) ([]domain.Commission, error) {
	if m.ListByAffiliateFunc != nil {
		return m.ListByAffiliateFunc(ctx, affiliateID, limit, offset)
	}
	return []domain.Commission{}, nil
}

func (m *MockCommissionRepository) AffiliateIDsWithOpen(ctx context.Context) ([]string, error) {
	if m.AffiliateIDsWithOpenFunc != nil {
		return m.AffiliateIDsWithOpenFunc(ctx)
	}
	return []string{}, nil
}

// MockAffiliateRepository is a mock implementation of AffiliateRepository
type MockAffiliateRepository struct {
	SaveFunc               func(ctx context.Context, profile *domain.AffiliateProfile) error
	FindByIDFunc           func(ctx context.Context, id string) (*domain.AffiliateProfile, error)
	FindByUserIDFunc       func(ctx context.Context, userID string) (*domain.AffiliateProfile, error)
	FindByReferralCodeFunc func(ctx context.Context, code string) (*domain.AffiliateProfile, error)
}

func (m *MockAffiliateRepository) Save(ctx context.Context, profile *domain.AffiliateProfile) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, profile)
	}
	return nil
}

func (m *MockAffiliateRepository) FindByID(ctx context.Context, id string) (*domain.AffiliateProfile, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockAffiliateRepository) FindByUserID(ctx context.Context, userID string) (*domain.AffiliateProfile, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockAffiliateRepository) FindByReferralCode(ctx context.Context, code string) (*domain.AffiliateProfile, error) {
	if m.FindByReferralCodeFunc != nil {
		return m.FindByReferralCodeFunc(ctx, code)
	}
	return nil, nil
}
