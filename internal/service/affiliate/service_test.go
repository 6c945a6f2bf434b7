package affiliate

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/seu-repo/condomino/internal/domain"
	"github.com/seu-repo/condomino/internal/mocks"
	"github.com/seu-repo/condomino/internal/ports"
)

var testNow = time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func newAffiliateService(
	commissions *mocks.MockCommissionRepository,
	affiliates *mocks.MockAffiliateRepository,
	tenants *mocks.MockTenantRepository,
	gateway *mocks.MockPayoutGateway,
	cache ports.Cache,
	clock ports.Clock,
) *Service {
	return NewService(commissions, affiliates, tenants, gateway, cache, clock, nil, zap.NewNop())
}

func TestRecordCommission_NoReferrerIsSilent(t *testing.T) {
	// Arrange: the tenant signed up without a referral
	clock := mocks.NewMockClock(testNow)
	tenants := &mocks.MockTenantRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Tenant, error) {
			return &domain.Tenant{ID: id}, nil
		},
	}
	saves := 0
	commissions := &mocks.MockCommissionRepository{
		SaveFunc: func(ctx context.Context, commission *domain.Commission) error {
			saves++
			return nil
		},
	}
	svc := newAffiliateService(commissions, &mocks.MockAffiliateRepository{}, tenants, &mocks.MockPayoutGateway{}, nil, clock)

	// Act
	err := svc.RecordCommission(context.Background(), "tenant-1", 250.00)

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if saves != 0 {
		t.Error("a tenant without a referrer must not generate a commission")
	}
}

func TestRecordCommission_ComputesShareAndMaturity(t *testing.T) {
	// Arrange
	clock := mocks.NewMockClock(testNow)
	tenants := &mocks.MockTenantRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Tenant, error) {
			return &domain.Tenant{ID: id, ReferralAffiliateID: strPtr("aff-1")}, nil
		},
	}
	var saved *domain.Commission
	commissions := &mocks.MockCommissionRepository{
		SaveFunc: func(ctx context.Context, commission *domain.Commission) error {
			saved = commission
			return nil
		},
	}
	svc := newAffiliateService(commissions, &mocks.MockAffiliateRepository{}, tenants, &mocks.MockPayoutGateway{}, nil, clock)

	// Act
	err := svc.RecordCommission(context.Background(), "tenant-1", 250.00)

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if saved == nil {
		t.Fatal("expected a commission to be saved")
	}
	if saved.Amount != 25.00 {
		t.Errorf("expected 10%% share of 250.00, got %v", saved.Amount)
	}
	if saved.Status != domain.CommissionStatusBlocked {
		t.Errorf("new commissions start blocked, got %s", saved.Status)
	}
	wantSale := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	if !saved.SaleDate.Equal(wantSale) {
		t.Errorf("expected sale date truncated to the day, got %v", saved.SaleDate)
	}
	if !saved.ReleaseDate.Equal(wantSale.AddDate(0, 0, 30)) {
		t.Errorf("expected release 30 days after the sale, got %v", saved.ReleaseDate)
	}
	if saved.AffiliateID != "aff-1" {
		t.Errorf("expected affiliate aff-1, got %s", saved.AffiliateID)
	}
}

func TestRecordCommission_RoundsToCents(t *testing.T) {
	// Arrange: 10% of 333.33 is 33.333, which must land as 33.33
	clock := mocks.NewMockClock(testNow)
	tenants := &mocks.MockTenantRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Tenant, error) {
			return &domain.Tenant{ID: id, ReferralAffiliateID: strPtr("aff-1")}, nil
		},
	}
	var saved *domain.Commission
	commissions := &mocks.MockCommissionRepository{
		SaveFunc: func(ctx context.Context, commission *domain.Commission) error {
			saved = commission
			return nil
		},
	}
	svc := newAffiliateService(commissions, &mocks.MockAffiliateRepository{}, tenants, &mocks.MockPayoutGateway{}, nil, clock)

	// Act
	err := svc.RecordCommission(context.Background(), "tenant-1", 333.33)

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if saved == nil {
		t.Fatal("expected a commission to be saved")
	}
	if saved.Amount != 33.33 {
		t.Errorf("expected the share rounded to cents, got %v", saved.Amount)
	}
}

func TestRecordCommission_UnknownTenant(t *testing.T) {
	// Arrange
	clock := mocks.NewMockClock(testNow)
	svc := newAffiliateService(&mocks.MockCommissionRepository{}, &mocks.MockAffiliateRepository{}, &mocks.MockTenantRepository{}, &mocks.MockPayoutGateway{}, nil, clock)

	// Act
	err := svc.RecordCommission(context.Background(), "ghost", 250.00)

	// Assert
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSettle_MaturesDueBlockedCommissions(t *testing.T) {
	// Arrange: one commission past its release date, balance below payout
	clock := mocks.NewMockClock(testNow)
	var matured []domain.Commission
	commissions := &mocks.MockCommissionRepository{
		AffiliateIDsWithOpenFunc: func(ctx context.Context) ([]string, error) {
			return []string{"aff-1"}, nil
		},
		FindDueBlockedFunc: func(ctx context.Context, affiliateID string, asOf time.Time) ([]domain.Commission, error) {
			return []domain.Commission{
				{ID: "c-1", AffiliateID: affiliateID, Amount: 12.50, Status: domain.CommissionStatusBlocked},
			}, nil
		},
		SaveFunc: func(ctx context.Context, commission *domain.Commission) error {
			matured = append(matured, *commission)
			return nil
		},
		FindByStatusFunc: func(ctx context.Context, affiliateID string, status domain.CommissionStatus) ([]domain.Commission, error) {
			return []domain.Commission{{ID: "c-1", Amount: 12.50, Status: domain.CommissionStatusAvailable}}, nil
		},
	}
	transfers := 0
	gateway := &mocks.MockPayoutGateway{
		TransferFunc: func(ctx context.Context, paymentKey string, amount float64) (string, error) {
			transfers++
			return "t-1", nil
		},
	}
	svc := newAffiliateService(commissions, &mocks.MockAffiliateRepository{}, &mocks.MockTenantRepository{}, gateway, nil, clock)

	// Act
	err := svc.SettleAffiliatePayouts(context.Background())

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(matured) != 1 || matured[0].Status != domain.CommissionStatusAvailable {
		t.Errorf("expected the due commission to become available, got %+v", matured)
	}
	if transfers != 0 {
		t.Error("balance below the minimum must not trigger a transfer")
	}
}

func TestSettle_BalanceJustBelowThresholdHolds(t *testing.T) {
	// Arrange: 29.99 available against a 30.00 minimum
	clock := mocks.NewMockClock(testNow)
	commissions := &mocks.MockCommissionRepository{
		AffiliateIDsWithOpenFunc: func(ctx context.Context) ([]string, error) {
			return []string{"aff-1"}, nil
		},
		FindByStatusFunc: func(ctx context.Context, affiliateID string, status domain.CommissionStatus) ([]domain.Commission, error) {
			return []domain.Commission{
				{ID: "c-1", Amount: 15.00, Status: domain.CommissionStatusAvailable},
				{ID: "c-2", Amount: 14.99, Status: domain.CommissionStatusAvailable},
			}, nil
		},
	}
	transfers := 0
	gateway := &mocks.MockPayoutGateway{
		TransferFunc: func(ctx context.Context, paymentKey string, amount float64) (string, error) {
			transfers++
			return "t-1", nil
		},
	}
	svc := newAffiliateService(commissions, &mocks.MockAffiliateRepository{}, &mocks.MockTenantRepository{}, gateway, nil, clock)

	// Act
	err := svc.SettleAffiliatePayouts(context.Background())

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if transfers != 0 {
		t.Error("29.99 must stay below the 30.00 payout threshold")
	}
}

func TestSettle_BalanceAtThresholdPaysInFull(t *testing.T) {
	// Arrange: exactly 30.00 available
	clock := mocks.NewMockClock(testNow)
	var paid []domain.Commission
	commissions := &mocks.MockCommissionRepository{
		AffiliateIDsWithOpenFunc: func(ctx context.Context) ([]string, error) {
			return []string{"aff-1"}, nil
		},
		FindByStatusFunc: func(ctx context.Context, affiliateID string, status domain.CommissionStatus) ([]domain.Commission, error) {
			return []domain.Commission{
				{ID: "c-1", Amount: 10.00, Status: domain.CommissionStatusAvailable},
				{ID: "c-2", Amount: 20.00, Status: domain.CommissionStatusAvailable},
			}, nil
		},
		SaveFunc: func(ctx context.Context, commission *domain.Commission) error {
			paid = append(paid, *commission)
			return nil
		},
	}
	affiliates := &mocks.MockAffiliateRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.AffiliateProfile, error) {
			return &domain.AffiliateProfile{ID: id, PaymentKey: "pix-key-1"}, nil
		},
	}
	var transferred float64
	gateway := &mocks.MockPayoutGateway{
		TransferFunc: func(ctx context.Context, paymentKey string, amount float64) (string, error) {
			if paymentKey != "pix-key-1" {
				t.Errorf("expected transfer to the affiliate's payment key, got %q", paymentKey)
			}
			transferred = amount
			return "transfer-9", nil
		},
	}
	svc := newAffiliateService(commissions, affiliates, &mocks.MockTenantRepository{}, gateway, nil, clock)

	// Act
	err := svc.SettleAffiliatePayouts(context.Background())

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if transferred != 30.00 {
		t.Errorf("expected the full balance transferred, got %v", transferred)
	}
	if len(paid) != 2 {
		t.Fatalf("expected both commissions marked paid, got %d", len(paid))
	}
	for _, c := range paid {
		if c.Status != domain.CommissionStatusPaid {
			t.Errorf("expected commission %s paid, got %s", c.ID, c.Status)
		}
		if c.TransferID != "transfer-9" {
			t.Errorf("expected transfer id on commission %s, got %q", c.ID, c.TransferID)
		}
	}
}

func TestSettle_FailureIsolatedPerAffiliate(t *testing.T) {
	// Arrange: the first affiliate's transfer fails, the second must still be paid
	clock := mocks.NewMockClock(testNow)
	commissions := &mocks.MockCommissionRepository{
		AffiliateIDsWithOpenFunc: func(ctx context.Context) ([]string, error) {
			return []string{"aff-broken", "aff-ok"}, nil
		},
		FindByStatusFunc: func(ctx context.Context, affiliateID string, status domain.CommissionStatus) ([]domain.Commission, error) {
			return []domain.Commission{
				{ID: "c-" + affiliateID, Amount: 50.00, Status: domain.CommissionStatusAvailable},
			}, nil
		},
	}
	affiliates := &mocks.MockAffiliateRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.AffiliateProfile, error) {
			return &domain.AffiliateProfile{ID: id, PaymentKey: "key-" + id}, nil
		},
	}
	var paidKeys []string
	gateway := &mocks.MockPayoutGateway{
		TransferFunc: func(ctx context.Context, paymentKey string, amount float64) (string, error) {
			if paymentKey == "key-aff-broken" {
				return "", errors.New("account closed")
			}
			paidKeys = append(paidKeys, paymentKey)
			return "t-1", nil
		},
	}
	svc := newAffiliateService(commissions, affiliates, &mocks.MockTenantRepository{}, gateway, nil, clock)

	// Act
	err := svc.SettleAffiliatePayouts(context.Background())

	// Assert: the sweep itself succeeds, the failure is contained
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(paidKeys) != 1 || paidKeys[0] != "key-aff-ok" {
		t.Errorf("expected the healthy affiliate to be paid, got %v", paidKeys)
	}
}

func TestSettle_MissingPaymentKeyHolds(t *testing.T) {
	// Arrange: balance above threshold but nowhere to send it
	clock := mocks.NewMockClock(testNow)
	commissions := &mocks.MockCommissionRepository{
		AffiliateIDsWithOpenFunc: func(ctx context.Context) ([]string, error) {
			return []string{"aff-1"}, nil
		},
		FindByStatusFunc: func(ctx context.Context, affiliateID string, status domain.CommissionStatus) ([]domain.Commission, error) {
			return []domain.Commission{{ID: "c-1", Amount: 100.00, Status: domain.CommissionStatusAvailable}}, nil
		},
	}
	affiliates := &mocks.MockAffiliateRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.AffiliateProfile, error) {
			return &domain.AffiliateProfile{ID: id}, nil
		},
	}
	transfers := 0
	gateway := &mocks.MockPayoutGateway{
		TransferFunc: func(ctx context.Context, paymentKey string, amount float64) (string, error) {
			transfers++
			return "t-1", nil
		},
	}
	svc := newAffiliateService(commissions, affiliates, &mocks.MockTenantRepository{}, gateway, nil, clock)

	// Act
	err := svc.SettleAffiliatePayouts(context.Background())

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if transfers != 0 {
		t.Error("no transfer may happen without a payment key")
	}
}

func TestSettle_LockSkipsConcurrentRun(t *testing.T) {
	// Arrange: another scheduler already holds the lock
	clock := mocks.NewMockClock(testNow)
	cache := mocks.NewMockCache()
	if err := cache.Set(context.Background(), "affiliate:settlement:lock", "held", time.Hour); err != nil {
		t.Fatalf("failed to seed lock: %v", err)
	}
	listed := 0
	commissions := &mocks.MockCommissionRepository{
		AffiliateIDsWithOpenFunc: func(ctx context.Context) ([]string, error) {
			listed++
			return nil, nil
		},
	}
	svc := newAffiliateService(commissions, &mocks.MockAffiliateRepository{}, &mocks.MockTenantRepository{}, &mocks.MockPayoutGateway{}, cache, clock)

	// Act
	err := svc.SettleAffiliatePayouts(context.Background())

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if listed != 0 {
		t.Error("a held lock must skip the sweep entirely")
	}
}

func TestSettle_LockTakeIsSingleWinner(t *testing.T) {
	// Arrange: the lock is taken in one atomic step, so a second sweep
	// starting while the first still holds it must lose outright.
	clock := mocks.NewMockClock(testNow)
	cache := mocks.NewMockCache()
	cache.DeleteFunc = func(ctx context.Context, key string) error {
		return nil // first run never lets go
	}
	listed := 0
	commissions := &mocks.MockCommissionRepository{
		AffiliateIDsWithOpenFunc: func(ctx context.Context) ([]string, error) {
			listed++
			return nil, nil
		},
	}
	svc := newAffiliateService(commissions, &mocks.MockAffiliateRepository{}, &mocks.MockTenantRepository{}, &mocks.MockPayoutGateway{}, cache, clock)

	// Act
	if err := svc.SettleAffiliatePayouts(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := svc.SettleAffiliatePayouts(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// Assert
	if listed != 1 {
		t.Errorf("expected only the lock winner to sweep, got %d runs", listed)
	}
}

func TestSettle_CacheTroubleDoesNotBlock(t *testing.T) {
	// Arrange: redis down, the sweep still runs
	clock := mocks.NewMockClock(testNow)
	cache := mocks.NewMockCache()
	cache.SetNXFunc = func(ctx context.Context, key string, value string, expiration time.Duration) (bool, error) {
		return false, errors.New("connection refused")
	}
	listed := 0
	commissions := &mocks.MockCommissionRepository{
		AffiliateIDsWithOpenFunc: func(ctx context.Context) ([]string, error) {
			listed++
			return nil, nil
		},
	}
	svc := newAffiliateService(commissions, &mocks.MockAffiliateRepository{}, &mocks.MockTenantRepository{}, &mocks.MockPayoutGateway{}, cache, clock)

	// Act
	err := svc.SettleAffiliatePayouts(context.Background())

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if listed != 1 {
		t.Error("cache trouble must not block settlement")
	}
}

func TestAvailableBalance_SumsAvailableOnly(t *testing.T) {
	// Arrange
	clock := mocks.NewMockClock(testNow)
	affiliates := &mocks.MockAffiliateRepository{
		FindByUserIDFunc: func(ctx context.Context, userID string) (*domain.AffiliateProfile, error) {
			return &domain.AffiliateProfile{ID: "aff-1", UserID: userID}, nil
		},
	}
	commissions := &mocks.MockCommissionRepository{
		FindByStatusFunc: func(ctx context.Context, affiliateID string, status domain.CommissionStatus) ([]domain.Commission, error) {
			if status != domain.CommissionStatusAvailable {
				t.Errorf("expected available filter, got %s", status)
			}
			return []domain.Commission{
				{ID: "c-1", Amount: 10.00},
				{ID: "c-2", Amount: 5.50},
			}, nil
		},
	}
	svc := newAffiliateService(commissions, affiliates, &mocks.MockTenantRepository{}, &mocks.MockPayoutGateway{}, nil, clock)

	// Act
	balance, err := svc.AvailableBalance(context.Background(), "user-1")

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if balance != 15.50 {
		t.Errorf("expected 15.50, got %v", balance)
	}
}

func TestAvailableBalance_NotAnAffiliate(t *testing.T) {
	// Arrange
	clock := mocks.NewMockClock(testNow)
	svc := newAffiliateService(&mocks.MockCommissionRepository{}, &mocks.MockAffiliateRepository{}, &mocks.MockTenantRepository{}, &mocks.MockPayoutGateway{}, nil, clock)

	// Act
	_, err := svc.AvailableBalance(context.Background(), "user-1")

	// Assert
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
