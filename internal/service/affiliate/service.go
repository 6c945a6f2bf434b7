package affiliate

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/seu-repo/condomino/internal/domain"
	"github.com/seu-repo/condomino/internal/observability/telemetry"
	"github.com/seu-repo/condomino/internal/ports"
)

const settlementLockKey = "affiliate:settlement:lock"

// Service tracks commissions through the blocked -> available -> paid
// lifecycle and runs the daily settlement sweep.
type Service struct {
	commissions ports.CommissionRepository
	affiliates  ports.AffiliateRepository
	tenants     ports.TenantRepository
	gateway     ports.PayoutGateway
	cache       ports.Cache
	clock       ports.Clock
	config      *domain.AffiliateConfig
	log         *zap.Logger
}

func NewService(
	commissions ports.CommissionRepository,
	affiliates ports.AffiliateRepository,
	tenants ports.TenantRepository,
	gateway ports.PayoutGateway,
	cache ports.Cache,
	clock ports.Clock,
	config *domain.AffiliateConfig,
	log *zap.Logger,
) *Service {
	if config == nil {
		config = domain.DefaultAffiliateConfig()
	}
	return &Service{
		commissions: commissions,
		affiliates:  affiliates,
		tenants:     tenants,
		gateway:     gateway,
		cache:       cache,
		clock:       clock,
		config:      config,
		log:         log,
	}
}

// RecordCommission reacts to a confirmed payment from a tenant. Tenants
// that were not referred by an affiliate generate nothing.
func (s *Service) RecordCommission(ctx context.Context, payingTenantID string, grossAmount float64) error {
	tenant, err := s.tenants.FindByID(ctx, payingTenantID)
	if err != nil {
		return fmt.Errorf("failed to find tenant: %w", err)
	}
	if tenant == nil {
		return domain.ErrNotFound
	}
	if tenant.ReferralAffiliateID == nil {
		return nil
	}

	today := truncateToDay(s.clock.Now())
	commission := &domain.Commission{
		ID:          uuid.New().String(),
		AffiliateID: *tenant.ReferralAffiliateID,
		TenantID:    payingTenantID,
		Amount:      round2(grossAmount * s.config.CommissionRate),
		SaleDate:    today,
		ReleaseDate: today.AddDate(0, 0, s.config.MaturationDays),
		Status:      domain.CommissionStatusBlocked,
		CreatedAt:   s.clock.Now(),
		UpdatedAt:   s.clock.Now(),
	}

	if err := s.commissions.Save(ctx, commission); err != nil {
		return fmt.Errorf("failed to save commission: %w", err)
	}

	s.log.Info("commission recorded",
		zap.String("commission_id", commission.ID),
		zap.String("affiliate_id", commission.AffiliateID),
		zap.String("tenant_id", payingTenantID),
		zap.Float64("amount", commission.Amount),
	)
	return nil
}

// SettleAffiliatePayouts is the daily sweep. Each affiliate is its own
// unit of work: matured commissions become AVAILABLE, and balances at
// or above the payout threshold are transferred in full. A failure for
// one affiliate is logged and skipped; the records stay AVAILABLE and
// retry naturally on the next run.
func (s *Service) SettleAffiliatePayouts(ctx context.Context) error {
	if !s.acquireLock(ctx) {
		s.log.Info("settlement sweep already running, skipping")
		return nil
	}
	defer s.releaseLock(ctx)

	affiliateIDs, err := s.commissions.AffiliateIDsWithOpen(ctx)
	if err != nil {
		return fmt.Errorf("failed to list affiliates with open commissions: %w", err)
	}

	today := truncateToDay(s.clock.Now())
	for _, affiliateID := range affiliateIDs {
		if err := s.settleOne(ctx, affiliateID, today); err != nil {
			telemetry.PayoutFailures.Inc()
			s.log.Error("settlement failed for affiliate",
				zap.String("affiliate_id", affiliateID),
				zap.Error(err),
			)
		}
	}
	return nil
}

func (s *Service) settleOne(ctx context.Context, affiliateID string, today time.Time) error {
	due, err := s.commissions.FindDueBlocked(ctx, affiliateID, today)
	if err != nil {
		return fmt.Errorf("failed to select due commissions: %w", err)
	}
	for i := range due {
		if err := due[i].TransitionTo(domain.CommissionStatusAvailable); err != nil {
			return err
		}
		due[i].UpdatedAt = s.clock.Now()
		if err := s.commissions.Save(ctx, &due[i]); err != nil {
			return fmt.Errorf("failed to mature commission %s: %w", due[i].ID, err)
		}
	}

	available, err := s.commissions.FindByStatus(ctx, affiliateID, domain.CommissionStatusAvailable)
	if err != nil {
		return fmt.Errorf("failed to select available commissions: %w", err)
	}
	var balance float64
	for i := range available {
		balance += available[i].Amount
	}
	balance = round2(balance)
	if balance < s.config.MinPayout {
		return nil
	}

	profile, err := s.affiliates.FindByID(ctx, affiliateID)
	if err != nil {
		return fmt.Errorf("failed to load affiliate profile: %w", err)
	}
	if profile == nil || profile.PaymentKey == "" {
		return fmt.Errorf("affiliate %s has no payment key", affiliateID)
	}

	transferID, err := s.gateway.Transfer(ctx, profile.PaymentKey, balance)
	if err != nil {
		// Records stay AVAILABLE; the next sweep retries.
		return fmt.Errorf("transfer failed: %w", err)
	}

	for i := range available {
		if err := available[i].TransitionTo(domain.CommissionStatusPaid); err != nil {
			return err
		}
		available[i].TransferID = transferID
		available[i].UpdatedAt = s.clock.Now()
		if err := s.commissions.Save(ctx, &available[i]); err != nil {
			return fmt.Errorf("failed to mark commission %s paid: %w", available[i].ID, err)
		}
	}

	telemetry.CommissionsSettled.Add(float64(len(available)))
	s.log.Info("affiliate paid out",
		zap.String("affiliate_id", affiliateID),
		zap.String("transfer_id", transferID),
		zap.Float64("amount", balance),
		zap.Int("commissions", len(available)),
	)
	return nil
}

// ListCommissions returns the commissions of the affiliate behind the
// given user account.
func (s *Service) ListCommissions(ctx context.Context, affiliateUserID string, limit, offset int) ([]domain.Commission, error) {
	profile, err := s.profileForUser(ctx, affiliateUserID)
	if err != nil {
		return nil, err
	}
	return s.commissions.ListByAffiliate(ctx, profile.ID, limit, offset)
}

// AvailableBalance sums the affiliate's AVAILABLE commissions.
func (s *Service) AvailableBalance(ctx context.Context, affiliateUserID string) (float64, error) {
	profile, err := s.profileForUser(ctx, affiliateUserID)
	if err != nil {
		return 0, err
	}
	available, err := s.commissions.FindByStatus(ctx, profile.ID, domain.CommissionStatusAvailable)
	if err != nil {
		return 0, err
	}
	var balance float64
	for i := range available {
		balance += available[i].Amount
	}
	return round2(balance), nil
}

func (s *Service) profileForUser(ctx context.Context, userID string) (*domain.AffiliateProfile, error) {
	profile, err := s.affiliates.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load affiliate profile: %w", err)
	}
	if profile == nil {
		return nil, domain.ErrNotFound
	}
	return profile, nil
}

// acquireLock takes a best-effort short-lived lock so two schedulers do
// not run the sweep at once. Cache trouble does not block settlement.
func (s *Service) acquireLock(ctx context.Context) bool {
	if s.cache == nil {
		return true
	}
	acquired, err := s.cache.SetNX(ctx, settlementLockKey, "held", time.Hour)
	if err != nil {
		s.log.Warn("failed to take settlement lock", zap.Error(err))
		return true
	}
	return acquired
}

func (s *Service) releaseLock(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, settlementLockKey); err != nil {
		s.log.Warn("failed to release settlement lock", zap.Error(err))
	}
}

func truncateToDay(ts time.Time) time.Time {
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, ts.Location())
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
