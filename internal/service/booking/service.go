package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/seu-repo/condomino/internal/domain"
	"github.com/seu-repo/condomino/internal/observability/telemetry"
	"github.com/seu-repo/condomino/internal/ports"
	"github.com/seu-repo/condomino/internal/tenantctx"
)

// Service implements BookingService
type Service struct {
	repo       ports.BookingRepository
	facilities ports.FacilityRepository
	users      ports.UserRepository
	gateway    ports.PayoutGateway
	emails     ports.EmailService
	clock      ports.Clock
	config     *domain.BookingConfig
	log        *zap.Logger
}

// NewService creates a new booking service
func NewService(
	repo ports.BookingRepository,
	facilities ports.FacilityRepository,
	users ports.UserRepository,
	gateway ports.PayoutGateway,
	emails ports.EmailService,
	clock ports.Clock,
	config *domain.BookingConfig,
	log *zap.Logger,
) *Service {
	if config == nil {
		config = domain.DefaultBookingConfig()
	}
	return &Service{
		repo:       repo,
		facilities: facilities,
		users:      users,
		gateway:    gateway,
		emails:     emails,
		clock:      clock,
		config:     config,
		log:        log,
	}
}

// CreateBooking validates the request, charges the requester when the
// facility is paid, and persists the booking. The overlap check is
// re-run inside the storage transaction, so a concurrent winner
// surfaces here as ErrSlotConflict, never as a double booking.
func (s *Service) CreateBooking(ctx context.Context, in ports.CreateBookingInput) (*domain.Booking, error) {
	tenantID, err := tenantctx.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	facility, err := s.facilities.FindByID(ctx, in.FacilityID)
	if err != nil {
		return nil, fmt.Errorf("failed to find facility: %w", err)
	}
	if facility == nil || facility.TenantID != tenantID {
		return nil, domain.ErrNotFound
	}

	if err := s.validate(facility, in); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByFacilityAndDate(ctx, in.FacilityID, in.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing bookings: %w", err)
	}
	for i := range existing {
		if !existing[i].IsTerminal() && existing[i].Overlaps(in.Start, in.End) {
			return nil, domain.ErrSlotConflict
		}
	}

	now := s.clock.Now()
	booking := &domain.Booking{
		ID:          uuid.New().String(),
		TenantID:    tenantID,
		FacilityID:  in.FacilityID,
		RequesterID: in.RequesterID,
		Date:        in.Date,
		StartMinute: in.Start,
		EndMinute:   in.End,
		Price:       facility.Price,
		Status:      domain.BookingStatusApproved,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// Charge before persisting: a failed charge must leave no booking behind.
	if facility.Price > 0 {
		chargeID, err := s.gateway.CreateCharge(ctx, in.RequesterID, facility.Price)
		if err != nil {
			s.log.Warn("charge creation failed",
				zap.String("facility_id", in.FacilityID),
				zap.String("requester_id", in.RequesterID),
				zap.Error(err),
			)
			return nil, fmt.Errorf("%w: %v", domain.ErrPaymentInitiation, err)
		}
		booking.ChargeID = chargeID
		booking.Status = domain.BookingStatusPending
	}

	if err := s.repo.SaveInSlot(ctx, booking); err != nil {
		return nil, err
	}

	s.log.Info("booking created",
		zap.String("booking_id", booking.ID),
		zap.String("tenant_id", tenantID),
		zap.String("facility_id", in.FacilityID),
		zap.String("status", string(booking.Status)),
	)

	s.notifyCreated(ctx, booking, facility)

	return booking, nil
}

// notifyCreated emails the requester. Notification failures are logged
// and swallowed, never surfaced to the booking flow.
func (s *Service) notifyCreated(ctx context.Context, booking *domain.Booking, facility *domain.Facility) {
	if s.emails == nil || s.users == nil {
		return
	}
	requester, err := s.users.FindByID(ctx, booking.RequesterID)
	if err != nil || requester == nil || requester.Email == "" {
		return
	}
	err = s.emails.SendTemplate(ctx, requester.Email, "booking_created", map[string]interface{}{
		"Subject":      "Booking received",
		"UserName":     requester.Name,
		"FacilityName": facility.Name,
		"Date":         booking.Date.Format("2006-01-02"),
		"Status":       string(booking.Status),
	})
	if err != nil {
		s.log.Warn("failed to send booking notification",
			zap.String("booking_id", booking.ID),
			zap.Error(err),
		)
	}
}

func (s *Service) validate(facility *domain.Facility, in ports.CreateBookingInput) error {
	loc := s.config.Location
	if loc == nil {
		loc = time.UTC
	}
	// Booking dates are calendar days. Comparing day strings in the
	// business zone keeps a same-day request valid no matter which zone
	// the server clock or the parsed date carries.
	if in.Date.Format("2006-01-02") < s.clock.Now().In(loc).Format("2006-01-02") {
		return domain.ErrPastDate
	}
	if in.Start >= in.End {
		return domain.ErrInvalidTimeRange
	}
	if !facility.WithinWindow(in.Start, in.End) {
		return domain.ErrInvalidTimeRange
	}
	return nil
}

// AttachReceipt records the payment proof and moves the booking to
// UNDER_ANALYSIS so staff can review it.
func (s *Service) AttachReceipt(ctx context.Context, bookingID, requesterID, receiptURL string) error {
	booking, err := s.loadScoped(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking.RequesterID != requesterID {
		return domain.ErrForbidden
	}
	if booking.Status != domain.BookingStatusPending {
		return fmt.Errorf("can only attach a receipt to a pending booking, status is %s", booking.Status)
	}

	booking.ReceiptURL = receiptURL
	booking.Status = domain.BookingStatusUnderAnalysis
	booking.UpdatedAt = s.clock.Now()
	if err := s.repo.Save(ctx, booking); err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}

	s.log.Info("receipt attached", zap.String("booking_id", bookingID))
	return nil
}

// Review approves or rejects a booking under analysis.
func (s *Service) Review(ctx context.Context, bookingID string, approve bool) error {
	booking, err := s.loadScoped(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking.Status != domain.BookingStatusUnderAnalysis && booking.Status != domain.BookingStatusPending {
		return fmt.Errorf("booking is not awaiting review, status is %s", booking.Status)
	}

	if approve {
		booking.Status = domain.BookingStatusApproved
	} else {
		booking.Status = domain.BookingStatusRejected
	}
	booking.UpdatedAt = s.clock.Now()
	if err := s.repo.Save(ctx, booking); err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}

	s.log.Info("booking reviewed",
		zap.String("booking_id", bookingID),
		zap.Bool("approved", approve),
	)
	return nil
}

// Cancel lets the requester withdraw a non-terminal booking.
func (s *Service) Cancel(ctx context.Context, bookingID, requesterID string) error {
	booking, err := s.loadScoped(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking.RequesterID != requesterID {
		return domain.ErrForbidden
	}
	if booking.IsTerminal() {
		return fmt.Errorf("booking cannot be cancelled, status is %s", booking.Status)
	}

	booking.Status = domain.BookingStatusCancelled
	booking.UpdatedAt = s.clock.Now()
	if err := s.repo.Save(ctx, booking); err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}

	s.log.Info("booking cancelled", zap.String("booking_id", bookingID))
	return nil
}

// ListBookings returns the tenant's bookings, optionally filtered by status.
func (s *Service) ListBookings(ctx context.Context, status string, limit, offset int) ([]domain.Booking, error) {
	return s.repo.ListByTenant(ctx, status, limit, offset)
}

// ExpireStaleBookings is the per-minute sweep. PENDING bookings older
// than the grace window expire, unless a payment receipt arrived in the
// meantime: those are forced to UNDER_ANALYSIS so an upload racing the
// sweep is never lost. Rerunning is a no-op since the selection
// predicate excludes everything this pass mutates.
func (s *Service) ExpireStaleBookings(ctx context.Context) error {
	cutoff := s.clock.Now().Add(-s.config.GraceWindow)

	stale, err := s.repo.FindStalePending(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to select stale bookings: %w", err)
	}
	if len(stale) == 0 {
		return nil
	}

	now := s.clock.Now()
	expired := 0
	for i := range stale {
		if stale[i].ReceiptURL != "" {
			stale[i].Status = domain.BookingStatusUnderAnalysis
		} else {
			stale[i].Status = domain.BookingStatusExpired
			expired++
		}
		stale[i].UpdatedAt = now
	}

	if err := s.repo.SaveAll(ctx, stale); err != nil {
		return fmt.Errorf("failed to persist expired bookings: %w", err)
	}

	telemetry.BookingsExpired.Add(float64(expired))
	s.log.Info("expiry sweep completed",
		zap.Int("expired", expired),
		zap.Int("moved_to_analysis", len(stale)-expired),
	)
	return nil
}

func (s *Service) loadScoped(ctx context.Context, bookingID string) (*domain.Booking, error) {
	tenantID, err := tenantctx.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	booking, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	if booking == nil || booking.TenantID != tenantID {
		return nil, domain.ErrNotFound
	}
	return booking, nil
}
