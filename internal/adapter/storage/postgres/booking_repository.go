package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/seu-repo/condomino/internal/domain"
	"github.com/seu-repo/condomino/internal/ports"
	"github.com/seu-repo/condomino/internal/tenantctx"
)

// Postgres error codes worth translating into domain errors.
const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
)

var openStatuses = []domain.BookingStatus{
	domain.BookingStatusPending,
	domain.BookingStatusUnderAnalysis,
	domain.BookingStatusApproved,
}

type BookingRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewBookingRepository(db *gorm.DB, log *zap.Logger) ports.BookingRepository {
	return &BookingRepository{
		db:  db,
		log: log,
	}
}

func (r *BookingRepository) Save(ctx context.Context, booking *domain.Booking) error {
	return r.db.WithContext(ctx).Save(booking).Error
}

func (r *BookingRepository) FindByID(ctx context.Context, id string) (*domain.Booking, error) {
	var booking domain.Booking
	err := r.db.WithContext(ctx).First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepository) FindByFacilityAndDate(ctx context.Context, facilityID string, date time.Time) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := r.db.WithContext(ctx).
		Where("facility_id = ? AND date = ?", facilityID, date).
		Order("start_minute").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// SaveInSlot inserts the booking after re-checking the slot inside a
// transaction. The facility's rows for the day are locked first, so two
// concurrent requests for the same slot serialize here; the loser gets
// ErrSlotConflict. The exclusion constraint on (facility_id, date,
// minute range) is the backstop for writers that bypass this path.
func (r *BookingRepository) SaveInSlot(ctx context.Context, booking *domain.Booking) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing []domain.Booking
		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("facility_id = ? AND date = ? AND status IN ?", booking.FacilityID, booking.Date, openStatuses).
			Find(&existing).Error
		if err != nil {
			return err
		}
		for i := range existing {
			if existing[i].Overlaps(booking.StartMinute, booking.EndMinute) {
				return domain.ErrSlotConflict
			}
		}
		return tx.Create(booking).Error
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && (pgErr.Code == pgExclusionViolation || pgErr.Code == pgUniqueViolation) {
			return domain.ErrSlotConflict
		}
		return err
	}
	return nil
}

// FindStalePending selects PENDING bookings created before the cutoff.
// Everything the expiry sweep mutates leaves PENDING, so the selection
// naturally excludes rows already handled by a previous pass.
func (r *BookingRepository) FindStalePending(ctx context.Context, cutoff time.Time) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := r.db.WithContext(ctx).
		Where("status = ? AND created_at < ?", domain.BookingStatusPending, cutoff).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingRepository) SaveAll(ctx context.Context, bookings []domain.Booking) error {
	if len(bookings) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range bookings {
			if err := tx.Save(&bookings[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ListByTenant is tenant-scoped through the ambient context and fails
// closed when no tenant is bound.
func (r *BookingRepository) ListByTenant(ctx context.Context, status string, limit, offset int) ([]domain.Booking, error) {
	tenantID, err := tenantctx.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var bookings []domain.Booking
	err = query.Offset(offset).Order("date DESC, start_minute").Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}
