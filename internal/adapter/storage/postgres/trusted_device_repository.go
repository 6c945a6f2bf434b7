package postgres

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/seu-repo/condomino/internal/domain"
	"github.com/seu-repo/condomino/internal/ports"
)

type TrustedDeviceRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewTrustedDeviceRepository(db *gorm.DB, log *zap.Logger) ports.TrustedDeviceRepository {
	return &TrustedDeviceRepository{
		db:  db,
		log: log,
	}
}

// Upsert renews the trust window when the (user, device) pair already exists.
func (r *TrustedDeviceRepository) Upsert(ctx context.Context, device *domain.TrustedDevice) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "device_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"expires_at"}),
		}).
		Create(device).Error
}

func (r *TrustedDeviceRepository) Find(ctx context.Context, userID, deviceID string) (*domain.TrustedDevice, error) {
	var device domain.TrustedDevice
	err := r.db.WithContext(ctx).
		First(&device, "user_id = ? AND device_id = ?", userID, deviceID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &device, nil
}
