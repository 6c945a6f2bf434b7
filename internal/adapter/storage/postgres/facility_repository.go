package postgres

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/seu-repo/condomino/internal/domain"
	"github.com/seu-repo/condomino/internal/ports"
)

type FacilityRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewFacilityRepository(db *gorm.DB, log *zap.Logger) ports.FacilityRepository {
	return &FacilityRepository{
		db:  db,
		log: log,
	}
}

func (r *FacilityRepository) Save(ctx context.Context, facility *domain.Facility) error {
	return r.db.WithContext(ctx).Save(facility).Error
}

func (r *FacilityRepository) FindByID(ctx context.Context, id string) (*domain.Facility, error) {
	var facility domain.Facility
	err := r.db.WithContext(ctx).First(&facility, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &facility, nil
}
