package postgres

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/seu-repo/condomino/internal/domain"
	"github.com/seu-repo/condomino/internal/ports"
)

type TenantRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewTenantRepository(db *gorm.DB, log *zap.Logger) ports.TenantRepository {
	return &TenantRepository{
		db:  db,
		log: log,
	}
}

func (r *TenantRepository) Save(ctx context.Context, tenant *domain.Tenant) error {
	return r.db.WithContext(ctx).Save(tenant).Error
}

func (r *TenantRepository) FindByID(ctx context.Context, id string) (*domain.Tenant, error) {
	var tenant domain.Tenant
	err := r.db.WithContext(ctx).First(&tenant, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tenant, nil
}
