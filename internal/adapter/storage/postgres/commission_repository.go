package postgres

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/seu-repo/condomino/internal/domain"
	"github.com/seu-repo/condomino/internal/ports"
)

type CommissionRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewCommissionRepository(db *gorm.DB, log *zap.Logger) ports.CommissionRepository {
	return &CommissionRepository{
		db:  db,
		log: log,
	}
}

func (r *CommissionRepository) Save(ctx context.Context, commission *domain.Commission) error {
	return r.db.WithContext(ctx).Save(commission).Error
}

// FindDueBlocked selects BLOCKED commissions whose release date has
// been reached at the given day.
func (r *CommissionRepository) FindDueBlocked(ctx context.Context, affiliateID string, asOf time.Time) ([]domain.Commission, error) {
	var commissions []domain.Commission
	err := r.db.WithContext(ctx).
		Where("affiliate_id = ? AND status = ? AND release_date <= ?",
			affiliateID, domain.CommissionStatusBlocked, asOf).
		Find(&commissions).Error
	if err != nil {
		return nil, err
	}
	return commissions, nil
}

func (r *CommissionRepository) FindByStatus(ctx context.Context, affiliateID string, status domain.CommissionStatus) ([]domain.Commission, error) {
	var commissions []domain.Commission
	err := r.db.WithContext(ctx).
		Where("affiliate_id = ? AND status = ?", affiliateID, status).
		Find(&commissions).Error
	if err != nil {
		return nil, err
	}
	return commissions, nil
}

func (r *CommissionRepository) ListByAffiliate(ctx context.Context, affiliateID string, limit, offset int) ([]domain.Commission, error) {
	query := r.db.WithContext(ctx).Where("affiliate_id = ?", affiliateID)
	if limit > 0 {
		query = query.Limit(limit)
	}

	var commissions []domain.Commission
	err := query.Offset(offset).Order("sale_date DESC").Find(&commissions).Error
	if err != nil {
		return nil, err
	}
	return commissions, nil
}

// AffiliateIDsWithOpen lists every affiliate holding commissions the
// settlement sweep can act on.
func (r *CommissionRepository) AffiliateIDsWithOpen(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&domain.Commission{}).
		Where("status IN ?", []domain.CommissionStatus{
			domain.CommissionStatusBlocked,
			domain.CommissionStatusAvailable,
		}).
		Distinct("affiliate_id").
		Pluck("affiliate_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
