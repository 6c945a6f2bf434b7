package postgres

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/seu-repo/condomino/internal/domain"
	"github.com/seu-repo/condomino/internal/ports"
)

type AffiliateRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewAffiliateRepository(db *gorm.DB, log *zap.Logger) ports.AffiliateRepository {
	return &AffiliateRepository{
		db:  db,
		log: log,
	}
}

func (r *AffiliateRepository) Save(ctx context.Context, profile *domain.AffiliateProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *AffiliateRepository) FindByID(ctx context.Context, id string) (*domain.AffiliateProfile, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *AffiliateRepository) FindByUserID(ctx context.Context, userID string) (*domain.AffiliateProfile, error) {
	return r.findOne(ctx, "user_id = ?", userID)
}

func (r *AffiliateRepository) FindByReferralCode(ctx context.Context, code string) (*domain.AffiliateProfile, error) {
	return r.findOne(ctx, "referral_code = ?", code)
}

func (r *AffiliateRepository) findOne(ctx context.Context, query string, arg interface{}) (*domain.AffiliateProfile, error) {
	var profile domain.AffiliateProfile
	err := r.db.WithContext(ctx).First(&profile, query, arg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}
