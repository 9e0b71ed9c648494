package repository

import (
	"context"
	"errors"

	"vehiql/internal/domain/entity"
	"vehiql/internal/domain/repository"
	apperrors "vehiql/pkg/errors"

	"gorm.io/gorm"
)

type gormDealershipRepository struct {
	db *gorm.DB
}

func NewGormDealershipRepository(db *gorm.DB) repository.DealershipRepository {
	return &gormDealershipRepository{db: db}
}

func (r *gormDealershipRepository) Get(ctx context.Context) (*entity.DealershipInfo, error) {
	var dealership entity.DealershipInfo
	err := r.db.WithContext(ctx).
		Preload("WorkingHours").
		First(&dealership).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Dealership", err)
		}
		return nil, apperrors.Internal("Failed to get dealership", err)
	}
	return &dealership, nil
}
