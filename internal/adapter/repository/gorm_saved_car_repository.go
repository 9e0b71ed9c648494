package repository

import (
	"context"
	"errors"

	"vehiql/internal/domain/entity"
	"vehiql/internal/domain/repository"
	apperrors "vehiql/pkg/errors"

	"gorm.io/gorm"
)

type gormSavedCarRepository struct {
	db *gorm.DB
}

func NewGormSavedCarRepository(db *gorm.DB) repository.SavedCarRepository {
	return &gormSavedCarRepository{db: db}
}

func (r *gormSavedCarRepository) Exists(ctx context.Context, userID, carID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.SavedCar{}).
		Where("user_id = ? AND car_id = ?", userID, carID).
		Count(&count).Error
	if err != nil {
		return false, apperrors.Internal("Failed to check wishlist", err)
	}
	return count > 0, nil
}

func (r *gormSavedCarRepository) Create(ctx context.Context, saved *entity.SavedCar) error {
	if err := r.db.WithContext(ctx).Create(saved).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Conflict("Car already in wishlist")
		}
		return apperrors.Internal("Failed to save car", err)
	}
	return nil
}

func (r *gormSavedCarRepository) Delete(ctx context.Context, userID, carID string) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND car_id = ?", userID, carID).
		Delete(&entity.SavedCar{})
	if result.Error != nil {
		return false, apperrors.Internal("Failed to remove saved car", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *gormSavedCarRepository) ListByUser(ctx context.Context, userID string) ([]entity.SavedCar, error) {
	var saved []entity.SavedCar
	err := r.db.WithContext(ctx).
		Preload("Car").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&saved).Error
	if err != nil {
		return nil, apperrors.Internal("Failed to list saved cars", err)
	}
	return saved, nil
}
