package repository

import (
	"context"
	"errors"

	"vehiql/internal/domain/entity"
	"vehiql/internal/domain/repository"
	apperrors "vehiql/pkg/errors"

	"gorm.io/gorm"
)

type gormCarRepository struct {
	db *gorm.DB
}

func NewGormCarRepository(db *gorm.DB) repository.CarRepository {
	return &gormCarRepository{db: db}
}

func (r *gormCarRepository) GetByID(ctx context.Context, id string) (*entity.Car, error) {
	var car entity.Car
	if err := r.db.WithContext(ctx).First(&car, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Car", err)
		}
		return nil, apperrors.Internal("Failed to get car", err)
	}
	return &car, nil
}

func (r *gormCarRepository) Search(ctx context.Context, filter repository.CarFilter, limit, offset int) ([]entity.Car, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.Car{}).
		Where("status = ?", entity.CarStatusAvailable)

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("make ILIKE ? OR model ILIKE ? OR description ILIKE ?", pattern, pattern, pattern)
	}
	if filter.Make != "" {
		query = query.Where("make = ?", filter.Make)
	}
	if filter.BodyType != "" {
		query = query.Where("body_type = ?", filter.BodyType)
	}
	if filter.FuelType != "" {
		query = query.Where("fuel_type = ?", filter.FuelType)
	}
	if filter.Transmission != "" {
		query = query.Where("transmission = ?", filter.Transmission)
	}
	if filter.MinPrice > 0 {
		query = query.Where("price >= ?", filter.MinPrice)
	}
	if filter.MaxPrice > 0 {
		query = query.Where("price <= ?", filter.MaxPrice)
	}

	// Total is counted before the page window so it stays consistent with
	// the filter regardless of the requested page.
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Internal("Failed to count cars", err)
	}

	switch filter.SortBy {
	case "priceAsc":
		query = query.Order("price ASC")
	case "priceDesc":
		query = query.Order("price DESC")
	default: // newest
		query = query.Order("created_at DESC")
	}

	var cars []entity.Car
	if err := query.Limit(limit).Offset(offset).Find(&cars).Error; err != nil {
		return nil, 0, apperrors.Internal("Failed to search cars", err)
	}

	return cars, total, nil
}

func (r *gormCarRepository) ListFeatured(ctx context.Context, limit int) ([]entity.Car, error) {
	var cars []entity.Car
	err := r.db.WithContext(ctx).
		Where("featured = ? AND status = ?", true, entity.CarStatusAvailable).
		Order("created_at DESC").
		Limit(limit).
		Find(&cars).Error
	if err != nil {
		return nil, apperrors.Internal("Failed to list featured cars", err)
	}
	return cars, nil
}

func (r *gormCarRepository) DistinctMakes(ctx context.Context) ([]string, error) {
	var makes []string
	err := r.db.WithContext(ctx).Model(&entity.Car{}).
		Where("status = ?", entity.CarStatusAvailable).
		Distinct("make").
		Order("make ASC").
		Pluck("make", &makes).Error
	if err != nil {
		return nil, apperrors.Internal("Failed to list makes", err)
	}
	return makes, nil
}

func (r *gormCarRepository) DistinctBodyTypes(ctx context.Context) ([]string, error) {
	var bodyTypes []string
	err := r.db.WithContext(ctx).Model(&entity.Car{}).
		Where("status = ?", entity.CarStatusAvailable).
		Distinct("body_type").
		Order("body_type ASC").
		Pluck("body_type", &bodyTypes).Error
	if err != nil {
		return nil, apperrors.Internal("Failed to list body types", err)
	}
	return bodyTypes, nil
}
