package repository

import (
	"context"
	"errors"

	"vehiql/internal/domain/entity"
	"vehiql/internal/domain/repository"
	apperrors "vehiql/pkg/errors"

	"gorm.io/gorm"
)

type gormBookingRepository struct {
	db *gorm.DB
}

func NewGormBookingRepository(db *gorm.DB) repository.BookingRepository {
	return &gormBookingRepository{db: db}
}

func (r *gormBookingRepository) GetByID(ctx context.Context, id string) (*entity.TestDriveBooking, error) {
	var booking entity.TestDriveBooking
	if err := r.db.WithContext(ctx).First(&booking, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Booking", err)
		}
		return nil, apperrors.Internal("Failed to get booking", err)
	}
	return &booking, nil
}

func (r *gormBookingRepository) Create(ctx context.Context, booking *entity.TestDriveBooking) error {
	if err := r.db.WithContext(ctx).Create(booking).Error; err != nil {
		return apperrors.Internal("Failed to create booking", err)
	}
	return nil
}

func (r *gormBookingRepository) UpdateStatus(ctx context.Context, id string, status entity.BookingStatus) error {
	result := r.db.WithContext(ctx).Model(&entity.TestDriveBooking{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return apperrors.Internal("Failed to update booking status", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("Booking", nil)
	}
	return nil
}

func (r *gormBookingRepository) ListByUserAndCar(ctx context.Context, userID, carID string) ([]entity.TestDriveBooking, error) {
	var bookings []entity.TestDriveBooking
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND car_id = ?", userID, carID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, apperrors.Internal("Failed to list bookings", err)
	}
	return bookings, nil
}

func (r *gormBookingRepository) ListByUser(ctx context.Context, userID string) ([]entity.TestDriveBooking, error) {
	var bookings []entity.TestDriveBooking
	err := r.db.WithContext(ctx).
		Preload("Car").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, apperrors.Internal("Failed to list bookings", err)
	}
	return bookings, nil
}
