package repository

import (
	"context"

	"vehiql/internal/domain/entity"
)

type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*entity.TestDriveBooking, error)
	Create(ctx context.Context, booking *entity.TestDriveBooking) error
	UpdateStatus(ctx context.Context, id string, status entity.BookingStatus) error

	// ListByUserAndCar returns every booking ever made for the pair,
	// regardless of status. Active-booking selection happens in the usecase.
	ListByUserAndCar(ctx context.Context, userID, carID string) ([]entity.TestDriveBooking, error)

	// ListByUser returns the user's bookings with cars preloaded,
	// newest first.
	ListByUser(ctx context.Context, userID string) ([]entity.TestDriveBooking, error)
}
