package repository

import (
	"context"

	"vehiql/internal/domain/entity"
)

type SavedCarRepository interface {
	Exists(ctx context.Context, userID, carID string) (bool, error)

	// Create inserts the membership row. A racing insert for the same pair
	// surfaces as a CONFLICT error from the unique constraint.
	Create(ctx context.Context, saved *entity.SavedCar) error

	// Delete removes the pair's row and reports whether a row was deleted.
	Delete(ctx context.Context, userID, carID string) (bool, error)

	// ListByUser returns the user's saved rows with cars preloaded,
	// newest-saved first.
	ListByUser(ctx context.Context, userID string) ([]entity.SavedCar, error)
}
