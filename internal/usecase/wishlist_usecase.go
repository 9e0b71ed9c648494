package usecase

import (
	"context"

	"vehiql/internal/domain/entity"
	"vehiql/internal/domain/repository"
	"vehiql/pkg/errors"
	"vehiql/pkg/logger"

	"github.com/google/uuid"
)

type WishlistUseCase struct {
	savedCarRepo repository.SavedCarRepository
	carRepo      repository.CarRepository
	userRepo     repository.UserRepository
}

func NewWishlistUseCase(
	savedCarRepo repository.SavedCarRepository,
	carRepo repository.CarRepository,
	userRepo repository.UserRepository,
) *WishlistUseCase {
	return &WishlistUseCase{
		savedCarRepo: savedCarRepo,
		carRepo:      carRepo,
		userRepo:     userRepo,
	}
}

type ToggleResult struct {
	Saved bool `json:"saved"`
}

// Toggle flips wishlist membership for the pair. The flip is keyed on the
// row's state at the atomic check-and-write, never on client-supplied
// state. A create that loses a race to a concurrent toggler reports the
// already-correct end state instead of surfacing the uniqueness violation.
func (u *WishlistUseCase) Toggle(ctx context.Context, externalUserID, carID string) (*ToggleResult, error) {
	if externalUserID == "" {
		return nil, errors.Unauthorized("Sign in to save cars", nil)
	}

	if _, err := u.carRepo.GetByID(ctx, carID); err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetOrCreateByExternalID(ctx, externalUserID)
	if err != nil {
		return nil, err
	}

	exists, err := u.savedCarRepo.Exists(ctx, user.ID, carID)
	if err != nil {
		return nil, err
	}

	if exists {
		if _, err := u.savedCarRepo.Delete(ctx, user.ID, carID); err != nil {
			return nil, err
		}
		logger.Debug("Removed car %s from wishlist for user %s", carID, user.ID)
		return &ToggleResult{Saved: false}, nil
	}

	saved := &entity.SavedCar{
		ID:     uuid.NewString(),
		UserID: user.ID,
		CarID:  carID,
	}
	if err := u.savedCarRepo.Create(ctx, saved); err != nil {
		// A concurrent toggle created the row first; the pair is saved
		// either way.
		if errors.Is(err, "CONFLICT") {
			return &ToggleResult{Saved: true}, nil
		}
		return nil, err
	}

	logger.Debug("Added car %s to wishlist for user %s", carID, user.ID)
	return &ToggleResult{Saved: true}, nil
}

// GetSavedCars returns the user's wishlisted cars, newest-saved first.
func (u *WishlistUseCase) GetSavedCars(ctx context.Context, externalUserID string) ([]CarResponse, error) {
	if externalUserID == "" {
		return nil, errors.Unauthorized("Sign in to view saved cars", nil)
	}

	user, err := u.userRepo.GetOrCreateByExternalID(ctx, externalUserID)
	if err != nil {
		return nil, err
	}

	saved, err := u.savedCarRepo.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	cars := make([]CarResponse, 0, len(saved))
	for i := range saved {
		cars = append(cars, toCarResponse(&saved[i].Car))
	}
	return cars, nil
}
