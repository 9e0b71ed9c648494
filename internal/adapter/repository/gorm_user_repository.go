package repository

import (
	"context"
	"errors"

	"vehiql/internal/domain/entity"
	"vehiql/internal/domain/repository"
	apperrors "vehiql/pkg/errors"
	"vehiql/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type gormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) repository.UserRepository {
	return &gormUserRepository{db: db}
}

func (r *gormUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var user entity.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("User", err)
		}
		return nil, apperrors.Internal("Failed to get user", err)
	}
	return &user, nil
}

func (r *gormUserRepository) GetOrCreateByExternalID(ctx context.Context, externalID string) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).First(&user, "external_id = ?", externalID).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Internal("Failed to get user", err)
	}

	user = entity.User{
		ID:         uuid.NewString(),
		ExternalID: externalID,
	}
	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		// Two first-contact requests can race on the external id; the
		// unique index makes the loser re-read the winner's row.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if err := r.db.WithContext(ctx).First(&user, "external_id = ?", externalID).Error; err != nil {
				return nil, apperrors.Internal("Failed to get user", err)
			}
			return &user, nil
		}
		return nil, apperrors.Internal("Failed to create user", err)
	}

	logger.Info("Created user %s for external subject %s", user.ID, externalID)
	return &user, nil
}
