package repository

import (
	"context"

	"vehiql/internal/domain/entity"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)

	// GetOrCreateByExternalID resolves the local user for an identity
	// provider subject, creating the row on first contact.
	GetOrCreateByExternalID(ctx context.Context, externalID string) (*entity.User, error)
}
