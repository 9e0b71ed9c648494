package repository

import (
	"context"

	"vehiql/internal/domain/entity"
)

type DealershipRepository interface {
	// Get returns the singleton dealership record with its working hours,
	// or a NOT_FOUND error when the deployment has none configured.
	Get(ctx context.Context) (*entity.DealershipInfo, error)
}
