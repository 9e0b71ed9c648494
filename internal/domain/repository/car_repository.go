package repository

import (
	"context"

	"vehiql/internal/domain/entity"
)

// CarFilter holds the conjunctive search facets. Empty string fields are
// unconstrained; MaxPrice <= 0 means unbounded above.
type CarFilter struct {
	Search       string
	Make         string
	BodyType     string
	FuelType     string
	Transmission string
	MinPrice     float64
	MaxPrice     float64
	SortBy       string // "newest", "priceAsc", "priceDesc"
}

type CarRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Car, error)

	// Search returns one page of AVAILABLE cars matching every facet, plus
	// the total match count independent of the page window.
	Search(ctx context.Context, filter CarFilter, limit, offset int) ([]entity.Car, int64, error)

	ListFeatured(ctx context.Context, limit int) ([]entity.Car, error)

	DistinctMakes(ctx context.Context) ([]string, error)
	DistinctBodyTypes(ctx context.Context) ([]string, error)
}
