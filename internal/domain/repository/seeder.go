package repository

import (
	"context"

	"teamsynchub/internal/domain/entity"
)

type Seeder interface {
	// SeedIfEmpty writes the dataset atomically when the users collection
	// is empty and reports whether it did.
	SeedIfEmpty(ctx context.Context, dataset *entity.Dataset) (bool, error)
}
