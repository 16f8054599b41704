package bootstrap

import (
	"context"
	"fmt"

	"teamsynchub/internal/adapter/repository"
	"teamsynchub/internal/infrastructure/firebase"
	"teamsynchub/internal/usecase"
	"teamsynchub/pkg/config"
	"teamsynchub/pkg/logger"
)

// Store bundles the repositories for the configured driver with the
// function that releases them.
type Store struct {
	Repositories usecase.Repositories
	Close        func() error
}

// OpenStore builds the repositories selected by cfg.StoreDriver.
func OpenStore(ctx context.Context, cfg *config.Config) (*Store, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		logger.Info("Using in-memory entity store")
		mem := repository.NewMemoryStore()
		return &Store{
			Repositories: usecase.Repositories{
				Users:        repository.NewMemoryUserRepository(mem),
				Topics:       repository.NewMemoryTopicRepository(mem),
				SalesRecords: repository.NewMemorySalesRecordRepository(mem),
				Shipments:    repository.NewMemoryShipmentRepository(mem),
				Seeder:       repository.NewMemorySeeder(mem),
			},
			Close: func() error { return nil },
		}, nil

	case config.StoreDriverFirestore:
		client, err := firebase.NewFirestoreClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		logger.Info("Using Firestore entity store for project %q", cfg.FirebaseProject)
		return &Store{
			Repositories: usecase.Repositories{
				Users:        repository.NewFirestoreUserRepository(client),
				Topics:       repository.NewFirestoreTopicRepository(client),
				SalesRecords: repository.NewFirestoreSalesRecordRepository(client),
				Shipments:    repository.NewFirestoreShipmentRepository(client),
				Seeder:       repository.NewFirestoreSeeder(client),
			},
			Close: client.Close,
		}, nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
