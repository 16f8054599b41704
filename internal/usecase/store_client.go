package usecase

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"teamsynchub/internal/domain/entity"
	"teamsynchub/internal/domain/listview"
	"teamsynchub/internal/domain/repository"
	"teamsynchub/pkg/logger"
)

// Repositories groups one backend's collection adapters.
type Repositories struct {
	Users        repository.UserRepository
	Topics       repository.TopicRepository
	SalesRecords repository.SalesRecordRepository
	Shipments    repository.ShipmentRepository
	Seeder       repository.Seeder
}

// StoreClient is the single entry point to the document store. Reads come
// back in display order; writes are passed through and failures logged.
type StoreClient struct {
	repos Repositories

	seedMu sync.Mutex
	seeded bool
	now    func() time.Time
}

func NewStoreClient(repos Repositories) *StoreClient {
	return &StoreClient{
		repos: repos,
		now:   time.Now,
	}
}

func (c *StoreClient) Users() repository.UserRepository {
	return c.repos.Users
}

// EnsureSeeded writes the demo dataset when the store has no users. Once a
// check has succeeded it is never repeated for the life of the process.
func (c *StoreClient) EnsureSeeded(ctx context.Context) error {
	c.seedMu.Lock()
	defer c.seedMu.Unlock()

	if c.seeded {
		return nil
	}

	wrote, err := c.repos.Seeder.SeedIfEmpty(ctx, SeedDataset(c.now()))
	if err != nil {
		logger.Error("Database seeding failed: %v", err)
		return err
	}
	if wrote {
		logger.Info("Seeded empty database with demo data")
	}
	c.seeded = true
	return nil
}

// InitializeAndFetch seeds if needed, then loads every collection.
func (c *StoreClient) InitializeAndFetch(ctx context.Context) (*entity.Dataset, error) {
	if err := c.EnsureSeeded(ctx); err != nil {
		return nil, err
	}
	return c.FetchAll(ctx)
}

// FetchAll loads every collection concurrently, each in display order.
func (c *StoreClient) FetchAll(ctx context.Context) (*entity.Dataset, error) {
	var ds entity.Dataset
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		users, err := c.repos.Users.List(gctx)
		ds.Users = users
		return err
	})
	g.Go(func() error {
		topics, err := c.FetchTopics(gctx)
		ds.Topics = topics
		return err
	})
	g.Go(func() error {
		records, err := c.FetchSalesRecords(gctx)
		ds.SalesRecords = records
		return err
	})
	g.Go(func() error {
		shipments, err := c.repos.Shipments.List(gctx)
		ds.Shipments = shipments
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &ds, nil
}

// FetchTopics returns topics in collation order with their messages
// attached oldest first.
func (c *StoreClient) FetchTopics(ctx context.Context) ([]*entity.Topic, error) {
	topics, err := c.repos.Topics.List(ctx)
	if err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, topic := range topics {
		topic := topic
		g.Go(func() error {
			messages, err := c.repos.Topics.ListMessages(gctx, topic.ID)
			if err != nil {
				return err
			}
			topic.Messages = make([]entity.Message, 0, len(messages))
			for _, m := range messages {
				topic.Messages = append(topic.Messages, *m)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return listview.SortTopics(topics), nil
}

// FetchSalesRecords returns records in board order.
func (c *StoreClient) FetchSalesRecords(ctx context.Context) ([]*entity.SalesRecord, error) {
	records, err := c.repos.SalesRecords.List(ctx)
	if err != nil {
		return nil, err
	}
	return listview.SortSalesRecords(records), nil
}

func (c *StoreClient) UpdateUser(ctx context.Context, id string, patch entity.UserPatch) (*entity.User, error) {
	user, err := c.repos.Users.Update(ctx, id, patch)
	if err != nil {
		logger.LogMutationError("users", id, "update", err)
	}
	return user, err
}

func (c *StoreClient) CreateTopic(ctx context.Context, topic *entity.Topic, first *entity.Message) error {
	err := c.repos.Topics.Create(ctx, topic, first)
	if err != nil {
		logger.LogMutationError("topics", topic.Name, "create", err)
	}
	return err
}

func (c *StoreClient) AppendMessage(ctx context.Context, topicID string, message *entity.Message) error {
	err := c.repos.Topics.AppendMessage(ctx, topicID, message)
	if err != nil {
		logger.LogMutationError("messages", topicID, "create", err)
	}
	return err
}

func (c *StoreClient) CreateSalesRecord(ctx context.Context, record *entity.SalesRecord) error {
	err := c.repos.SalesRecords.Create(ctx, record)
	if err != nil {
		logger.LogMutationError("projects", "", "create", err)
	}
	return err
}

func (c *StoreClient) UpdateSalesRecord(ctx context.Context, id string, patch entity.SalesRecordPatch) (*entity.SalesRecord, error) {
	record, err := c.repos.SalesRecords.Update(ctx, id, patch)
	if err != nil {
		logger.LogMutationError("projects", id, "update", err)
	}
	return record, err
}

func (c *StoreClient) DeleteSalesRecord(ctx context.Context, id string) error {
	err := c.repos.SalesRecords.Delete(ctx, id)
	if err != nil {
		logger.LogMutationError("projects", id, "delete", err)
	}
	return err
}

func (c *StoreClient) CreateShipment(ctx context.Context, shipment *entity.Shipment) error {
	err := c.repos.Shipments.Create(ctx, shipment)
	if err != nil {
		logger.LogMutationError("shipments", "", "create", err)
	}
	return err
}

func (c *StoreClient) UpdateShipment(ctx context.Context, id string, patch entity.ShipmentPatch) (*entity.Shipment, error) {
	shipment, err := c.repos.Shipments.Update(ctx, id, patch)
	if err != nil {
		logger.LogMutationError("shipments", id, "update", err)
	}
	return shipment, err
}

func (c *StoreClient) DeleteShipment(ctx context.Context, id string) error {
	err := c.repos.Shipments.Delete(ctx, id)
	if err != nil {
		logger.LogMutationError("shipments", id, "delete", err)
	}
	return err
}
