package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"teamsynchub/internal/domain/entity"
	"teamsynchub/internal/domain/repository"
	"teamsynchub/pkg/errors"
)

// MemoryStore is an in-process document store with the same observable
// behaviour as the Firestore collections. Used for development, tests and
// admin dry runs.
type MemoryStore struct {
	mu        sync.RWMutex
	users     map[string]entity.User
	topics    map[string]*memoryTopic
	sales     map[string]entity.SalesRecord
	shipments map[string]entity.Shipment
	lastTime  time.Time
}

type memoryTopic struct {
	topic    entity.Topic
	messages []entity.Message
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:     make(map[string]entity.User),
		topics:    make(map[string]*memoryTopic),
		sales:     make(map[string]entity.SalesRecord),
		shipments: make(map[string]entity.Shipment),
	}
}

// serverTime stands in for a server timestamp. Values are strictly
// increasing so ordering by time is deterministic. Caller holds mu.
func (s *MemoryStore) serverTime() time.Time {
	now := time.Now().UTC()
	if !now.After(s.lastTime) {
		now = s.lastTime.Add(time.Microsecond)
	}
	s.lastTime = now
	return now
}

func newID() string {
	return uuid.New().String()
}

type memoryUserRepository struct {
	store *MemoryStore
}

func NewMemoryUserRepository(store *MemoryStore) repository.UserRepository {
	return &memoryUserRepository{store: store}
}

func (r *memoryUserRepository) NewID() string {
	return newID()
}

func (r *memoryUserRepository) Create(ctx context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if user.ID == "" {
		user.ID = newID()
	}
	if _, exists := r.store.users[user.ID]; exists {
		return errors.Conflict("User already exists")
	}
	r.store.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	user, ok := r.store.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return &user, nil
}

func (r *memoryUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	email = entity.NormalizeEmail(email)
	for _, user := range r.store.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *memoryUserRepository) List(ctx context.Context) ([]*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	users := make([]*entity.User, 0, len(r.store.users))
	for _, user := range r.store.users {
		u := user
		users = append(users, &u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *memoryUserRepository) Update(ctx context.Context, id string, patch entity.UserPatch) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	user, ok := r.store.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	user = patch.Apply(user)
	r.store.users[id] = user
	return &user, nil
}

type memoryTopicRepository struct {
	store *MemoryStore
}

func NewMemoryTopicRepository(store *MemoryStore) repository.TopicRepository {
	return &memoryTopicRepository{store: store}
}

func (r *memoryTopicRepository) List(ctx context.Context) ([]*entity.Topic, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	topics := make([]*entity.Topic, 0, len(r.store.topics))
	for _, t := range r.store.topics {
		topic := t.topic.Clone()
		topic.Messages = nil
		topics = append(topics, &topic)
	}
	sort.Slice(topics, func(i, j int) bool {
		if topics[i].Name != topics[j].Name {
			return topics[i].Name < topics[j].Name
		}
		return topics[i].ID < topics[j].ID
	})
	return topics, nil
}

func (r *memoryTopicRepository) Create(ctx context.Context, topic *entity.Topic, first *entity.Message) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	topic.ID = newID()
	first.ID = newID()
	first.Timestamp = r.store.serverTime()

	stored := topic.Clone()
	stored.Messages = nil
	r.store.topics[topic.ID] = &memoryTopic{
		topic:    stored,
		messages: []entity.Message{*first},
	}
	return nil
}

func (r *memoryTopicRepository) ListMessages(ctx context.Context, topicID string) ([]*entity.Message, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	t, ok := r.store.topics[topicID]
	if !ok {
		return nil, nil
	}
	messages := make([]*entity.Message, 0, len(t.messages))
	for i := range t.messages {
		m := t.messages[i]
		messages = append(messages, &m)
	}
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].Timestamp.Before(messages[j].Timestamp)
	})
	return messages, nil
}

func (r *memoryTopicRepository) AppendMessage(ctx context.Context, topicID string, message *entity.Message) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	t, ok := r.store.topics[topicID]
	if !ok {
		return errors.NotFound("Topic", nil)
	}
	message.ID = newID()
	message.Timestamp = r.store.serverTime()
	t.messages = append(t.messages, *message)
	return nil
}

type memorySalesRecordRepository struct {
	store *MemoryStore
}

func NewMemorySalesRecordRepository(store *MemoryStore) repository.SalesRecordRepository {
	return &memorySalesRecordRepository{store: store}
}

func (r *memorySalesRecordRepository) List(ctx context.Context) ([]*entity.SalesRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	records := make([]*entity.SalesRecord, 0, len(r.store.sales))
	for _, record := range r.store.sales {
		rec := record
		records = append(records, &rec)
	}
	sort.Slice(records, func(i, j int) bool {
		if !records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].CreatedAt.After(records[j].CreatedAt)
		}
		return records[i].ID < records[j].ID
	})
	return records, nil
}

func (r *memorySalesRecordRepository) GetByID(ctx context.Context, id string) (*entity.SalesRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	record, ok := r.store.sales[id]
	if !ok {
		return nil, errors.NotFound("Sales record", nil)
	}
	return &record, nil
}

func (r *memorySalesRecordRepository) Create(ctx context.Context, record *entity.SalesRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	record.ID = newID()
	record.CreatedAt = r.store.serverTime()
	r.store.sales[record.ID] = *record
	return nil
}

func (r *memorySalesRecordRepository) Update(ctx context.Context, id string, patch entity.SalesRecordPatch) (*entity.SalesRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	record, ok := r.store.sales[id]
	if !ok {
		return nil, errors.NotFound("Sales record", nil)
	}
	record = patch.Apply(record)
	r.store.sales[id] = record
	return &record, nil
}

func (r *memorySalesRecordRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.sales[id]; !ok {
		return errors.NotFound("Sales record", nil)
	}
	delete(r.store.sales, id)
	return nil
}

type memoryShipmentRepository struct {
	store *MemoryStore
}

func NewMemoryShipmentRepository(store *MemoryStore) repository.ShipmentRepository {
	return &memoryShipmentRepository{store: store}
}

func (r *memoryShipmentRepository) List(ctx context.Context) ([]*entity.Shipment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	shipments := make([]*entity.Shipment, 0, len(r.store.shipments))
	for _, shipment := range r.store.shipments {
		s := shipment
		shipments = append(shipments, &s)
	}
	sort.Slice(shipments, func(i, j int) bool {
		if shipments[i].ShipmentDate != shipments[j].ShipmentDate {
			return shipments[i].ShipmentDate > shipments[j].ShipmentDate
		}
		return shipments[i].ID < shipments[j].ID
	})
	return shipments, nil
}

func (r *memoryShipmentRepository) Create(ctx context.Context, shipment *entity.Shipment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	shipment.ID = newID()
	shipment.CreatedAt = r.store.serverTime()
	r.store.shipments[shipment.ID] = *shipment
	return nil
}

func (r *memoryShipmentRepository) Update(ctx context.Context, id string, patch entity.ShipmentPatch) (*entity.Shipment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	shipment, ok := r.store.shipments[id]
	if !ok {
		return nil, errors.NotFound("Shipment", nil)
	}
	shipment = patch.Apply(shipment)
	r.store.shipments[id] = shipment
	return &shipment, nil
}

func (r *memoryShipmentRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.shipments[id]; !ok {
		return errors.NotFound("Shipment", nil)
	}
	delete(r.store.shipments, id)
	return nil
}

type memorySeeder struct {
	store *MemoryStore
}

func NewMemorySeeder(store *MemoryStore) repository.Seeder {
	return &memorySeeder{store: store}
}

func (s *memorySeeder) SeedIfEmpty(ctx context.Context, dataset *entity.Dataset) (bool, error) {
	st := s.store
	st.mu.Lock()
	defer st.mu.Unlock()

	if len(st.users) > 0 {
		return false, nil
	}

	for _, user := range dataset.Users {
		u := *user
		if u.ID == "" {
			u.ID = newID()
		}
		st.users[u.ID] = u
	}
	for _, topic := range dataset.Topics {
		t := topic.Clone()
		if t.ID == "" {
			t.ID = newID()
		}
		messages := t.Messages
		t.Messages = nil
		for i := range messages {
			if messages[i].ID == "" {
				messages[i].ID = newID()
			}
			if messages[i].Timestamp.IsZero() {
				messages[i].Timestamp = st.serverTime()
			}
		}
		st.topics[t.ID] = &memoryTopic{topic: t, messages: messages}
	}
	for _, record := range dataset.SalesRecords {
		rec := *record
		if rec.ID == "" {
			rec.ID = newID()
		}
		if rec.CreatedAt.IsZero() {
			rec.CreatedAt = st.serverTime()
		}
		st.sales[rec.ID] = rec
	}
	for _, shipment := range dataset.Shipments {
		sh := *shipment
		if sh.ID == "" {
			sh.ID = newID()
		}
		if sh.CreatedAt.IsZero() {
			sh.CreatedAt = st.serverTime()
		}
		st.shipments[sh.ID] = sh
	}
	return true, nil
}
