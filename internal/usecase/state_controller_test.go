package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	memstore "teamsynchub/internal/adapter/repository"
	"teamsynchub/internal/domain/entity"
	"teamsynchub/internal/domain/listview"
	"teamsynchub/internal/domain/repository"
	"teamsynchub/internal/domain/service"
	"teamsynchub/pkg/errors"
)

type recordingNotifier struct {
	mu     sync.Mutex
	events []string
}

func (n *recordingNotifier) Publish(eventType string, payload interface{}) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, eventType)
}

func (n *recordingNotifier) Events() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.events...)
}

func memoryRepositories(store *memstore.MemoryStore) Repositories {
	return Repositories{
		Users:        memstore.NewMemoryUserRepository(store),
		Topics:       memstore.NewMemoryTopicRepository(store),
		SalesRecords: memstore.NewMemorySalesRecordRepository(store),
		Shipments:    memstore.NewMemoryShipmentRepository(store),
		Seeder:       memstore.NewMemorySeeder(store),
	}
}

type fixture struct {
	ctrl     *StateController
	store    *StoreClient
	repos    Repositories
	notifier *recordingNotifier
}

func newFixture(t *testing.T, adjust func(*Repositories)) *fixture {
	t.Helper()
	repos := memoryRepositories(memstore.NewMemoryStore())
	if adjust != nil {
		adjust(&repos)
	}
	store := NewStoreClient(repos)
	notifier := &recordingNotifier{}
	ctrl := NewStateController(NewAuthUseCase(repos.Users), store, service.NewSummarizer(nil), WithNotifier(notifier))
	return &fixture{ctrl: ctrl, store: store, repos: repos, notifier: notifier}
}

func newReadyFixture(t *testing.T, adjust func(*Repositories)) *fixture {
	t.Helper()
	f := newFixture(t, adjust)
	_, err := f.ctrl.Login(context.Background(), "ali@buteo.com")
	require.NoError(t, err)
	return f
}

// assertNoDrift checks that local collections match what the store holds.
func assertNoDrift(t *testing.T, f *fixture) {
	t.Helper()
	ctx := context.Background()
	state := f.ctrl.Snapshot()

	remoteSales, err := f.store.FetchSalesRecords(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, derefSales(remoteSales), derefSales(state.SalesRecords))

	remoteShipments, err := f.repos.Shipments.List(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, derefShipments(remoteShipments), derefShipments(state.Shipments))

	remoteTopics, err := f.store.FetchTopics(ctx)
	require.NoError(t, err)
	require.Len(t, state.Topics, len(remoteTopics))
	for _, rt := range remoteTopics {
		var local *entity.Topic
		for _, lt := range state.Topics {
			if lt.ID == rt.ID {
				local = lt
			}
		}
		require.NotNil(t, local, rt.ID)
		assert.Equal(t, rt.Messages, local.Messages)
	}
}

func derefSales(in []*entity.SalesRecord) []entity.SalesRecord {
	out := make([]entity.SalesRecord, len(in))
	for i, r := range in {
		out[i] = *r
	}
	return out
}

func derefShipments(in []*entity.Shipment) []entity.Shipment {
	out := make([]entity.Shipment, len(in))
	for i, s := range in {
		out[i] = *s
	}
	return out
}

func salesIDs(records []*entity.SalesRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func TestLogin_SeedsAndLoadsDemoData(t *testing.T) {
	f := newFixture(t, nil)

	state, err := f.ctrl.Login(context.Background(), "  ALI@Buteo.com ")
	require.NoError(t, err)

	assert.Equal(t, PhaseReady, state.Phase)
	require.NotNil(t, state.Session)
	assert.Equal(t, "u1", state.Session.User.ID)
	assert.Len(t, state.Users, 4)
	require.Len(t, state.Topics, 2)
	assert.Len(t, state.SalesRecords, 4)
	assert.Len(t, state.Shipments, 4)

	assert.Equal(t, "mobil-uygulama-v2", state.Topics[0].Name)
	assert.Equal(t, state.Topics[0].ID, state.SelectedTopicID)
	assert.Len(t, state.Topics[0].Messages, 2)
	assert.Len(t, state.Topics[1].Messages, 5)
	assert.Equal(t, "Süper haber @AyseFatma, teşekkürler!", state.Topics[1].Messages[4].Text)

	assert.Equal(t, []string{"proj4", "proj3", "proj1", "proj2"}, salesIDs(state.SalesRecords))
	assert.Equal(t, ViewSales, state.View)
	assert.Equal(t, listview.DefaultShipmentSort(), state.ShipmentSort)
	assert.Contains(t, f.notifier.Events(), EventStateReady)
}

func TestLogin_UnknownEmail(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.ctrl.Login(context.Background(), "nobody@buteo.com")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeNotFound))
	assert.Contains(t, err.Error(), "account not found or credentials incorrect")
	assert.Equal(t, PhaseUnauthenticated, f.ctrl.Phase())
}

func TestLogin_RejectedWhileSignedIn(t *testing.T) {
	f := newReadyFixture(t, nil)

	_, err := f.ctrl.Login(context.Background(), "can@buteo.com")
	assert.True(t, errors.Is(err, errors.CodeInvalidState))
	assert.Equal(t, "u1", f.ctrl.Snapshot().Session.User.ID)
}

func TestSignUp(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	_, err := f.ctrl.SignUp(ctx, SignUpInput{Name: "Ali", Email: "Ali@Buteo.com"})
	assert.True(t, errors.Is(err, errors.CodeConflict))
	assert.Equal(t, PhaseUnauthenticated, f.ctrl.Phase())

	state, err := f.ctrl.SignUp(ctx, SignUpInput{Name: " Deniz Ak ", Email: "Deniz@Buteo.com"})
	require.NoError(t, err)
	user := state.Session.User
	assert.Equal(t, "Deniz Ak", user.Name)
	assert.Equal(t, "deniz@buteo.com", user.Email)
	assert.Equal(t, fmt.Sprintf("https://i.pravatar.cc/150?u=%s", user.ID), user.AvatarURL)
	assert.Len(t, state.Users, 5)

	f.ctrl.Logout()
	_, err = f.ctrl.Login(ctx, "DENIZ@buteo.com")
	require.NoError(t, err)
}

func TestSignUp_OnEmptyStoreSeedsFirst(t *testing.T) {
	f := newFixture(t, nil)

	state, err := f.ctrl.SignUp(context.Background(), SignUpInput{Name: "Deniz Ak", Email: "deniz@buteo.com"})
	require.NoError(t, err)

	assert.Equal(t, PhaseReady, state.Phase)
	assert.Len(t, state.Users, 5)
	assert.Len(t, state.Topics, 2)
	assert.Len(t, state.SalesRecords, 4)
}

type failingSeeder struct{}

func (failingSeeder) SeedIfEmpty(context.Context, *entity.Dataset) (bool, error) {
	return false, errors.Remote("Failed to seed", fmt.Errorf("unavailable"))
}

func TestLogin_SeedFailureReturnsToSignIn(t *testing.T) {
	f := newFixture(t, func(r *Repositories) { r.Seeder = failingSeeder{} })

	_, err := f.ctrl.Login(context.Background(), "ali@buteo.com")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeRemoteFailure))
	assert.Equal(t, PhaseUnauthenticated, f.ctrl.Phase())
}

func TestOperationsRequireReadySession(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	_, err := f.ctrl.CreateSalesRecord(ctx, entity.NewSalesRecord{})
	assert.True(t, errors.Is(err, errors.CodeInvalidState))
	assert.True(t, errors.Is(f.ctrl.SetView(ViewChat), errors.CodeInvalidState))
	_, err = f.ctrl.ShipmentView()
	assert.True(t, errors.Is(err, errors.CodeInvalidState))
}

func TestCreateSalesRecord(t *testing.T) {
	f := newReadyFixture(t, nil)

	record, err := f.ctrl.CreateSalesRecord(context.Background(), entity.NewSalesRecord{
		CustomerName: "Marmara Kimya",
		MaterialName: "PET Granül",
		Quantity:     2500,
		UnitPrice:    18.50,
		Currency:     entity.CurrencyTRY,
	})
	require.NoError(t, err)

	assert.Equal(t, 46250.0, record.Price)
	assert.Equal(t, entity.CurrencyTRY, record.Currency)
	assert.Equal(t, entity.SalesStatusPending, record.Status)
	assert.Equal(t, "u1", record.AssignedTo)

	state := f.ctrl.Snapshot()
	require.Len(t, state.SalesRecords, 5)
	assert.Equal(t, record.ID, state.SalesRecords[0].ID)
	assertNoDrift(t, f)
}

func TestUpdateSalesRecord_KeepsUnitPriceAndClosesDetail(t *testing.T) {
	f := newReadyFixture(t, nil)
	ctx := context.Background()

	_, err := f.ctrl.OpenSalesRecord("proj2")
	require.NoError(t, err)

	quantity := 5000.0
	updated, err := f.ctrl.UpdateSalesRecord(ctx, "proj2", entity.SalesRecordEdit{Quantity: &quantity})
	require.NoError(t, err)

	assert.Equal(t, 5000.0, updated.Quantity)
	assert.Equal(t, 185000.0, updated.Price)
	assert.Equal(t, 37.0, updated.UnitPrice())
	assert.Empty(t, f.ctrl.Snapshot().ViewingSalesRecordID)
	assertNoDrift(t, f)
}

func TestDeleteSalesRecord_ClearsOpenDetail(t *testing.T) {
	f := newReadyFixture(t, nil)

	_, err := f.ctrl.OpenSalesRecord("proj3")
	require.NoError(t, err)
	require.NoError(t, f.ctrl.DeleteSalesRecord(context.Background(), "proj3"))

	state := f.ctrl.Snapshot()
	assert.Empty(t, state.ViewingSalesRecordID)
	assert.NotContains(t, salesIDs(state.SalesRecords), "proj3")
	assertNoDrift(t, f)

	err = f.ctrl.DeleteSalesRecord(context.Background(), "proj3")
	assert.True(t, errors.Is(err, errors.CodeNotFound))
}

func TestSetSalesRecordStatus(t *testing.T) {
	f := newReadyFixture(t, nil)
	ctx := context.Background()

	same, err := f.ctrl.SetSalesRecordStatus(ctx, "proj4", entity.SalesStatusPending)
	require.NoError(t, err)
	assert.Equal(t, entity.SalesStatusPending, same.Status)
	assert.NotContains(t, f.notifier.Events(), EventSalesUpdated)

	moved, err := f.ctrl.SetSalesRecordStatus(ctx, "proj4", entity.SalesStatusDone)
	require.NoError(t, err)
	assert.Equal(t, entity.SalesStatusDone, moved.Status)

	board, err := f.ctrl.SalesBoard()
	require.NoError(t, err)
	assert.Empty(t, board.Columns[0].Records)
	assert.Len(t, board.Columns[2].Records, 2)
	assertNoDrift(t, f)

	_, err = f.ctrl.SetSalesRecordStatus(ctx, "proj4", entity.SalesStatus("Archived"))
	assert.True(t, errors.Is(err, errors.CodeValidation))
}

func TestShipmentLifecycle(t *testing.T) {
	f := newReadyFixture(t, nil)
	ctx := context.Background()

	created, err := f.ctrl.CreateShipment(ctx, entity.NewShipment{
		CustomerName: "Ege Ambalaj",
		Product:      "PP Çuval",
		QuantityKg:   750,
		VehiclePlate: " 35 ege 35 ",
		ShipmentDate: "2024-08-02",
	})
	require.NoError(t, err)
	assert.Equal(t, "35 EGE 35", created.VehiclePlate)
	assert.Equal(t, entity.ShipmentStatusPending, created.Status)

	view, err := f.ctrl.ShipmentView()
	require.NoError(t, err)
	assert.Equal(t, created.ID, view.Shipments[0].ID, "default sort is latest date first")

	require.NoError(t, f.ctrl.SetShipmentFilter(listview.ShipmentFilter{Query: "çuval"}))
	view, err = f.ctrl.ShipmentView()
	require.NoError(t, err)
	assert.Len(t, view.Shipments, 2)
	assert.Equal(t, 5, view.Total)

	spec, err := f.ctrl.ToggleShipmentSort(listview.SortByQuantityKg)
	require.NoError(t, err)
	assert.Equal(t, listview.Ascending, spec.Direction)
	view, err = f.ctrl.ShipmentView()
	require.NoError(t, err)
	assert.Equal(t, created.ID, view.Shipments[0].ID)

	_, err = f.ctrl.EditShipment(created.ID)
	require.NoError(t, err)
	product := "PP Big Bag"
	updated, err := f.ctrl.UpdateShipment(ctx, created.ID, entity.ShipmentPatch{Product: &product})
	require.NoError(t, err)
	assert.Equal(t, "PP Big Bag", updated.Product)
	assert.Empty(t, f.ctrl.Snapshot().EditingShipmentID)

	delivered, err := f.ctrl.SetShipmentStatus(ctx, created.ID, entity.ShipmentStatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, entity.ShipmentStatusDelivered, delivered.Status)
	assertNoDrift(t, f)

	_, err = f.ctrl.EditShipment(created.ID)
	require.NoError(t, err)
	require.NoError(t, f.ctrl.DeleteShipment(ctx, created.ID))
	assert.Empty(t, f.ctrl.Snapshot().EditingShipmentID)
	assertNoDrift(t, f)
}

func TestCreateTopic_SelectsAndSwitchesToChat(t *testing.T) {
	f := newReadyFixture(t, nil)
	require.NoError(t, f.ctrl.SetView(ViewShipments))

	topic, err := f.ctrl.CreateTopic(context.Background(), CreateTopicInput{
		Name:      " Yeni Müşteri  Toplantısı ",
		MemberIDs: []string{"u3", "u1"},
	})
	require.NoError(t, err)

	assert.Equal(t, "yeni-müşteri-toplantısı", topic.Name)
	assert.Equal(t, []string{"u1", "u3"}, topic.Members)
	require.Len(t, topic.Messages, 1)
	assert.Equal(t, `Ali Veli "Yeni Müşteri  Toplantısı" konusunu oluşturdu.`, topic.Messages[0].Text)

	state := f.ctrl.Snapshot()
	assert.Equal(t, topic.ID, state.SelectedTopicID)
	assert.Equal(t, ViewChat, state.View)
	assert.Equal(t, ViewChat, state.LastView)
	assert.Equal(t, topic.ID, state.Topics[len(state.Topics)-1].ID)
	assertNoDrift(t, f)

	_, err = f.ctrl.CreateTopic(context.Background(), CreateTopicInput{Name: "x", MemberIDs: []string{"ghost"}})
	assert.True(t, errors.Is(err, errors.CodeValidation))
}

func TestSendMessage(t *testing.T) {
	f := newReadyFixture(t, nil)

	msg, err := f.ctrl.SendMessage(context.Background(), "t2", "  Test ettim, sorun yok. ")
	require.NoError(t, err)
	assert.Equal(t, "Test ettim, sorun yok.", msg.Text)
	assert.Equal(t, "u1", msg.UserID)

	require.NoError(t, f.ctrl.SelectTopic("t2"))
	selected := f.ctrl.SelectedTopic()
	require.Len(t, selected.Messages, 3)
	assert.Equal(t, msg.ID, selected.Messages[2].ID)
	assertNoDrift(t, f)

	_, err = f.ctrl.SendMessage(context.Background(), "t2", "   ")
	assert.True(t, errors.Is(err, errors.CodeValidation))
	assert.True(t, errors.Is(f.ctrl.SelectTopic("missing"), errors.CodeNotFound))
}

func TestViewSwitching(t *testing.T) {
	f := newReadyFixture(t, nil)

	require.NoError(t, f.ctrl.SetView(ViewShipments))
	require.NoError(t, f.ctrl.SetView(ViewProfile))
	state := f.ctrl.Snapshot()
	assert.Equal(t, ViewProfile, state.View)
	assert.Equal(t, ViewShipments, state.LastView)

	view, err := f.ctrl.BackFromProfile()
	require.NoError(t, err)
	assert.Equal(t, ViewShipments, view)

	assert.True(t, errors.Is(f.ctrl.SetView(View("settings")), errors.CodeValidation))
}

func TestUpdateProfile(t *testing.T) {
	f := newReadyFixture(t, nil)
	ctx := context.Background()

	same := "Ali Veli"
	user, err := f.ctrl.UpdateProfile(ctx, entity.UserPatch{Name: &same})
	require.NoError(t, err)
	assert.Equal(t, "Ali Veli", user.Name)
	assert.NotContains(t, f.notifier.Events(), EventUserUpdated)

	name := "Ali V."
	user, err = f.ctrl.UpdateProfile(ctx, entity.UserPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Ali V.", user.Name)

	state := f.ctrl.Snapshot()
	assert.Equal(t, "Ali V.", state.Session.User.Name)
	for _, u := range state.Users {
		if u.ID == "u1" {
			assert.Equal(t, "Ali V.", u.Name)
		}
	}

	blank := " "
	_, err = f.ctrl.UpdateProfile(ctx, entity.UserPatch{Name: &blank})
	assert.True(t, errors.Is(err, errors.CodeValidation))

	_, err = f.ctrl.UploadAvatar(ctx, nil, "image/png")
	assert.True(t, errors.Is(err, errors.CodeInvalidState))
}

func TestAssignedSalesRecords(t *testing.T) {
	f := newReadyFixture(t, nil)

	mine, err := f.ctrl.AssignedSalesRecords()
	require.NoError(t, err)
	assert.Equal(t, []string{"proj4"}, salesIDs(mine))
}

func TestSummarizeTopic_Unconfigured(t *testing.T) {
	f := newReadyFixture(t, nil)

	text, err := f.ctrl.SummarizeTopic(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, service.UnconfiguredSummary, text)
	assert.False(t, f.ctrl.Snapshot().SummariesEnabled)
}

// failingSalesRepository fails every write.
type failingSalesRepository struct {
	repository.SalesRecordRepository
}

func (failingSalesRepository) Create(context.Context, *entity.SalesRecord) error {
	return errors.Remote("Failed to create sales record", fmt.Errorf("unavailable"))
}

func (failingSalesRepository) Update(context.Context, string, entity.SalesRecordPatch) (*entity.SalesRecord, error) {
	return nil, errors.Remote("Failed to update sales record", fmt.Errorf("unavailable"))
}

func (failingSalesRepository) Delete(context.Context, string) error {
	return errors.Remote("Failed to delete sales record", fmt.Errorf("unavailable"))
}

func TestRemoteFailureLeavesLocalStateUntouched(t *testing.T) {
	f := newReadyFixture(t, func(r *Repositories) {
		r.SalesRecords = failingSalesRepository{r.SalesRecords}
	})
	ctx := context.Background()
	before := f.ctrl.Snapshot()

	_, err := f.ctrl.SetSalesRecordStatus(ctx, "proj4", entity.SalesStatusDone)
	assert.True(t, errors.Is(err, errors.CodeRemoteFailure))

	_, err = f.ctrl.CreateSalesRecord(ctx, entity.NewSalesRecord{CustomerName: "x", MaterialName: "y", Currency: entity.CurrencyUSD})
	assert.True(t, errors.Is(err, errors.CodeRemoteFailure))

	_, err = f.ctrl.OpenSalesRecord("proj1")
	require.NoError(t, err)
	assert.True(t, errors.Is(f.ctrl.DeleteSalesRecord(ctx, "proj1"), errors.CodeRemoteFailure))

	after := f.ctrl.Snapshot()
	assert.Equal(t, before.SalesRecords, after.SalesRecords)
	assert.Equal(t, "proj1", after.ViewingSalesRecordID)
}

// hookedShipmentRepository runs a hook before delegating Create.
type hookedShipmentRepository struct {
	repository.ShipmentRepository
	beforeCreate func()
}

func (r *hookedShipmentRepository) Create(ctx context.Context, s *entity.Shipment) error {
	if r.beforeCreate != nil {
		r.beforeCreate()
	}
	return r.ShipmentRepository.Create(ctx, s)
}

func TestStaleResultIsDiscardedAfterLogout(t *testing.T) {
	hooked := &hookedShipmentRepository{}
	f := newReadyFixture(t, func(r *Repositories) {
		hooked.ShipmentRepository = r.Shipments
		r.Shipments = hooked
	})
	hooked.beforeCreate = func() { f.ctrl.Logout() }

	_, err := f.ctrl.CreateShipment(context.Background(), entity.NewShipment{
		CustomerName: "x", Product: "y", VehiclePlate: "34 A 1", ShipmentDate: "2024-08-01",
	})
	assert.True(t, errors.Is(err, errors.CodeInvalidState))

	state := f.ctrl.Snapshot()
	assert.Equal(t, PhaseUnauthenticated, state.Phase)
	assert.Empty(t, state.Shipments)
}

func TestEmptyTopicsEntersErrorPhase(t *testing.T) {
	store := memstore.NewMemoryStore()
	repos := memoryRepositories(store)
	// An existing user suppresses seeding, leaving no topics.
	require.NoError(t, repos.Users.Create(context.Background(), &entity.User{ID: "u1", Name: "Ali", Email: "ali@buteo.com"}))

	ctrl := NewStateController(NewAuthUseCase(repos.Users), NewStoreClient(repos), service.NewSummarizer(nil))
	_, err := ctrl.Login(context.Background(), "ali@buteo.com")
	assert.True(t, errors.Is(err, errors.CodeInitialization))

	state := ctrl.Snapshot()
	assert.Equal(t, PhaseError, state.Phase)
	assert.Contains(t, state.Error, "Please reload")

	_, err = ctrl.Login(context.Background(), "ali@buteo.com")
	assert.True(t, errors.Is(err, errors.CodeInvalidState))

	ctrl.Reload()
	assert.Equal(t, PhaseUnauthenticated, ctrl.Phase())
}

type fakeUploads struct {
	mu       sync.Mutex
	uploaded []string
	deleted  []string
}

func (u *fakeUploads) UploadFile(_ context.Context, _ io.Reader, _, folder string) (string, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	url := fmt.Sprintf("https://storage.googleapis.com/avatars-bucket/%s/%d.png", folder, len(u.uploaded)+1)
	u.uploaded = append(u.uploaded, url)
	return url, nil
}

func (u *fakeUploads) DeleteFile(_ context.Context, url string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.deleted = append(u.deleted, url)
	return nil
}

func (u *fakeUploads) Close() error { return nil }

func TestUploadAvatar_ReplacesPreviousUpload(t *testing.T) {
	repos := memoryRepositories(memstore.NewMemoryStore())
	uploads := &fakeUploads{}
	ctrl := NewStateController(NewAuthUseCase(repos.Users), NewStoreClient(repos), service.NewSummarizer(nil), WithFileUploads(uploads))
	ctx := context.Background()
	_, err := ctrl.Login(ctx, "ali@buteo.com")
	require.NoError(t, err)

	first, err := ctrl.UploadAvatar(ctx, strings.NewReader("png"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "https://storage.googleapis.com/avatars-bucket/avatars/u1/1.png", first.AvatarURL)
	assert.Empty(t, uploads.deleted, "placeholder avatars are never deleted")

	second, err := ctrl.UploadAvatar(ctx, strings.NewReader("png"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, ctrl.Snapshot().Session.User.AvatarURL, second.AvatarURL)
	assert.Equal(t, []string{first.AvatarURL}, uploads.deleted)
}
