package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"teamsynchub/internal/domain/entity"
	"teamsynchub/internal/domain/listview"
	"teamsynchub/internal/domain/service"
	"teamsynchub/pkg/errors"
	"teamsynchub/pkg/logger"
)

// StateController owns the in-memory application state of one client
// session and keeps it consistent with the store. The mutex guards local
// state only and is never held across a store call.
type StateController struct {
	auth       *AuthUseCase
	store      *StoreClient
	summarizer *service.Summarizer
	files      service.FileUploadService
	notifier   Notifier

	mu       sync.RWMutex
	phase    Phase
	errMsg   string
	epoch    uint64
	session  *Session
	view     View
	lastView View

	users     []*entity.User
	topics    []*entity.Topic
	sales     []*entity.SalesRecord
	shipments []*entity.Shipment

	selectedTopicID   string
	viewingSalesID    string
	editingShipmentID string
	shipmentFilter    listview.ShipmentFilter
	shipmentSort      listview.SortSpec
}

type StateControllerOption func(*StateController)

// WithFileUploads enables avatar uploads.
func WithFileUploads(files service.FileUploadService) StateControllerOption {
	return func(c *StateController) { c.files = files }
}

func WithNotifier(n Notifier) StateControllerOption {
	return func(c *StateController) {
		if n != nil {
			c.notifier = n
		}
	}
}

func NewStateController(auth *AuthUseCase, store *StoreClient, summarizer *service.Summarizer, opts ...StateControllerOption) *StateController {
	c := &StateController{
		auth:       auth,
		store:      store,
		summarizer: summarizer,
		notifier:   noopNotifier{},
		phase:      PhaseUnauthenticated,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.resetLocked()
	return c
}

// State is a copy of everything the UI renders.
type State struct {
	Phase                Phase                   `json:"phase"`
	Error                string                  `json:"error,omitempty"`
	Session              *Session                `json:"session,omitempty"`
	View                 View                    `json:"view"`
	LastView             View                    `json:"lastView"`
	Users                []*entity.User          `json:"users"`
	Topics               []*entity.Topic         `json:"topics"`
	SelectedTopicID      string                  `json:"selectedTopicId,omitempty"`
	SalesRecords         []*entity.SalesRecord   `json:"salesRecords"`
	Shipments            []*entity.Shipment      `json:"shipments"`
	ViewingSalesRecordID string                  `json:"viewingSalesRecordId,omitempty"`
	EditingShipmentID    string                  `json:"editingShipmentId,omitempty"`
	ShipmentFilter       listview.ShipmentFilter `json:"shipmentFilter"`
	ShipmentSort         listview.SortSpec       `json:"shipmentSort"`
	SummariesEnabled     bool                    `json:"summariesEnabled"`
}

func staleSession() error {
	return errors.InvalidState("session changed before the result could be applied")
}

func notSignedIn() error {
	return errors.InvalidState("no active session")
}

// resetLocked drops the session and all loaded data. Caller holds mu.
func (c *StateController) resetLocked() {
	c.phase = PhaseUnauthenticated
	c.errMsg = ""
	c.session = nil
	c.view = ViewSales
	c.lastView = ViewSales
	c.users = nil
	c.topics = nil
	c.sales = nil
	c.shipments = nil
	c.selectedTopicID = ""
	c.viewingSalesID = ""
	c.editingShipmentID = ""
	c.shipmentFilter = listview.ShipmentFilter{}
	c.shipmentSort = listview.DefaultShipmentSort()
}

func (c *StateController) Phase() Phase {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.phase
}

// Login and SignUp seed an empty store before resolving the user, so the
// demo accounts exist on first run.
func (c *StateController) Login(ctx context.Context, email string) (*State, error) {
	epoch, err := c.beginAuth()
	if err != nil {
		return nil, err
	}
	if err := c.store.EnsureSeeded(ctx); err != nil {
		return c.finishAuth(ctx, epoch, nil, err)
	}
	user, err := c.auth.SignIn(ctx, email)
	return c.finishAuth(ctx, epoch, user, err)
}

func (c *StateController) SignUp(ctx context.Context, input SignUpInput) (*State, error) {
	epoch, err := c.beginAuth()
	if err != nil {
		return nil, err
	}
	if err := c.store.EnsureSeeded(ctx); err != nil {
		return c.finishAuth(ctx, epoch, nil, err)
	}
	user, err := c.auth.SignUp(ctx, input)
	return c.finishAuth(ctx, epoch, user, err)
}

func (c *StateController) beginAuth() (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.phase {
	case PhaseUnauthenticated:
	case PhaseAuthenticating, PhaseDataLoading:
		return 0, errors.InvalidState("sign-in already in progress")
	default:
		return 0, errors.InvalidState("a session is already active")
	}
	c.epoch++
	c.phase = PhaseAuthenticating
	return c.epoch, nil
}

func (c *StateController) finishAuth(ctx context.Context, epoch uint64, user *entity.User, authErr error) (*State, error) {
	c.mu.Lock()
	if c.epoch != epoch {
		c.mu.Unlock()
		return nil, staleSession()
	}
	if authErr != nil {
		c.phase = PhaseUnauthenticated
		c.mu.Unlock()
		return nil, authErr
	}
	c.session = &Session{User: *user, Epoch: epoch, StartedAt: time.Now().UTC()}
	c.phase = PhaseDataLoading
	c.mu.Unlock()

	return c.load(ctx, epoch)
}

func (c *StateController) load(ctx context.Context, epoch uint64) (*State, error) {
	ds, err := c.store.InitializeAndFetch(ctx)

	c.mu.Lock()
	if c.epoch != epoch {
		c.mu.Unlock()
		return nil, staleSession()
	}
	if err == nil && (len(ds.Users) == 0 || len(ds.Topics) == 0) {
		err = fmt.Errorf("store returned no users or topics")
	}
	if err != nil {
		c.phase = PhaseError
		c.errMsg = fmt.Sprintf("Failed to load data: %v. Please reload and try again.", err)
		msg := c.errMsg
		c.mu.Unlock()

		logger.Error("Failed to fetch initial data: %v", err)
		c.notifier.Publish(EventStateError, map[string]string{"error": msg})
		return nil, errors.Initialization(msg, err)
	}

	c.users = ds.Users
	c.topics = ds.Topics
	c.sales = ds.SalesRecords
	c.shipments = ds.Shipments
	c.selectedTopicID = ds.Topics[0].ID
	c.phase = PhaseReady
	state := c.snapshotLocked()
	c.mu.Unlock()

	c.notifier.Publish(EventStateReady, nil)
	return state, nil
}

// Logout ends the session. Results of calls still in flight are dropped.
func (c *StateController) Logout() {
	c.mu.Lock()
	c.epoch++
	c.resetLocked()
	c.mu.Unlock()

	c.notifier.Publish(EventStateReset, nil)
}

// Reload is a full reset back to the sign-in screen. It is the only way out
// of the error phase.
func (c *StateController) Reload() {
	c.Logout()
}

// ready returns the epoch and identity of the active session.
func (c *StateController) ready() (uint64, entity.User, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.phase != PhaseReady || c.session == nil {
		return 0, entity.User{}, notSignedIn()
	}
	return c.session.Epoch, c.session.User, nil
}

// commit applies fn to local state if the session that started the
// operation is still current.
func (c *StateController) commit(epoch uint64, fn func()) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != PhaseReady || c.session == nil || c.session.Epoch != epoch {
		logger.Warn("Discarding result for superseded session %d", epoch)
		return staleSession()
	}
	fn()
	return nil
}

func (c *StateController) Snapshot() *State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshotLocked()
}

func (c *StateController) snapshotLocked() *State {
	s := &State{
		Phase:                c.phase,
		Error:                c.errMsg,
		View:                 c.view,
		LastView:             c.lastView,
		Users:                copyUsers(c.users),
		Topics:               copyTopics(c.topics),
		SelectedTopicID:      c.selectedTopicID,
		SalesRecords:         copySales(c.sales),
		Shipments:            copyShipments(c.shipments),
		ViewingSalesRecordID: c.viewingSalesID,
		EditingShipmentID:    c.editingShipmentID,
		ShipmentFilter:       c.shipmentFilter,
		ShipmentSort:         c.shipmentSort,
		SummariesEnabled:     c.summarizer.Configured(),
	}
	if c.session != nil {
		sess := *c.session
		s.Session = &sess
	}
	return s
}

// SetView switches the main panel. Profile is an overlay: it does not
// become the view BackFromProfile returns to.
func (c *StateController) SetView(view View) error {
	if _, _, err := c.ready(); err != nil {
		return err
	}
	if _, ok := ParseView(string(view)); !ok {
		return errors.Validation("view must be one of: chat, sales, shipments, profile")
	}

	c.mu.Lock()
	c.view = view
	if view != ViewProfile {
		c.lastView = view
	}
	c.mu.Unlock()

	c.notifier.Publish(EventViewChanged, map[string]View{"view": view})
	return nil
}

func (c *StateController) BackFromProfile() (View, error) {
	if _, _, err := c.ready(); err != nil {
		return "", err
	}

	c.mu.Lock()
	c.view = c.lastView
	view := c.view
	c.mu.Unlock()

	c.notifier.Publish(EventViewChanged, map[string]View{"view": view})
	return view, nil
}

func copyUsers(in []*entity.User) []*entity.User {
	out := make([]*entity.User, len(in))
	for i, u := range in {
		v := *u
		out[i] = &v
	}
	return out
}

func copyTopics(in []*entity.Topic) []*entity.Topic {
	out := make([]*entity.Topic, len(in))
	for i, t := range in {
		v := t.Clone()
		out[i] = &v
	}
	return out
}

func copySales(in []*entity.SalesRecord) []*entity.SalesRecord {
	out := make([]*entity.SalesRecord, len(in))
	for i, r := range in {
		v := *r
		out[i] = &v
	}
	return out
}

func copyShipments(in []*entity.Shipment) []*entity.Shipment {
	out := make([]*entity.Shipment, len(in))
	for i, s := range in {
		v := *s
		out[i] = &v
	}
	return out
}
