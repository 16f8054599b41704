package usecase

import (
	"context"

	"teamsynchub/internal/domain/entity"
	"teamsynchub/internal/domain/listview"
	"teamsynchub/pkg/errors"
)

// ShipmentView is the shipment table as currently filtered and sorted.
type ShipmentView struct {
	Filter    listview.ShipmentFilter `json:"filter"`
	Sort      listview.SortSpec       `json:"sort"`
	Shipments []*entity.Shipment      `json:"shipments"`
	Total     int                     `json:"total"`
	Editing   *entity.Shipment        `json:"editing,omitempty"`
}

func (c *StateController) shipmentIndexLocked(id string) int {
	for i, s := range c.shipments {
		if s.ID == id {
			return i
		}
	}
	return -1
}

func (c *StateController) localShipment(id string) (entity.Shipment, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i := c.shipmentIndexLocked(id)
	if i < 0 {
		return entity.Shipment{}, errors.NotFound("Shipment", nil)
	}
	return *c.shipments[i], nil
}

func (c *StateController) replaceShipmentLocked(shipment *entity.Shipment) {
	if i := c.shipmentIndexLocked(shipment.ID); i >= 0 {
		v := *shipment
		c.shipments[i] = &v
	}
}

func (c *StateController) ShipmentView() (*ShipmentView, error) {
	if _, _, err := c.ready(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	rows := listview.SortShipments(listview.FilterShipments(copyShipments(c.shipments), c.shipmentFilter), c.shipmentSort)
	view := &ShipmentView{
		Filter:    c.shipmentFilter,
		Sort:      c.shipmentSort,
		Shipments: rows,
		Total:     len(c.shipments),
	}
	if i := c.shipmentIndexLocked(c.editingShipmentID); i >= 0 {
		v := *c.shipments[i]
		view.Editing = &v
	}
	return view, nil
}

func (c *StateController) SetShipmentFilter(filter listview.ShipmentFilter) error {
	if _, _, err := c.ready(); err != nil {
		return err
	}
	if filter.Date != "" {
		if err := entity.ValidateDate(filter.Date); err != nil {
			return err
		}
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return errors.Validation("status must be one of: pending, in_transit, delivered")
	}

	c.mu.Lock()
	changed := c.shipmentFilter != filter
	c.shipmentFilter = filter
	c.mu.Unlock()

	if changed {
		c.notifier.Publish(EventShipmentViewChanged, filter)
	}
	return nil
}

// ToggleShipmentSort applies a column-header click and returns the new sort.
func (c *StateController) ToggleShipmentSort(key listview.SortKey) (listview.SortSpec, error) {
	if _, _, err := c.ready(); err != nil {
		return listview.SortSpec{}, err
	}
	if _, err := listview.ParseSortKey(string(key)); err != nil {
		return listview.SortSpec{}, err
	}

	c.mu.Lock()
	c.shipmentSort = c.shipmentSort.Toggle(key)
	spec := c.shipmentSort
	c.mu.Unlock()

	c.notifier.Publish(EventShipmentViewChanged, spec)
	return spec, nil
}

func (c *StateController) CreateShipment(ctx context.Context, input entity.NewShipment) (*entity.Shipment, error) {
	epoch, _, err := c.ready()
	if err != nil {
		return nil, err
	}

	shipment, err := input.Build()
	if err != nil {
		return nil, err
	}
	if err := c.store.CreateShipment(ctx, shipment); err != nil {
		return nil, err
	}

	err = c.commit(epoch, func() {
		v := *shipment
		c.shipments = append([]*entity.Shipment{&v}, c.shipments...)
	})
	if err != nil {
		return nil, err
	}

	out := *shipment
	c.notifier.Publish(EventShipmentCreated, &out)
	return &out, nil
}

// UpdateShipment saves the edit form and clears the edit reference.
func (c *StateController) UpdateShipment(ctx context.Context, id string, patch entity.ShipmentPatch) (*entity.Shipment, error) {
	epoch, _, err := c.ready()
	if err != nil {
		return nil, err
	}

	current, err := c.localShipment(id)
	if err != nil {
		return nil, err
	}
	patch, err = patch.Normalize()
	if err != nil {
		return nil, err
	}

	updated := &current
	if !patch.IsEmpty() {
		updated, err = c.store.UpdateShipment(ctx, id, patch)
		if err != nil {
			return nil, err
		}
	}

	err = c.commit(epoch, func() {
		c.replaceShipmentLocked(updated)
		if c.editingShipmentID == id {
			c.editingShipmentID = ""
		}
	})
	if err != nil {
		return nil, err
	}

	out := *updated
	c.notifier.Publish(EventShipmentUpdated, &out)
	return &out, nil
}

// SetShipmentStatus is a no-op when the status is unchanged.
func (c *StateController) SetShipmentStatus(ctx context.Context, id string, status entity.ShipmentStatus) (*entity.Shipment, error) {
	epoch, _, err := c.ready()
	if err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, errors.Validation("status must be one of: pending, in_transit, delivered")
	}

	current, err := c.localShipment(id)
	if err != nil {
		return nil, err
	}
	if current.Status == status {
		return &current, nil
	}

	updated, err := c.store.UpdateShipment(ctx, id, entity.ShipmentPatch{Status: &status})
	if err != nil {
		return nil, err
	}

	if err := c.commit(epoch, func() { c.replaceShipmentLocked(updated) }); err != nil {
		return nil, err
	}

	out := *updated
	c.notifier.Publish(EventShipmentUpdated, &out)
	return &out, nil
}

func (c *StateController) DeleteShipment(ctx context.Context, id string) error {
	epoch, _, err := c.ready()
	if err != nil {
		return err
	}
	if _, err := c.localShipment(id); err != nil {
		return err
	}

	if err := c.store.DeleteShipment(ctx, id); err != nil {
		return err
	}

	err = c.commit(epoch, func() {
		if i := c.shipmentIndexLocked(id); i >= 0 {
			c.shipments = append(c.shipments[:i:i], c.shipments[i+1:]...)
		}
		if c.editingShipmentID == id {
			c.editingShipmentID = ""
		}
	})
	if err != nil {
		return err
	}

	c.notifier.Publish(EventShipmentDeleted, map[string]string{"id": id})
	return nil
}

// EditShipment marks a shipment as being edited.
func (c *StateController) EditShipment(id string) (*entity.Shipment, error) {
	if _, _, err := c.ready(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	i := c.shipmentIndexLocked(id)
	if i < 0 {
		c.mu.Unlock()
		return nil, errors.NotFound("Shipment", nil)
	}
	c.editingShipmentID = id
	out := *c.shipments[i]
	c.mu.Unlock()

	c.notifier.Publish(EventShipmentEditChanged, map[string]string{"id": id})
	return &out, nil
}

func (c *StateController) CancelShipmentEdit() error {
	if _, _, err := c.ready(); err != nil {
		return err
	}

	c.mu.Lock()
	c.editingShipmentID = ""
	c.mu.Unlock()

	c.notifier.Publish(EventShipmentEditChanged, map[string]string{"id": ""})
	return nil
}
