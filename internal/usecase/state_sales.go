package usecase

import (
	"context"

	"teamsynchub/internal/domain/entity"
	"teamsynchub/internal/domain/listview"
	"teamsynchub/pkg/errors"
)

// SalesBoard is the pipeline view: one column per status plus the record
// open in the detail view, if any.
type SalesBoard struct {
	Columns []listview.SalesColumn `json:"columns"`
	Viewing *entity.SalesRecord    `json:"viewing,omitempty"`
}

func (c *StateController) salesIndexLocked(id string) int {
	for i, r := range c.sales {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// localSalesRecord returns a copy of the loaded record.
func (c *StateController) localSalesRecord(id string) (entity.SalesRecord, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i := c.salesIndexLocked(id)
	if i < 0 {
		return entity.SalesRecord{}, errors.NotFound("Sales record", nil)
	}
	return *c.sales[i], nil
}

func (c *StateController) replaceSalesLocked(record *entity.SalesRecord) {
	if i := c.salesIndexLocked(record.ID); i >= 0 {
		v := *record
		c.sales[i] = &v
	}
}

func (c *StateController) SalesBoard() (*SalesBoard, error) {
	if _, _, err := c.ready(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	board := &SalesBoard{Columns: listview.GroupSalesRecords(copySales(c.sales))}
	if i := c.salesIndexLocked(c.viewingSalesID); i >= 0 {
		v := *c.sales[i]
		board.Viewing = &v
	}
	return board, nil
}

// CreateSalesRecord adds a Pending record assigned to the signed-in user.
func (c *StateController) CreateSalesRecord(ctx context.Context, input entity.NewSalesRecord) (*entity.SalesRecord, error) {
	epoch, user, err := c.ready()
	if err != nil {
		return nil, err
	}

	record, err := input.Build(user.ID)
	if err != nil {
		return nil, err
	}
	if err := c.store.CreateSalesRecord(ctx, record); err != nil {
		return nil, err
	}

	err = c.commit(epoch, func() {
		v := *record
		c.sales = append([]*entity.SalesRecord{&v}, c.sales...)
	})
	if err != nil {
		return nil, err
	}

	out := *record
	c.notifier.Publish(EventSalesCreated, &out)
	return &out, nil
}

// UpdateSalesRecord saves the detail form and closes the detail view.
func (c *StateController) UpdateSalesRecord(ctx context.Context, id string, edit entity.SalesRecordEdit) (*entity.SalesRecord, error) {
	epoch, _, err := c.ready()
	if err != nil {
		return nil, err
	}

	current, err := c.localSalesRecord(id)
	if err != nil {
		return nil, err
	}
	patch, err := edit.Resolve(current)
	if err != nil {
		return nil, err
	}

	updated := &current
	if !patch.IsEmpty() {
		updated, err = c.store.UpdateSalesRecord(ctx, id, patch)
		if err != nil {
			return nil, err
		}
	}

	err = c.commit(epoch, func() {
		c.replaceSalesLocked(updated)
		if c.viewingSalesID == id {
			c.viewingSalesID = ""
		}
	})
	if err != nil {
		return nil, err
	}

	out := *updated
	c.notifier.Publish(EventSalesUpdated, &out)
	return &out, nil
}

// SetSalesRecordStatus moves a record to another pipeline column. Moving to
// the current status is a no-op.
func (c *StateController) SetSalesRecordStatus(ctx context.Context, id string, status entity.SalesStatus) (*entity.SalesRecord, error) {
	epoch, _, err := c.ready()
	if err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, errors.Validation("status must be one of: pending, in_progress, done")
	}

	current, err := c.localSalesRecord(id)
	if err != nil {
		return nil, err
	}
	if current.Status == status {
		return &current, nil
	}

	updated, err := c.store.UpdateSalesRecord(ctx, id, entity.SalesRecordPatch{Status: &status})
	if err != nil {
		return nil, err
	}

	if err := c.commit(epoch, func() { c.replaceSalesLocked(updated) }); err != nil {
		return nil, err
	}

	out := *updated
	c.notifier.Publish(EventSalesUpdated, &out)
	return &out, nil
}

func (c *StateController) DeleteSalesRecord(ctx context.Context, id string) error {
	epoch, _, err := c.ready()
	if err != nil {
		return err
	}
	if _, err := c.localSalesRecord(id); err != nil {
		return err
	}

	if err := c.store.DeleteSalesRecord(ctx, id); err != nil {
		return err
	}

	err = c.commit(epoch, func() {
		if i := c.salesIndexLocked(id); i >= 0 {
			c.sales = append(c.sales[:i:i], c.sales[i+1:]...)
		}
		if c.viewingSalesID == id {
			c.viewingSalesID = ""
		}
	})
	if err != nil {
		return err
	}

	c.notifier.Publish(EventSalesDeleted, map[string]string{"id": id})
	return nil
}

// OpenSalesRecord shows a record in the detail view.
func (c *StateController) OpenSalesRecord(id string) (*entity.SalesRecord, error) {
	if _, _, err := c.ready(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	i := c.salesIndexLocked(id)
	if i < 0 {
		c.mu.Unlock()
		return nil, errors.NotFound("Sales record", nil)
	}
	c.viewingSalesID = id
	out := *c.sales[i]
	c.mu.Unlock()

	c.notifier.Publish(EventSalesDetailChanged, map[string]string{"id": id})
	return &out, nil
}

func (c *StateController) CloseSalesRecord() error {
	if _, _, err := c.ready(); err != nil {
		return err
	}

	c.mu.Lock()
	c.viewingSalesID = ""
	c.mu.Unlock()

	c.notifier.Publish(EventSalesDetailChanged, map[string]string{"id": ""})
	return nil
}
