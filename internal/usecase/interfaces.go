package usecase

// Notifier receives an event after every applied state change.
type Notifier interface {
	Publish(eventType string, payload interface{})
}

// Change event types.
const (
	EventStateReady          = "state.ready"
	EventStateReset          = "state.reset"
	EventStateError          = "state.error"
	EventUserUpdated         = "user.updated"
	EventViewChanged         = "view.changed"
	EventTopicSelected       = "topic.selected"
	EventTopicCreated        = "topic.created"
	EventMessageCreated      = "message.created"
	EventSalesCreated        = "sales.created"
	EventSalesUpdated        = "sales.updated"
	EventSalesDeleted        = "sales.deleted"
	EventSalesDetailChanged  = "sales.detail_changed"
	EventShipmentCreated     = "shipment.created"
	EventShipmentUpdated     = "shipment.updated"
	EventShipmentDeleted     = "shipment.deleted"
	EventShipmentEditChanged = "shipment.edit_changed"
	EventShipmentViewChanged = "shipment.view_changed"
)

type noopNotifier struct{}

func (noopNotifier) Publish(string, interface{}) {}
