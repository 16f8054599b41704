package repository

import (
	"context"

	"teamsynchub/internal/domain/entity"
)

type ShipmentRepository interface {
	// List returns shipments by shipment date, latest first.
	List(ctx context.Context) ([]*entity.Shipment, error)
	Create(ctx context.Context, shipment *entity.Shipment) error
	Update(ctx context.Context, id string, patch entity.ShipmentPatch) (*entity.Shipment, error)
	Delete(ctx context.Context, id string) error
}
