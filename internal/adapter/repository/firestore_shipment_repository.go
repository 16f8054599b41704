package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"teamsynchub/internal/domain/entity"
	"teamsynchub/internal/domain/repository"
	"teamsynchub/pkg/errors"
)

type firestoreShipmentRepository struct {
	client *firestore.Client
}

func NewFirestoreShipmentRepository(client *firestore.Client) repository.ShipmentRepository {
	return &firestoreShipmentRepository{
		client: client,
	}
}

func (r *firestoreShipmentRepository) List(ctx context.Context) ([]*entity.Shipment, error) {
	iter := r.client.Collection(shipmentsCollection).OrderBy("shipmentDate", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var shipments []*entity.Shipment
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Remote("Failed to list shipments", err)
		}
		shipment, err := shipmentFromDoc(doc)
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, shipment)
	}
	return shipments, nil
}

func (r *firestoreShipmentRepository) Create(ctx context.Context, shipment *entity.Shipment) error {
	ref := r.client.Collection(shipmentsCollection).NewDoc()
	wr, err := ref.Create(ctx, shipment)
	if err != nil {
		return errors.Remote("Failed to create shipment", err)
	}
	shipment.ID = ref.ID
	shipment.CreatedAt = wr.UpdateTime
	return nil
}

func (r *firestoreShipmentRepository) Update(ctx context.Context, id string, patch entity.ShipmentPatch) (*entity.Shipment, error) {
	var updates []firestore.Update
	if patch.CustomerName != nil {
		updates = append(updates, firestore.Update{Path: "customerName", Value: *patch.CustomerName})
	}
	if patch.Product != nil {
		updates = append(updates, firestore.Update{Path: "product", Value: *patch.Product})
	}
	if patch.QuantityKg != nil {
		updates = append(updates, firestore.Update{Path: "quantityKg", Value: *patch.QuantityKg})
	}
	if patch.VehiclePlate != nil {
		updates = append(updates, firestore.Update{Path: "vehiclePlate", Value: *patch.VehiclePlate})
	}
	if patch.ShipmentDate != nil {
		updates = append(updates, firestore.Update{Path: "shipmentDate", Value: *patch.ShipmentDate})
	}
	if patch.Status != nil {
		updates = append(updates, firestore.Update{Path: "status", Value: string(*patch.Status)})
	}

	ref := r.client.Collection(shipmentsCollection).Doc(id)
	if len(updates) > 0 {
		if _, err := ref.Update(ctx, updates); err != nil {
			return nil, storeError("Shipment", "update shipment", err)
		}
	}

	doc, err := ref.Get(ctx)
	if err != nil {
		return nil, storeError("Shipment", "get shipment", err)
	}
	return shipmentFromDoc(doc)
}

func (r *firestoreShipmentRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(shipmentsCollection).Doc(id).Delete(ctx, firestore.Exists)
	if err != nil {
		return storeError("Shipment", "delete shipment", err)
	}
	return nil
}

func shipmentFromDoc(doc *firestore.DocumentSnapshot) (*entity.Shipment, error) {
	var shipment entity.Shipment
	if err := doc.DataTo(&shipment); err != nil {
		return nil, errors.Remote("Failed to parse shipment data", err)
	}
	shipment.ID = doc.Ref.ID
	return &shipment, nil
}
