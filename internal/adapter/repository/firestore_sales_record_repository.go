package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"teamsynchub/internal/domain/entity"
	"teamsynchub/internal/domain/repository"
	"teamsynchub/pkg/errors"
)

type firestoreSalesRecordRepository struct {
	client *firestore.Client
}

func NewFirestoreSalesRecordRepository(client *firestore.Client) repository.SalesRecordRepository {
	return &firestoreSalesRecordRepository{
		client: client,
	}
}

func (r *firestoreSalesRecordRepository) List(ctx context.Context) ([]*entity.SalesRecord, error) {
	iter := r.client.Collection(projectsCollection).OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var records []*entity.SalesRecord
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Remote("Failed to list sales records", err)
		}
		record, err := salesRecordFromDoc(doc)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func (r *firestoreSalesRecordRepository) GetByID(ctx context.Context, id string) (*entity.SalesRecord, error) {
	doc, err := r.client.Collection(projectsCollection).Doc(id).Get(ctx)
	if err != nil {
		return nil, storeError("Sales record", "get sales record", err)
	}
	return salesRecordFromDoc(doc)
}

func (r *firestoreSalesRecordRepository) Create(ctx context.Context, record *entity.SalesRecord) error {
	ref := r.client.Collection(projectsCollection).NewDoc()
	wr, err := ref.Create(ctx, record)
	if err != nil {
		return errors.Remote("Failed to create sales record", err)
	}
	record.ID = ref.ID
	record.CreatedAt = wr.UpdateTime
	return nil
}

func (r *firestoreSalesRecordRepository) Update(ctx context.Context, id string, patch entity.SalesRecordPatch) (*entity.SalesRecord, error) {
	var updates []firestore.Update
	if patch.CustomerName != nil {
		updates = append(updates, firestore.Update{Path: "customerName", Value: *patch.CustomerName})
	}
	if patch.MaterialName != nil {
		updates = append(updates, firestore.Update{Path: "materialName", Value: *patch.MaterialName})
	}
	if patch.Quantity != nil {
		updates = append(updates, firestore.Update{Path: "quantity", Value: *patch.Quantity})
	}
	if patch.Price != nil {
		updates = append(updates, firestore.Update{Path: "price", Value: *patch.Price})
	}
	if patch.Currency != nil {
		updates = append(updates, firestore.Update{Path: "currency", Value: string(*patch.Currency)})
	}
	if patch.AssignedTo != nil {
		updates = append(updates, firestore.Update{Path: "assignedTo", Value: *patch.AssignedTo})
	}
	if patch.Status != nil {
		updates = append(updates, firestore.Update{Path: "status", Value: string(*patch.Status)})
	}

	if len(updates) > 0 {
		if _, err := r.client.Collection(projectsCollection).Doc(id).Update(ctx, updates); err != nil {
			return nil, storeError("Sales record", "update sales record", err)
		}
	}
	return r.GetByID(ctx, id)
}

func (r *firestoreSalesRecordRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(projectsCollection).Doc(id).Delete(ctx, firestore.Exists)
	if err != nil {
		return storeError("Sales record", "delete sales record", err)
	}
	return nil
}

func salesRecordFromDoc(doc *firestore.DocumentSnapshot) (*entity.SalesRecord, error) {
	var record entity.SalesRecord
	if err := doc.DataTo(&record); err != nil {
		return nil, errors.Remote("Failed to parse sales record data", err)
	}
	record.ID = doc.Ref.ID
	return &record, nil
}
