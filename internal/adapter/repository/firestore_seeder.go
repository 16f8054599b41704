package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"teamsynchub/internal/domain/entity"
	"teamsynchub/internal/domain/repository"
	"teamsynchub/pkg/errors"
)

type firestoreSeeder struct {
	client *firestore.Client
}

func NewFirestoreSeeder(client *firestore.Client) repository.Seeder {
	return &firestoreSeeder{
		client: client,
	}
}

func (s *firestoreSeeder) SeedIfEmpty(ctx context.Context, dataset *entity.Dataset) (bool, error) {
	seeded := false
	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		seeded = false

		iter := tx.Documents(s.client.Collection(usersCollection).Limit(1))
		_, err := iter.Next()
		iter.Stop()
		if err != iterator.Done {
			// Either a user exists or the read failed.
			return err
		}

		for _, user := range dataset.Users {
			if err := tx.Set(s.docRef(usersCollection, user.ID), user); err != nil {
				return err
			}
		}
		for _, topic := range dataset.Topics {
			topicRef := s.docRef(topicsCollection, topic.ID)
			if err := tx.Set(topicRef, topic); err != nil {
				return err
			}
			for i := range topic.Messages {
				msg := topic.Messages[i]
				msgRef := topicRef.Collection(messagesCollection).NewDoc()
				if msg.ID != "" {
					msgRef = topicRef.Collection(messagesCollection).Doc(msg.ID)
				}
				if err := tx.Set(msgRef, msg); err != nil {
					return err
				}
			}
		}
		for _, record := range dataset.SalesRecords {
			if err := tx.Set(s.docRef(projectsCollection, record.ID), record); err != nil {
				return err
			}
		}
		for _, shipment := range dataset.Shipments {
			if err := tx.Set(s.docRef(shipmentsCollection, shipment.ID), shipment); err != nil {
				return err
			}
		}

		seeded = true
		return nil
	})
	if err != nil {
		return false, errors.Remote("Failed to seed database", err)
	}
	return seeded, nil
}

func (s *firestoreSeeder) docRef(collection, id string) *firestore.DocumentRef {
	if id == "" {
		return s.client.Collection(collection).NewDoc()
	}
	return s.client.Collection(collection).Doc(id)
}
