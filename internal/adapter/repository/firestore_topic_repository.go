package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"teamsynchub/internal/domain/entity"
	"teamsynchub/internal/domain/repository"
	"teamsynchub/pkg/errors"
)

type firestoreTopicRepository struct {
	client *firestore.Client
}

func NewFirestoreTopicRepository(client *firestore.Client) repository.TopicRepository {
	return &firestoreTopicRepository{
		client: client,
	}
}

func (r *firestoreTopicRepository) List(ctx context.Context) ([]*entity.Topic, error) {
	iter := r.client.Collection(topicsCollection).OrderBy("name", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var topics []*entity.Topic
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Remote("Failed to list topics", err)
		}

		var topic entity.Topic
		if err := doc.DataTo(&topic); err != nil {
			return nil, errors.Remote("Failed to parse topic data", err)
		}
		topic.ID = doc.Ref.ID
		topics = append(topics, &topic)
	}
	return topics, nil
}

func (r *firestoreTopicRepository) Create(ctx context.Context, topic *entity.Topic, first *entity.Message) error {
	topicRef := r.client.Collection(topicsCollection).NewDoc()
	msgRef := topicRef.Collection(messagesCollection).NewDoc()

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if err := tx.Create(topicRef, topic); err != nil {
			return err
		}
		return tx.Create(msgRef, first)
	})
	if err != nil {
		return errors.Remote("Failed to create topic", err)
	}

	topic.ID = topicRef.ID
	first.ID = msgRef.ID

	// The timestamp is assigned by the server; read it back.
	stored, err := r.getMessage(ctx, msgRef)
	if err != nil {
		return err
	}
	first.Timestamp = stored.Timestamp
	return nil
}

func (r *firestoreTopicRepository) ListMessages(ctx context.Context, topicID string) ([]*entity.Message, error) {
	query := r.client.Collection(topicsCollection).Doc(topicID).Collection(messagesCollection).
		OrderBy("timestamp", firestore.Asc)
	iter := query.Documents(ctx)
	defer iter.Stop()

	var messages []*entity.Message
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Remote("Failed to list messages", err)
		}
		message, err := messageFromDoc(doc)
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}
	return messages, nil
}

func (r *firestoreTopicRepository) AppendMessage(ctx context.Context, topicID string, message *entity.Message) error {
	topicRef := r.client.Collection(topicsCollection).Doc(topicID)
	if _, err := topicRef.Get(ctx); err != nil {
		return storeError("Topic", "get topic", err)
	}

	msgRef := topicRef.Collection(messagesCollection).NewDoc()
	if _, err := msgRef.Create(ctx, message); err != nil {
		return errors.Remote("Failed to send message", err)
	}
	message.ID = msgRef.ID

	stored, err := r.getMessage(ctx, msgRef)
	if err != nil {
		return err
	}
	message.Timestamp = stored.Timestamp
	return nil
}

func (r *firestoreTopicRepository) getMessage(ctx context.Context, ref *firestore.DocumentRef) (*entity.Message, error) {
	doc, err := ref.Get(ctx)
	if err != nil {
		return nil, storeError("Message", "get message", err)
	}
	return messageFromDoc(doc)
}

func messageFromDoc(doc *firestore.DocumentSnapshot) (*entity.Message, error) {
	var message entity.Message
	if err := doc.DataTo(&message); err != nil {
		return nil, errors.Remote("Failed to parse message data", err)
	}
	message.ID = doc.Ref.ID
	return &message, nil
}
