package repository

import (
	"context"

	"teamsynchub/internal/domain/entity"
)

type TopicRepository interface {
	// List returns topics ordered by name, without messages.
	List(ctx context.Context) ([]*entity.Topic, error)
	// Create stores the topic together with its first message. Both ids and
	// the message timestamp are filled in on success.
	Create(ctx context.Context, topic *entity.Topic, first *entity.Message) error

	// Message methods
	ListMessages(ctx context.Context, topicID string) ([]*entity.Message, error)
	AppendMessage(ctx context.Context, topicID string, message *entity.Message) error
}
