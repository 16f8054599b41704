package usecase

import (
	"context"
	"strings"

	"teamsynchub/internal/domain/entity"
	"teamsynchub/pkg/errors"
)

type CreateTopicInput struct {
	Name      string
	MemberIDs []string
}

func (c *StateController) topicIndexLocked(id string) int {
	for i, t := range c.topics {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (c *StateController) SelectTopic(topicID string) error {
	if _, _, err := c.ready(); err != nil {
		return err
	}

	c.mu.Lock()
	if c.topicIndexLocked(topicID) < 0 {
		c.mu.Unlock()
		return errors.NotFound("Topic", nil)
	}
	c.selectedTopicID = topicID
	c.mu.Unlock()

	c.notifier.Publish(EventTopicSelected, map[string]string{"topicId": topicID})
	return nil
}

// SelectedTopic falls back to the first topic when the selection is
// missing. It returns nil only when there are no topics.
func (c *StateController) SelectedTopic() *entity.Topic {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(c.topics) == 0 {
		return nil
	}
	t := c.topics[0]
	if i := c.topicIndexLocked(c.selectedTopicID); i >= 0 {
		t = c.topics[i]
	}
	clone := t.Clone()
	return &clone
}

// CreateTopic stores a topic with its "created" system message, appends it,
// selects it and switches to the chat view.
func (c *StateController) CreateTopic(ctx context.Context, input CreateTopicInput) (*entity.Topic, error) {
	epoch, user, err := c.ready()
	if err != nil {
		return nil, err
	}

	rawName := strings.TrimSpace(input.Name)
	slug := entity.Slugify(rawName)
	if slug == "" {
		return nil, errors.Validation("topic name is required")
	}
	members := entity.MemberSet(user.ID, input.MemberIDs)

	c.mu.RLock()
	known := make(map[string]bool, len(c.users))
	for _, u := range c.users {
		known[u.ID] = true
	}
	c.mu.RUnlock()
	for _, id := range members {
		if !known[id] {
			return nil, errors.Validation("unknown member: " + id)
		}
	}

	topic := &entity.Topic{Name: slug, Members: members}
	first := &entity.Message{Text: entity.CreatedMessageText(user.Name, rawName), UserID: user.ID}
	if err := c.store.CreateTopic(ctx, topic, first); err != nil {
		return nil, err
	}
	topic.Messages = []entity.Message{*first}

	err = c.commit(epoch, func() {
		c.topics = append(c.topics, topic)
		c.selectedTopicID = topic.ID
		c.view = ViewChat
		c.lastView = ViewChat
	})
	if err != nil {
		return nil, err
	}

	out := topic.Clone()
	c.notifier.Publish(EventTopicCreated, &out)
	return &out, nil
}

func (c *StateController) SendMessage(ctx context.Context, topicID, text string) (*entity.Message, error) {
	epoch, user, err := c.ready()
	if err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.Validation("message text is required")
	}
	c.mu.RLock()
	exists := c.topicIndexLocked(topicID) >= 0
	c.mu.RUnlock()
	if !exists {
		return nil, errors.NotFound("Topic", nil)
	}

	msg := &entity.Message{Text: text, UserID: user.ID}
	if err := c.store.AppendMessage(ctx, topicID, msg); err != nil {
		return nil, err
	}

	err = c.commit(epoch, func() {
		i := c.topicIndexLocked(topicID)
		if i < 0 {
			return
		}
		updated := c.topics[i].Clone()
		updated.Messages = append(updated.Messages, *msg)
		c.topics[i] = &updated
	})
	if err != nil {
		return nil, err
	}

	out := *msg
	c.notifier.Publish(EventMessageCreated, map[string]interface{}{"topicId": topicID, "message": out})
	return &out, nil
}

// SummarizeTopic asks the summarizer for a digest of the topic's messages.
// The text reports configuration or remote problems itself.
func (c *StateController) SummarizeTopic(ctx context.Context, topicID string) (string, error) {
	if _, _, err := c.ready(); err != nil {
		return "", err
	}

	c.mu.RLock()
	i := c.topicIndexLocked(topicID)
	if i < 0 {
		c.mu.RUnlock()
		return "", errors.NotFound("Topic", nil)
	}
	messages := append([]entity.Message(nil), c.topics[i].Messages...)
	users := copyUsers(c.users)
	c.mu.RUnlock()

	return c.summarizer.Summarize(ctx, messages, users), nil
}
