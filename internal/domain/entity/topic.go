package entity

import (
	"fmt"
	"strings"
)

type Topic struct {
	ID       string    `json:"id" firestore:"-"`
	Name     string    `json:"name" firestore:"name"`
	Members  []string  `json:"members" firestore:"members"`
	Messages []Message `json:"messages" firestore:"-"`
}

// Slugify lower-cases a topic name and collapses whitespace runs into '-'.
func Slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

// MemberSet returns the creator followed by the other members, without
// duplicates or blanks, keeping first-seen order.
func MemberSet(creatorID string, memberIDs []string) []string {
	seen := make(map[string]bool, len(memberIDs)+1)
	members := make([]string, 0, len(memberIDs)+1)
	for _, id := range append([]string{creatorID}, memberIDs...) {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		members = append(members, id)
	}
	return members
}

func (t *Topic) HasMember(userID string) bool {
	for _, m := range t.Members {
		if m == userID {
			return true
		}
	}
	return false
}

// CreatedMessageText is the system line posted when a topic is opened.
func CreatedMessageText(creatorName, rawName string) string {
	return fmt.Sprintf("%s \"%s\" konusunu oluşturdu.", creatorName, rawName)
}

// Clone copies the topic including its member and message slices.
func (t Topic) Clone() Topic {
	t.Members = append([]string(nil), t.Members...)
	t.Messages = append([]Message(nil), t.Messages...)
	return t
}
