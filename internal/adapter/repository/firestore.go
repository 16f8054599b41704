package repository

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"teamsynchub/pkg/errors"
)

// Collection names are shared with the web client's database.
const (
	usersCollection     = "users"
	topicsCollection    = "topics"
	messagesCollection  = "messages"
	projectsCollection  = "projects"
	shipmentsCollection = "shipments"
)

// storeError maps a Firestore failure onto the application error kinds.
func storeError(resource, action string, err error) error {
	if status.Code(err) == codes.NotFound {
		return errors.NotFound(resource, err)
	}
	return errors.Remote("Failed to "+action, err)
}
