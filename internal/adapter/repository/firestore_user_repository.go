package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"teamsynchub/internal/domain/entity"
	"teamsynchub/internal/domain/repository"
	"teamsynchub/pkg/errors"
)

type firestoreUserRepository struct {
	client *firestore.Client
}

func NewFirestoreUserRepository(client *firestore.Client) repository.UserRepository {
	return &firestoreUserRepository{
		client: client,
	}
}

func (r *firestoreUserRepository) NewID() string {
	return r.client.Collection(usersCollection).NewDoc().ID
}

func (r *firestoreUserRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == "" {
		user.ID = r.NewID()
	}
	_, err := r.client.Collection(usersCollection).Doc(user.ID).Create(ctx, user)
	if err != nil {
		return storeError("User", "create user", err)
	}
	return nil
}

func (r *firestoreUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	doc, err := r.client.Collection(usersCollection).Doc(id).Get(ctx)
	if err != nil {
		return nil, storeError("User", "get user", err)
	}
	return userFromDoc(doc)
}

func (r *firestoreUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := r.client.Collection(usersCollection).Where("email", "==", entity.NormalizeEmail(email)).Limit(1)
	iter := query.Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("User", nil)
	}
	if err != nil {
		return nil, errors.Remote("Failed to query user by email", err)
	}
	return userFromDoc(doc)
}

func (r *firestoreUserRepository) List(ctx context.Context) ([]*entity.User, error) {
	iter := r.client.Collection(usersCollection).Documents(ctx)
	defer iter.Stop()

	var users []*entity.User
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Remote("Failed to list users", err)
		}
		user, err := userFromDoc(doc)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func (r *firestoreUserRepository) Update(ctx context.Context, id string, patch entity.UserPatch) (*entity.User, error) {
	var updates []firestore.Update
	if patch.Name != nil {
		updates = append(updates, firestore.Update{Path: "name", Value: *patch.Name})
	}
	if patch.AvatarURL != nil {
		updates = append(updates, firestore.Update{Path: "avatarUrl", Value: *patch.AvatarURL})
	}

	if len(updates) > 0 {
		if _, err := r.client.Collection(usersCollection).Doc(id).Update(ctx, updates); err != nil {
			return nil, storeError("User", "update user", err)
		}
	}
	return r.GetByID(ctx, id)
}

func userFromDoc(doc *firestore.DocumentSnapshot) (*entity.User, error) {
	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return nil, errors.Remote("Failed to parse user data", err)
	}
	user.ID = doc.Ref.ID
	return &user, nil
}
