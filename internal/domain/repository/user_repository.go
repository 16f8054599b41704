package repository

import (
	"context"

	"teamsynchub/internal/domain/entity"
)

type UserRepository interface {
	// NewID reserves a document id so callers can derive fields from it
	// before the first write.
	NewID() string
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, id string, patch entity.UserPatch) (*entity.User, error)
}
