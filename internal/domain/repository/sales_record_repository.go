package repository

import (
	"context"

	"teamsynchub/internal/domain/entity"
)

type SalesRecordRepository interface {
	// List returns records newest first.
	List(ctx context.Context) ([]*entity.SalesRecord, error)
	GetByID(ctx context.Context, id string) (*entity.SalesRecord, error)
	Create(ctx context.Context, record *entity.SalesRecord) error
	Update(ctx context.Context, id string, patch entity.SalesRecordPatch) (*entity.SalesRecord, error)
	Delete(ctx context.Context, id string) error
}
