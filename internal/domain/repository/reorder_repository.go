package repository

import (
	"context"

	"rebuy/internal/domain/entity"
)

type ReorderRepository interface {
	Create(ctx context.Context, req *entity.ReorderRequest) error
	GetByID(ctx context.Context, id string) (*entity.ReorderRequest, error)
	List(ctx context.Context, status string, limit, offset int) ([]*entity.ReorderRequest, int64, error)
	Update(ctx context.Context, req *entity.ReorderRequest) error
	Delete(ctx context.Context, id string) error
}
