package repository

import (
	"context"

	"rebuy/internal/domain/entity"
)

type StockRepository interface {
	Create(ctx context.Context, stock *entity.Stock) error
	GetByID(ctx context.Context, id string) (*entity.Stock, error)
	List(ctx context.Context, category string, limit, offset int) ([]*entity.Stock, int64, error)
	ListLowStock(ctx context.Context) ([]*entity.Stock, error)
	Update(ctx context.Context, stock *entity.Stock) error
	// AdjustQuantity applies delta to the stored quantity. When clampAtZero is
	// set the result never goes below zero.
	AdjustQuantity(ctx context.Context, id string, delta int, clampAtZero bool) error
	Delete(ctx context.Context, id string) error
}
