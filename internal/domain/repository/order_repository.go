package repository

import (
	"context"

	"rebuy/internal/domain/entity"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Order, int64, error)
	ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Order, int64, error)
	Update(ctx context.Context, order *entity.Order) error
	CountByStatus(ctx context.Context, status string) (int64, error)
	SumTotalByStatus(ctx context.Context, status string) (float64, error)
}
