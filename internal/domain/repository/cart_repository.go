package repository

import (
	"context"

	"rebuy/internal/domain/entity"
)

type CartRepository interface {
	GetByUserID(ctx context.Context, userID string) (*entity.Cart, error)
	Save(ctx context.Context, cart *entity.Cart) error
	Clear(ctx context.Context, userID string) error
}
