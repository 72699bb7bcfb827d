package repository

import (
	"context"

	"rebuy/internal/domain/entity"
)

type AdminRepository interface {
	Create(ctx context.Context, admin *entity.Admin) error
	GetByID(ctx context.Context, id string) (*entity.Admin, error)
	GetByEmail(ctx context.Context, email string) (*entity.Admin, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Admin, int64, error)
	Update(ctx context.Context, admin *entity.Admin) error
	Delete(ctx context.Context, id string) error
}
