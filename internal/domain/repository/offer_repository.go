package repository

import (
	"context"

	"rebuy/internal/domain/entity"
)

type OfferRepository interface {
	Create(ctx context.Context, offer *entity.SupplierOffer) error
	GetByID(ctx context.Context, id string) (*entity.SupplierOffer, error)
	List(ctx context.Context, status string, limit, offset int) ([]*entity.SupplierOffer, int64, error)
	ListBySupplierID(ctx context.Context, supplierID string, limit, offset int) ([]*entity.SupplierOffer, int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	Update(ctx context.Context, offer *entity.SupplierOffer) error
	Delete(ctx context.Context, id string) error
}
