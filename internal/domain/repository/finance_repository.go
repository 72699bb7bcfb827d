package repository

import (
	"context"
	"time"

	"rebuy/internal/domain/entity"
)

type FinanceRepository interface {
	Create(ctx context.Context, entry *entity.FinanceEntry) error
	GetByID(ctx context.Context, id string) (*entity.FinanceEntry, error)
	List(ctx context.Context, entryType string, from, to time.Time, limit, offset int) ([]*entity.FinanceEntry, int64, error)
	SumByType(ctx context.Context, entryType string, from, to time.Time) (float64, error)
	Update(ctx context.Context, entry *entity.FinanceEntry) error
	Delete(ctx context.Context, id string) error
}
