package repository

import (
	"context"

	"rebuy/internal/domain/entity"
)

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *entity.Feedback) error
	GetByID(ctx context.Context, id string) (*entity.Feedback, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Feedback, int64, error)
	Update(ctx context.Context, feedback *entity.Feedback) error
	Delete(ctx context.Context, id string) error
}
