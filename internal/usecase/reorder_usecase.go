package usecase

import (
	"context"
	"time"

	"rebuy/internal/domain/entity"
	"rebuy/internal/domain/repository"
	"rebuy/pkg/errors"
)

type ReorderUseCase struct {
	reorderRepo repository.ReorderRepository
}

func NewReorderUseCase(reorderRepo repository.ReorderRepository) *ReorderUseCase {
	return &ReorderUseCase{
		reorderRepo: reorderRepo,
	}
}

type ReorderInput struct {
	Title       string
	Category    string
	Quantity    int
	Priority    string
	NeededBy    *time.Time
	Description string
}

func (uc *ReorderUseCase) Create(ctx context.Context, adminID string, input ReorderInput) (*entity.ReorderRequest, error) {
	req := &entity.ReorderRequest{
		Title:       input.Title,
		Category:    input.Category,
		Quantity:    input.Quantity,
		Priority:    input.Priority,
		NeededBy:    input.NeededBy,
		Description: input.Description,
		Status:      "Open",
		Replies:     []entity.ReorderReply{},
		CreatedBy:   adminID,
	}

	if err := uc.reorderRepo.Create(ctx, req); err != nil {
		return nil, err
	}

	return req, nil
}

func (uc *ReorderUseCase) GetByID(ctx context.Context, id string) (*entity.ReorderRequest, error) {
	return uc.reorderRepo.GetByID(ctx, id)
}

func (uc *ReorderUseCase) List(ctx context.Context, status string, limit, offset int) ([]*entity.ReorderRequest, int64, error) {
	return uc.reorderRepo.List(ctx, status, limit, offset)
}

func (uc *ReorderUseCase) Update(ctx context.Context, id string, input ReorderInput, status string) (*entity.ReorderRequest, error) {
	req, err := uc.reorderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Title = input.Title
	req.Category = input.Category
	req.Quantity = input.Quantity
	req.Priority = input.Priority
	req.NeededBy = input.NeededBy
	req.Description = input.Description
	if status != "" {
		req.Status = status
	}

	if err := uc.reorderRepo.Update(ctx, req); err != nil {
		return nil, err
	}

	return req, nil
}

// Reply appends a supplier response to the request document.
func (uc *ReorderUseCase) Reply(ctx context.Context, id, supplierID, message string, price float64) (*entity.ReorderRequest, error) {
	req, err := uc.reorderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != "Open" {
		return nil, errors.BadRequest("Reorder request is not open for replies", nil)
	}

	req.Replies = append(req.Replies, entity.ReorderReply{
		SupplierID: supplierID,
		Message:    message,
		Price:      price,
		CreatedAt:  time.Now(),
	})

	if err := uc.reorderRepo.Update(ctx, req); err != nil {
		return nil, err
	}

	return req, nil
}

func (uc *ReorderUseCase) Delete(ctx context.Context, id string) error {
	return uc.reorderRepo.Delete(ctx, id)
}
