package usecase

import (
	"context"

	"rebuy/internal/domain/entity"
	"rebuy/internal/domain/repository"
	"rebuy/pkg/errors"
)

type StockUseCase struct {
	stockRepo repository.StockRepository
}

func NewStockUseCase(stockRepo repository.StockRepository) *StockUseCase {
	return &StockUseCase{
		stockRepo: stockRepo,
	}
}

type StockInput struct {
	Name         string
	Category     string
	Quantity     int
	ReorderLevel int
	UnitPrice    float64
	SupplierID   string
}

func (uc *StockUseCase) Create(ctx context.Context, input StockInput) (*entity.Stock, error) {
	stock := &entity.Stock{
		Name:         input.Name,
		Category:     input.Category,
		Quantity:     input.Quantity,
		ReorderLevel: input.ReorderLevel,
		UnitPrice:    input.UnitPrice,
		SupplierID:   input.SupplierID,
	}

	if err := uc.stockRepo.Create(ctx, stock); err != nil {
		return nil, err
	}

	return stock, nil
}

func (uc *StockUseCase) GetByID(ctx context.Context, id string) (*entity.Stock, error) {
	return uc.stockRepo.GetByID(ctx, id)
}

func (uc *StockUseCase) List(ctx context.Context, category string, limit, offset int) ([]*entity.Stock, int64, error) {
	return uc.stockRepo.List(ctx, category, limit, offset)
}

// ListLowStock returns items at or below their reorder level, the feed for
// the reorder workflow.
func (uc *StockUseCase) ListLowStock(ctx context.Context) ([]*entity.Stock, error) {
	return uc.stockRepo.ListLowStock(ctx)
}

func (uc *StockUseCase) Update(ctx context.Context, id string, input StockInput) (*entity.Stock, error) {
	stock, err := uc.stockRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	stock.Name = input.Name
	stock.Category = input.Category
	stock.Quantity = input.Quantity
	stock.ReorderLevel = input.ReorderLevel
	stock.UnitPrice = input.UnitPrice
	stock.SupplierID = input.SupplierID

	if err := uc.stockRepo.Update(ctx, stock); err != nil {
		return nil, err
	}

	return stock, nil
}

func (uc *StockUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.stockRepo.GetByID(ctx, id); err != nil {
		return errors.NotFound("Stock item", err)
	}
	return uc.stockRepo.Delete(ctx, id)
}
