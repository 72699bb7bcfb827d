package usecase

import (
	"context"

	"rebuy/internal/domain/entity"
	"rebuy/internal/domain/repository"
	"rebuy/pkg/errors"
)

type ProductUseCase struct {
	productRepo repository.ProductRepository
	stockRepo   repository.StockRepository
}

func NewProductUseCase(productRepo repository.ProductRepository, stockRepo repository.StockRepository) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		stockRepo:   stockRepo,
	}
}

type CreateProductInput struct {
	StockID     string
	Description string
	Price       float64
	Status      string
}

// CreateProduct derives the listing name from the referenced stock item.
func (uc *ProductUseCase) CreateProduct(ctx context.Context, input CreateProductInput) (*entity.Product, error) {
	stock, err := uc.stockRepo.GetByID(ctx, input.StockID)
	if err != nil {
		return nil, err
	}

	product := &entity.Product{
		StockID:     stock.ID,
		Name:        stock.Name,
		Description: input.Description,
		Price:       input.Price,
		Status:      input.Status,
	}
	if product.Status == "" {
		product.Status = "active"
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (uc *ProductUseCase) GetProductByID(ctx context.Context, id string) (*entity.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}

// ProductWithStock pairs a listing with the availability of its stock item.
type ProductWithStock struct {
	*entity.Product
	Available int `json:"available"`
}

// GetProductDetail resolves current availability from the stock record.
func (uc *ProductUseCase) GetProductDetail(ctx context.Context, id string) (*ProductWithStock, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	available := 0
	if stock, err := uc.stockRepo.GetByID(ctx, product.StockID); err == nil {
		available = stock.Quantity
	}

	return &ProductWithStock{Product: product, Available: available}, nil
}

func (uc *ProductUseCase) ListProducts(ctx context.Context, status, sort string, limit, offset int) ([]*entity.Product, int64, error) {
	filter := map[string]interface{}{}
	if status != "" {
		filter["status"] = status
	}
	return uc.productRepo.List(ctx, filter, sort, limit, offset)
}

func (uc *ProductUseCase) SearchProducts(ctx context.Context, query string, limit, offset int) ([]*entity.Product, int64, error) {
	if query == "" {
		return nil, 0, errors.BadRequest("Search query is required", nil)
	}
	return uc.productRepo.SearchByName(ctx, query, limit, offset)
}

type UpdateProductInput struct {
	Description string
	Price       float64
	Status      string
}

func (uc *ProductUseCase) UpdateProduct(ctx context.Context, id string, input UpdateProductInput) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Description = input.Description
	product.Price = input.Price
	if input.Status != "" {
		product.Status = input.Status
	}

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// SetImage stores uploaded image paths on the product.
func (uc *ProductUseCase) SetImage(ctx context.Context, id, imagePath, thumbPath string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.ImagePath = imagePath
	product.ThumbPath = thumbPath

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (uc *ProductUseCase) DeleteProduct(ctx context.Context, id string) error {
	return uc.productRepo.SoftDelete(ctx, id)
}
