package handler

import (
	"github.com/labstack/echo/v4"

	"rebuy/internal/infrastructure/storage"
	"rebuy/internal/usecase"
	"rebuy/pkg/errors"
	"rebuy/pkg/response"
	"rebuy/pkg/utils"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
	uploads        *storage.LocalStorage
}

func NewProductHandler(productUseCase *usecase.ProductUseCase, uploads *storage.LocalStorage) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
		uploads:        uploads,
	}
}

type createProductRequest struct {
	StockID     string  `json:"stock_id" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Status      string  `json:"status" validate:"omitempty,oneof=active inactive"`
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.CreateProduct(c.Request().Context(), usecase.CreateProductInput{
		StockID:     req.StockID,
		Description: req.Description,
		Price:       req.Price,
		Status:      req.Status,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, product)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	id := c.Param("id")

	product, err := h.productUseCase.GetProductDetail(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	status := c.QueryParam("status")
	sort := c.QueryParam("sort")
	pagination := utils.GetPaginationParams(c)

	products, total, err := h.productUseCase.ListProducts(c.Request().Context(), status, sort, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, products, total, pagination.Page, pagination.PageSize)
}

func (h *ProductHandler) SearchProducts(c echo.Context) error {
	query := c.QueryParam("q")
	pagination := utils.GetPaginationParams(c)

	products, total, err := h.productUseCase.SearchProducts(c.Request().Context(), query, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, products, total, pagination.Page, pagination.PageSize)
}

type updateProductRequest struct {
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Status      string  `json:"status" validate:"omitempty,oneof=active inactive"`
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id := c.Param("id")

	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.UpdateProduct(c.Request().Context(), id, usecase.UpdateProductInput{
		Description: req.Description,
		Price:       req.Price,
		Status:      req.Status,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

// UploadImage accepts a multipart image, stores the original and a thumbnail,
// and records the paths on the product.
func (h *ProductHandler) UploadImage(c echo.Context) error {
	id := c.Param("id")

	file, err := c.FormFile("image")
	if err != nil {
		return response.Error(c, errors.BadRequest("Image file is required", err))
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Failed to read uploaded file", err))
	}
	defer src.Close()

	imagePath, thumbPath, err := h.uploads.SaveImage("products", file.Filename, src)
	if err != nil {
		return response.Error(c, errors.BadRequest("Uploaded file is not a valid image", err))
	}

	product, err := h.productUseCase.SetImage(c.Request().Context(), id, imagePath, thumbPath)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id := c.Param("id")

	if err := h.productUseCase.DeleteProduct(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Product deleted"})
}
