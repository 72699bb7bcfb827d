package handler

import (
	"github.com/labstack/echo/v4"

	"rebuy/internal/usecase"
	"rebuy/pkg/response"
	"rebuy/pkg/utils"
)

type StockHandler struct {
	stockUseCase *usecase.StockUseCase
}

func NewStockHandler(stockUseCase *usecase.StockUseCase) *StockHandler {
	return &StockHandler{
		stockUseCase: stockUseCase,
	}
}

type stockRequest struct {
	Name         string  `json:"name" validate:"required"`
	Category     string  `json:"category" validate:"required"`
	Quantity     int     `json:"quantity" validate:"gte=0"`
	ReorderLevel int     `json:"reorder_level" validate:"gte=0"`
	UnitPrice    float64 `json:"unit_price" validate:"gt=0"`
	SupplierID   string  `json:"supplier_id"`
}

func (h *StockHandler) CreateStock(c echo.Context) error {
	var req stockRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	stock, err := h.stockUseCase.Create(c.Request().Context(), usecase.StockInput{
		Name:         req.Name,
		Category:     req.Category,
		Quantity:     req.Quantity,
		ReorderLevel: req.ReorderLevel,
		UnitPrice:    req.UnitPrice,
		SupplierID:   req.SupplierID,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, stock)
}

func (h *StockHandler) GetStock(c echo.Context) error {
	id := c.Param("id")

	stock, err := h.stockUseCase.GetByID(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, stock)
}

func (h *StockHandler) ListStock(c echo.Context) error {
	category := c.QueryParam("category")
	pagination := utils.GetPaginationParams(c)

	stocks, total, err := h.stockUseCase.List(c.Request().Context(), category, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, stocks, total, pagination.Page, pagination.PageSize)
}

func (h *StockHandler) ListLowStock(c echo.Context) error {
	stocks, err := h.stockUseCase.ListLowStock(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, stocks)
}

func (h *StockHandler) UpdateStock(c echo.Context) error {
	id := c.Param("id")

	var req stockRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	stock, err := h.stockUseCase.Update(c.Request().Context(), id, usecase.StockInput{
		Name:         req.Name,
		Category:     req.Category,
		Quantity:     req.Quantity,
		ReorderLevel: req.ReorderLevel,
		UnitPrice:    req.UnitPrice,
		SupplierID:   req.SupplierID,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, stock)
}

func (h *StockHandler) DeleteStock(c echo.Context) error {
	id := c.Param("id")

	if err := h.stockUseCase.Delete(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Stock item deleted"})
}
