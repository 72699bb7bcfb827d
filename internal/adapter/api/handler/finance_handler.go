package handler

import (
	"github.com/labstack/echo/v4"

	"rebuy/internal/usecase"
	"rebuy/pkg/response"
	"rebuy/pkg/utils"
)

type FinanceHandler struct {
	financeUseCase *usecase.FinanceUseCase
}

func NewFinanceHandler(financeUseCase *usecase.FinanceUseCase) *FinanceHandler {
	return &FinanceHandler{financeUseCase: financeUseCase}
}

type financeEntryRequest struct {
	Type        string  `json:"type" validate:"required,oneof=income expense"`
	Category    string  `json:"category" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description"`
	Date        string  `json:"date" validate:"required"`
}

func (h *FinanceHandler) Create(c echo.Context) error {
	var req financeEntryRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return response.Error(c, err)
	}

	adminID := c.Get("admin_id").(string)

	entry, err := h.financeUseCase.Create(c.Request().Context(), adminID, usecase.FinanceInput{
		Type:        req.Type,
		Category:    req.Category,
		Amount:      req.Amount,
		Description: req.Description,
		Date:        date,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, entry)
}

func (h *FinanceHandler) List(c echo.Context) error {
	from, err := utils.ParseDateOrZero(c.QueryParam("from"))
	if err != nil {
		return response.Error(c, err)
	}

	to, err := utils.ParseDateOrZero(c.QueryParam("to"))
	if err != nil {
		return response.Error(c, err)
	}

	params := utils.GetPaginationParams(c)

	entries, total, err := h.financeUseCase.List(c.Request().Context(), c.QueryParam("type"), from, to, params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, entries, total, params.Page, params.PageSize)
}

func (h *FinanceHandler) Update(c echo.Context) error {
	var req financeEntryRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return response.Error(c, err)
	}

	entry, err := h.financeUseCase.Update(c.Request().Context(), c.Param("id"), usecase.FinanceInput{
		Type:        req.Type,
		Category:    req.Category,
		Amount:      req.Amount,
		Description: req.Description,
		Date:        date,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, entry)
}

func (h *FinanceHandler) Delete(c echo.Context) error {
	if err := h.financeUseCase.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Finance entry deleted"})
}

func (h *FinanceHandler) Summary(c echo.Context) error {
	from, err := utils.ParseDateOrZero(c.QueryParam("from"))
	if err != nil {
		return response.Error(c, err)
	}

	to, err := utils.ParseDateOrZero(c.QueryParam("to"))
	if err != nil {
		return response.Error(c, err)
	}

	summary, err := h.financeUseCase.Summary(c.Request().Context(), from, to)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, summary)
}
