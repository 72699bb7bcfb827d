package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"rebuy/internal/usecase"
	"rebuy/pkg/response"
	"rebuy/pkg/utils"
)

type ReorderHandler struct {
	reorderUseCase *usecase.ReorderUseCase
}

func NewReorderHandler(reorderUseCase *usecase.ReorderUseCase) *ReorderHandler {
	return &ReorderHandler{reorderUseCase: reorderUseCase}
}

type reorderRequest struct {
	Title       string     `json:"title" validate:"required"`
	Category    string     `json:"category" validate:"required"`
	Quantity    int        `json:"quantity" validate:"required,gt=0"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=Low Medium High"`
	NeededBy    *time.Time `json:"needed_by"`
	Description string     `json:"description"`
}

func (r reorderRequest) toInput() usecase.ReorderInput {
	return usecase.ReorderInput{
		Title:       r.Title,
		Category:    r.Category,
		Quantity:    r.Quantity,
		Priority:    r.Priority,
		NeededBy:    r.NeededBy,
		Description: r.Description,
	}
}

func (h *ReorderHandler) Create(c echo.Context) error {
	var req reorderRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	adminID := c.Get("admin_id").(string)

	request, err := h.reorderUseCase.Create(c.Request().Context(), adminID, req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, request)
}

func (h *ReorderHandler) List(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	requests, total, err := h.reorderUseCase.List(c.Request().Context(), c.QueryParam("status"), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, requests, total, params.Page, params.PageSize)
}

func (h *ReorderHandler) Get(c echo.Context) error {
	request, err := h.reorderUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, request)
}

type updateReorderRequest struct {
	reorderRequest
	Status string `json:"status" validate:"omitempty,oneof=Open Fulfilled Closed"`
}

func (h *ReorderHandler) Update(c echo.Context) error {
	var req updateReorderRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	request, err := h.reorderUseCase.Update(c.Request().Context(), c.Param("id"), req.toInput(), req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, request)
}

type reorderReplyRequest struct {
	Message string  `json:"message" validate:"required"`
	Price   float64 `json:"price" validate:"required,gt=0"`
}

func (h *ReorderHandler) Reply(c echo.Context) error {
	var req reorderReplyRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	supplierID := c.Get("uid").(string)

	request, err := h.reorderUseCase.Reply(c.Request().Context(), c.Param("id"), supplierID, req.Message, req.Price)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, request)
}

func (h *ReorderHandler) Delete(c echo.Context) error {
	if err := h.reorderUseCase.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Reorder request deleted"})
}
