package handler

import (
	"github.com/labstack/echo/v4"

	"rebuy/internal/usecase"
	"rebuy/pkg/response"
	"rebuy/pkg/utils"
)

type OrderHandler struct {
	orderUseCase *usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{orderUseCase: orderUseCase}
}

func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	uid := c.Get("uid").(string)
	params := utils.GetPaginationParams(c)

	orders, total, err := h.orderUseCase.ListMyOrders(c.Request().Context(), uid, params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, orders, total, params.Page, params.PageSize)
}

func (h *OrderHandler) GetMyOrder(c echo.Context) error {
	uid := c.Get("uid").(string)

	order, err := h.orderUseCase.GetOrder(c.Request().Context(), uid, c.Param("id"), false)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

func (h *OrderHandler) ListOrders(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	orders, total, err := h.orderUseCase.ListOrders(c.Request().Context(), c.QueryParam("status"), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, orders, total, params.Page, params.PageSize)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	order, err := h.orderUseCase.GetOrder(c.Request().Context(), "", c.Param("id"), true)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending transfer_pending confirmed shipped delivered cancelled"`
	Note   string `json:"note"`
}

func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	adminID := c.Get("admin_id").(string)

	order, err := h.orderUseCase.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status, req.Note, adminID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

type assignCourierRequest struct {
	CourierName  string `json:"courier_name" validate:"required"`
	CourierPhone string `json:"courier_phone" validate:"required"`
}

func (h *OrderHandler) AssignCourier(c echo.Context) error {
	var req assignCourierRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	adminID := c.Get("admin_id").(string)

	order, err := h.orderUseCase.AssignCourier(c.Request().Context(), c.Param("id"), req.CourierName, req.CourierPhone, adminID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}
