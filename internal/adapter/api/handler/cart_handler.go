package handler

import (
	"github.com/labstack/echo/v4"

	"rebuy/internal/usecase"
	"rebuy/pkg/response"
)

type CartHandler struct {
	cartUseCase *usecase.CartUseCase
}

func NewCartHandler(cartUseCase *usecase.CartUseCase) *CartHandler {
	return &CartHandler{
		cartUseCase: cartUseCase,
	}
}

func (h *CartHandler) GetCart(c echo.Context) error {
	uid := c.Get("uid").(string)

	cart, err := h.cartUseCase.GetCart(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, cart)
}

type addItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

func (h *CartHandler) AddItem(c echo.Context) error {
	var req addItemRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	cart, err := h.cartUseCase.AddItem(c.Request().Context(), uid, req.ProductID, req.Quantity)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, cart)
}

type updateItemRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

func (h *CartHandler) UpdateItem(c echo.Context) error {
	productID := c.Param("productId")

	var req updateItemRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	cart, err := h.cartUseCase.UpdateItemQuantity(c.Request().Context(), uid, productID, req.Quantity)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, cart)
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	productID := c.Param("productId")
	uid := c.Get("uid").(string)

	cart, err := h.cartUseCase.RemoveItem(c.Request().Context(), uid, productID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, cart)
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.cartUseCase.Clear(c.Request().Context(), uid); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Cart cleared"})
}
