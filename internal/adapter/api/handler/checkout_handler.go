package handler

import (
	"github.com/labstack/echo/v4"

	"rebuy/internal/infrastructure/storage"
	"rebuy/internal/usecase"
	"rebuy/pkg/errors"
	"rebuy/pkg/response"
)

type CheckoutHandler struct {
	checkoutUseCase *usecase.CheckoutUseCase
	uploads         *storage.LocalStorage
}

func NewCheckoutHandler(checkoutUseCase *usecase.CheckoutUseCase, uploads *storage.LocalStorage) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUseCase: checkoutUseCase,
		uploads:         uploads,
	}
}

type checkoutRequest struct {
	PaymentMethod    string `json:"payment_method" validate:"required,oneof=bank_transfer card cash_on_delivery"`
	DeliveryMethod   string `json:"delivery_method" validate:"required,oneof=home alternate pickup"`
	AlternateAddress string `json:"alternate_address"`
	AlternateCity    string `json:"alternate_city"`
}

func (h *CheckoutHandler) Checkout(c echo.Context) error {
	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	order, err := h.checkoutUseCase.Checkout(c.Request().Context(), uid, usecase.CheckoutInput{
		PaymentMethod:    req.PaymentMethod,
		DeliveryMethod:   req.DeliveryMethod,
		AlternateAddress: req.AlternateAddress,
		AlternateCity:    req.AlternateCity,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, order)
}

// UploadSlip accepts the bank transfer proof for an order in a second
// request after checkout.
func (h *CheckoutHandler) UploadSlip(c echo.Context) error {
	orderID := c.Param("orderId")
	uid := c.Get("uid").(string)

	file, err := c.FormFile("slip")
	if err != nil {
		return response.Error(c, errors.BadRequest("Slip file is required", err))
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Failed to read uploaded file", err))
	}
	defer src.Close()

	slipPath, err := h.uploads.Save("slips", file.Filename, src)
	if err != nil {
		return response.Error(c, errors.Internal("Failed to store payment slip", err))
	}

	order, err := h.checkoutUseCase.AttachSlip(c.Request().Context(), uid, orderID, slipPath)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}
