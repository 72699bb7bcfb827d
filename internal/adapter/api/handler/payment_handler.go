package handler

import (
	"github.com/labstack/echo/v4"

	"rebuy/internal/usecase"
	"rebuy/pkg/response"
)

type PaymentHandler struct {
	paymentUseCase *usecase.PaymentUseCase
}

func NewPaymentHandler(paymentUseCase *usecase.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{paymentUseCase: paymentUseCase}
}

type createIntentRequest struct {
	OrderID string `json:"order_id" validate:"required"`
}

func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	var req createIntentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	result, err := h.paymentUseCase.CreateIntent(c.Request().Context(), uid, req.OrderID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, result)
}

// ConfirmPayment re-checks the intent with the gateway rather than trusting
// the client's claim that the charge went through.
func (h *PaymentHandler) ConfirmPayment(c echo.Context) error {
	order, err := h.paymentUseCase.ConfirmPayment(c.Request().Context(), c.Param("orderId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}
