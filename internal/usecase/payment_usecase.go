package usecase

import (
	"context"

	"rebuy/internal/domain/entity"
	"rebuy/internal/domain/repository"
	"rebuy/internal/domain/service"
	"rebuy/pkg/errors"
)

type PaymentUseCase struct {
	orderRepo    repository.OrderRepository
	orderUseCase *OrderUseCase
	gateway      *service.StripePaymentService
}

func NewPaymentUseCase(orderRepo repository.OrderRepository, orderUseCase *OrderUseCase, gateway *service.StripePaymentService) *PaymentUseCase {
	return &PaymentUseCase{
		orderRepo:    orderRepo,
		orderUseCase: orderUseCase,
		gateway:      gateway,
	}
}

type PaymentIntentResult struct {
	OrderID      string  `json:"order_id"`
	IntentID     string  `json:"intent_id"`
	ClientSecret string  `json:"client_secret"`
	Amount       float64 `json:"amount"`
}

// CreateIntent opens a card payment for the caller's order.
func (uc *PaymentUseCase) CreateIntent(ctx context.Context, userID, orderID string) (*PaymentIntentResult, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, errors.Forbidden("Order belongs to another user", nil)
	}
	if order.PaymentMethod != entity.PaymentMethodCard {
		return nil, errors.BadRequest("Order is not a card payment order", nil)
	}
	if order.Status != entity.OrderStatusPending {
		return nil, errors.BadRequest("Order is not awaiting payment", nil)
	}

	intent, err := uc.gateway.CreateIntent(ctx, order.ID, order.OrderNumber, order.Total, "lkr")
	if err != nil {
		return nil, errors.Internal("Failed to create payment intent", err)
	}

	order.PaymentIntent = intent.ID
	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	return &PaymentIntentResult{
		OrderID:      order.ID,
		IntentID:     intent.ID,
		ClientSecret: intent.ClientSecret,
		Amount:       order.Total,
	}, nil
}

// ConfirmPayment is the gateway callback path: it verifies the intent
// succeeded and confirms the order, which deducts stock.
func (uc *PaymentUseCase) ConfirmPayment(ctx context.Context, orderID string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.PaymentIntent == "" {
		return nil, errors.BadRequest("Order has no payment intent", nil)
	}

	intent, err := uc.gateway.GetIntent(ctx, order.PaymentIntent)
	if err != nil {
		return nil, errors.Internal("Failed to verify payment intent", err)
	}
	if intent.Status != "succeeded" {
		return nil, errors.BadRequest("Payment has not succeeded", nil)
	}

	return uc.orderUseCase.UpdateStatus(ctx, order.ID, entity.OrderStatusConfirmed, "Card payment received", "payment_gateway")
}
