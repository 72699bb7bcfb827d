package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"rebuy/internal/domain/entity"
	"rebuy/internal/domain/repository"
	"rebuy/pkg/errors"
	"rebuy/pkg/logger"
)

const pickupAddress = "Store pickup - ReBuy.lk, 128 Galle Road, Colombo 03"

type CheckoutUseCase struct {
	cartRepo    repository.CartRepository
	orderRepo   repository.OrderRepository
	userRepo    repository.UserRepository
	deliveryFee float64
}

func NewCheckoutUseCase(cartRepo repository.CartRepository, orderRepo repository.OrderRepository, userRepo repository.UserRepository, deliveryFee float64) *CheckoutUseCase {
	return &CheckoutUseCase{
		cartRepo:    cartRepo,
		orderRepo:   orderRepo,
		userRepo:    userRepo,
		deliveryFee: deliveryFee,
	}
}

type CheckoutInput struct {
	PaymentMethod    string
	DeliveryMethod   string
	AlternateAddress string
	AlternateCity    string
}

// Checkout snapshots the cart into an order and empties the cart. There is no
// idempotency key; submitting twice creates two orders.
func (uc *CheckoutUseCase) Checkout(ctx context.Context, userID string, input CheckoutInput) (*entity.Order, error) {
	cart, err := uc.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, errors.BadRequest("Cart is empty", nil)
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	customer := entity.CustomerInfo{
		Name:  strings.TrimSpace(user.FirstName + " " + user.LastName),
		Email: user.Email,
		Phone: user.Phone,
	}

	switch input.DeliveryMethod {
	case entity.DeliveryMethodHome:
		if user.Address == "" {
			return nil, errors.BadRequest("No address on profile; update your profile or choose another delivery method", nil)
		}
		customer.Address = user.Address
		customer.City = user.City
		customer.PostalCode = user.PostalCode
	case entity.DeliveryMethodAlternate:
		if input.AlternateAddress == "" {
			return nil, errors.BadRequest("Alternate address is required", nil)
		}
		customer.Address = input.AlternateAddress
		customer.City = input.AlternateCity
	case entity.DeliveryMethodPickup:
		customer.Address = pickupAddress
	default:
		return nil, errors.BadRequest("Invalid delivery method", nil)
	}

	items := make([]entity.OrderItem, len(cart.Items))
	var subtotal float64
	for i, item := range cart.Items {
		items[i] = entity.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			ImagePath: item.ImagePath,
			Quantity:  item.Quantity,
		}
		subtotal += item.Price * float64(item.Quantity)
	}

	deliveryCharge := uc.deliveryFee
	if input.DeliveryMethod == entity.DeliveryMethodPickup {
		deliveryCharge = 0
	}

	now := time.Now()
	order := &entity.Order{
		OrderNumber:    generateOrderNumber(now),
		UserID:         userID,
		Items:          items,
		Customer:       customer,
		DeliveryMethod: input.DeliveryMethod,
		PaymentMethod:  input.PaymentMethod,
		Subtotal:       subtotal,
		DeliveryCharge: deliveryCharge,
		Total:          subtotal + deliveryCharge,
		Status:         entity.OrderStatusPending,
		StatusHistory: []entity.StatusEntry{{
			Status:    entity.OrderStatusPending,
			Note:      "Order placed",
			Actor:     "customer",
			Timestamp: now,
		}},
	}

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	if err := uc.cartRepo.Clear(ctx, userID); err != nil {
		// The order exists either way; an uncleared cart is recoverable.
		logger.Warn("Failed to clear cart after checkout for user %s: %v", userID, err)
	}

	logger.Info("Order %s created for user %s, total %.2f", order.OrderNumber, userID, order.Total)
	return order, nil
}

// AttachSlip stores the payment slip path on a bank-transfer order and moves
// it to transfer_pending.
func (uc *CheckoutUseCase) AttachSlip(ctx context.Context, userID, orderID, slipPath string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, errors.Forbidden("Order belongs to another user", nil)
	}
	if order.PaymentMethod != entity.PaymentMethodBankTransfer {
		return nil, errors.BadRequest("Order is not a bank transfer order", nil)
	}

	order.SlipPath = slipPath
	order.Status = entity.OrderStatusTransferPending
	order.StatusHistory = append(order.StatusHistory, entity.StatusEntry{
		Status:    entity.OrderStatusTransferPending,
		Note:      "Payment slip uploaded",
		Actor:     "customer",
		Timestamp: time.Now(),
	})

	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

func generateOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("RB-%d-%s", now.Year(), suffix)
}
