package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rebuy/internal/domain/entity"
	"rebuy/pkg/errors"
)

const testDeliveryFee = 350.0

func checkoutFixture(t *testing.T) (*CheckoutUseCase, *fakeCartRepo, *fakeOrderRepo) {
	t.Helper()

	cartRepo := newFakeCartRepo()
	orderRepo := newFakeOrderRepo()
	userRepo := newFakeUserRepo()

	userRepo.users["user-1"] = &entity.User{
		ID:         "user-1",
		Email:      "nimal@example.com",
		FirstName:  "Nimal",
		LastName:   "Perera",
		Phone:      "0771234567",
		Address:    "12 Temple Road",
		City:       "Kandy",
		PostalCode: "20000",
	}

	cartRepo.carts["user-1"] = &entity.Cart{
		ID:     "cart-user-1",
		UserID: "user-1",
		Items: []entity.CartItem{
			{ProductID: "product-1", Name: "Used phone", Price: 15000, Quantity: 2},
			{ProductID: "product-2", Name: "Used laptop", Price: 80000, Quantity: 1},
		},
	}

	return NewCheckoutUseCase(cartRepo, orderRepo, userRepo, testDeliveryFee), cartRepo, orderRepo
}

func TestCheckoutHomeDelivery(t *testing.T) {
	uc, cartRepo, _ := checkoutFixture(t)

	order, err := uc.Checkout(context.Background(), "user-1", CheckoutInput{
		PaymentMethod:  entity.PaymentMethodBankTransfer,
		DeliveryMethod: entity.DeliveryMethodHome,
	})
	require.NoError(t, err)

	assert.Equal(t, 110000.0, order.Subtotal)
	assert.Equal(t, testDeliveryFee, order.DeliveryCharge)
	assert.Equal(t, 110000.0+testDeliveryFee, order.Total)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, "Nimal Perera", order.Customer.Name)
	assert.Equal(t, "12 Temple Road", order.Customer.Address)
	assert.True(t, strings.HasPrefix(order.OrderNumber, "RB-"))

	require.Len(t, order.StatusHistory, 1)
	assert.Equal(t, "customer", order.StatusHistory[0].Actor)

	// The cart is emptied once the order exists.
	assert.Empty(t, cartRepo.carts["user-1"].Items)
}

func TestCheckoutPickupHasNoDeliveryCharge(t *testing.T) {
	uc, _, _ := checkoutFixture(t)

	order, err := uc.Checkout(context.Background(), "user-1", CheckoutInput{
		PaymentMethod:  entity.PaymentMethodCard,
		DeliveryMethod: entity.DeliveryMethodPickup,
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, order.DeliveryCharge)
	assert.Equal(t, order.Subtotal, order.Total)
	assert.Contains(t, order.Customer.Address, "Store pickup")
}

func TestCheckoutAlternateAddress(t *testing.T) {
	uc, _, _ := checkoutFixture(t)

	order, err := uc.Checkout(context.Background(), "user-1", CheckoutInput{
		PaymentMethod:    entity.PaymentMethodCashOnDelivery,
		DeliveryMethod:   entity.DeliveryMethodAlternate,
		AlternateAddress: "45 Beach Road",
		AlternateCity:    "Galle",
	})
	require.NoError(t, err)

	assert.Equal(t, "45 Beach Road", order.Customer.Address)
	assert.Equal(t, "Galle", order.Customer.City)
}

func TestCheckoutAlternateRequiresAddress(t *testing.T) {
	uc, _, _ := checkoutFixture(t)

	_, err := uc.Checkout(context.Background(), "user-1", CheckoutInput{
		PaymentMethod:  entity.PaymentMethodCard,
		DeliveryMethod: entity.DeliveryMethodAlternate,
	})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestCheckoutEmptyCart(t *testing.T) {
	uc, cartRepo, _ := checkoutFixture(t)
	cartRepo.carts["user-1"].Items = nil

	_, err := uc.Checkout(context.Background(), "user-1", CheckoutInput{
		PaymentMethod:  entity.PaymentMethodCard,
		DeliveryMethod: entity.DeliveryMethodPickup,
	})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestCheckoutDoubleSubmitCreatesTwoOrders(t *testing.T) {
	uc, cartRepo, orderRepo := checkoutFixture(t)

	input := CheckoutInput{
		PaymentMethod:  entity.PaymentMethodCard,
		DeliveryMethod: entity.DeliveryMethodPickup,
	}

	first, err := uc.Checkout(context.Background(), "user-1", input)
	require.NoError(t, err)

	// Simulate the second submit of a double-clicked form.
	cartRepo.carts["user-1"].Items = []entity.CartItem{
		{ProductID: "product-1", Name: "Used phone", Price: 15000, Quantity: 2},
	}
	second, err := uc.Checkout(context.Background(), "user-1", input)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, orderRepo.orders, 2)
}

func TestAttachSlip(t *testing.T) {
	uc, _, orderRepo := checkoutFixture(t)

	order, err := uc.Checkout(context.Background(), "user-1", CheckoutInput{
		PaymentMethod:  entity.PaymentMethodBankTransfer,
		DeliveryMethod: entity.DeliveryMethodHome,
	})
	require.NoError(t, err)

	updated, err := uc.AttachSlip(context.Background(), "user-1", order.ID, "slips/abc.jpg")
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusTransferPending, updated.Status)
	assert.Equal(t, "slips/abc.jpg", updated.SlipPath)
	assert.Len(t, updated.StatusHistory, 2)
	assert.Equal(t, entity.OrderStatusTransferPending, orderRepo.orders[order.ID].Status)
}

func TestAttachSlipRejectsOtherPaymentMethods(t *testing.T) {
	uc, _, _ := checkoutFixture(t)

	order, err := uc.Checkout(context.Background(), "user-1", CheckoutInput{
		PaymentMethod:  entity.PaymentMethodCard,
		DeliveryMethod: entity.DeliveryMethodHome,
	})
	require.NoError(t, err)

	_, err = uc.AttachSlip(context.Background(), "user-1", order.ID, "slips/abc.jpg")
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestAttachSlipRejectsOtherUsers(t *testing.T) {
	uc, _, _ := checkoutFixture(t)

	order, err := uc.Checkout(context.Background(), "user-1", CheckoutInput{
		PaymentMethod:  entity.PaymentMethodBankTransfer,
		DeliveryMethod: entity.DeliveryMethodHome,
	})
	require.NoError(t, err)

	_, err = uc.AttachSlip(context.Background(), "user-2", order.ID, "slips/abc.jpg")
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestGenerateOrderNumberFormat(t *testing.T) {
	number := generateOrderNumber(time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC))

	parts := strings.Split(number, "-")
	require.Len(t, parts, 3)
	assert.Equal(t, "RB", parts[0])
	assert.Equal(t, "2026", parts[1])
	assert.Len(t, parts[2], 6)
	assert.Equal(t, strings.ToUpper(parts[2]), parts[2])
}
