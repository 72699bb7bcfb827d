package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rebuy/internal/domain/entity"
)

func orderFixture(t *testing.T) (*OrderUseCase, *fakeOrderRepo, *fakeStockRepo) {
	t.Helper()

	orderRepo := newFakeOrderRepo()
	productRepo := newFakeProductRepo()
	stockRepo := newFakeStockRepo()

	stockRepo.stocks["stock-1"] = &entity.Stock{ID: "stock-1", Name: "Used phone", Quantity: 10}
	stockRepo.stocks["stock-2"] = &entity.Stock{ID: "stock-2", Name: "Used laptop", Quantity: 2}
	productRepo.products["product-1"] = &entity.Product{ID: "product-1", StockID: "stock-1", Name: "Used phone", Price: 15000}
	productRepo.products["product-2"] = &entity.Product{ID: "product-2", StockID: "stock-2", Name: "Used laptop", Price: 80000}

	orderRepo.orders["order-1"] = &entity.Order{
		ID:          "order-1",
		OrderNumber: "RB-2026-ABC123",
		UserID:      "user-1",
		Status:      entity.OrderStatusPending,
		Items: []entity.OrderItem{
			{ProductID: "product-1", Quantity: 3, Price: 15000},
			{ProductID: "product-2", Quantity: 5, Price: 80000},
		},
		StatusHistory: []entity.StatusEntry{
			{Status: entity.OrderStatusPending, Actor: "customer"},
		},
	}

	return NewOrderUseCase(orderRepo, productRepo, stockRepo), orderRepo, stockRepo
}

func TestUpdateStatusConfirmedDeductsStock(t *testing.T) {
	uc, _, stockRepo := orderFixture(t)

	order, err := uc.UpdateStatus(context.Background(), "order-1", entity.OrderStatusConfirmed, "Transfer verified", "admin-1")
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusConfirmed, order.Status)
	assert.Equal(t, 7, stockRepo.stocks["stock-1"].Quantity)
	// Ordered 5 but only 2 on hand: the deduction clamps at zero.
	assert.Equal(t, 0, stockRepo.stocks["stock-2"].Quantity)
}

func TestUpdateStatusCancelledRestoresStock(t *testing.T) {
	uc, _, stockRepo := orderFixture(t)

	_, err := uc.UpdateStatus(context.Background(), "order-1", entity.OrderStatusCancelled, "Customer changed mind", "admin-1")
	require.NoError(t, err)

	assert.Equal(t, 13, stockRepo.stocks["stock-1"].Quantity)
	assert.Equal(t, 7, stockRepo.stocks["stock-2"].Quantity)
}

func TestUpdateStatusAppendsHistoryEntry(t *testing.T) {
	uc, orderRepo, _ := orderFixture(t)

	order, err := uc.UpdateStatus(context.Background(), "order-1", entity.OrderStatusShipped, "Handed to courier", "admin-1")
	require.NoError(t, err)

	require.Len(t, order.StatusHistory, 2)
	last := order.StatusHistory[1]
	assert.Equal(t, entity.OrderStatusShipped, last.Status)
	assert.Equal(t, "Handed to courier", last.Note)
	assert.Equal(t, "admin-1", last.Actor)
	assert.False(t, last.Timestamp.IsZero())

	assert.Equal(t, entity.OrderStatusShipped, orderRepo.orders["order-1"].Status)
}

func TestUpdateStatusDoesNotCheckTransitionLegality(t *testing.T) {
	uc, _, _ := orderFixture(t)

	// delivered straight from pending is accepted as-is.
	order, err := uc.UpdateStatus(context.Background(), "order-1", entity.OrderStatusDelivered, "", "admin-1")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDelivered, order.Status)

	// and back again.
	order, err = uc.UpdateStatus(context.Background(), "order-1", entity.OrderStatusPending, "", "admin-1")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
}

func TestUpdateStatusSkipsMissingProducts(t *testing.T) {
	uc, orderRepo, stockRepo := orderFixture(t)
	orderRepo.orders["order-1"].Items[0].ProductID = "product-gone"

	_, err := uc.UpdateStatus(context.Background(), "order-1", entity.OrderStatusConfirmed, "", "admin-1")
	require.NoError(t, err)

	// The missing item is skipped, the resolvable one still adjusts.
	assert.Equal(t, 10, stockRepo.stocks["stock-1"].Quantity)
	assert.Equal(t, 0, stockRepo.stocks["stock-2"].Quantity)
}

func TestGetOrderOwnership(t *testing.T) {
	uc, _, _ := orderFixture(t)

	_, err := uc.GetOrder(context.Background(), "user-2", "order-1", false)
	assert.Error(t, err)

	order, err := uc.GetOrder(context.Background(), "user-2", "order-1", true)
	require.NoError(t, err)
	assert.Equal(t, "order-1", order.ID)
}

func TestAssignCourier(t *testing.T) {
	uc, _, _ := orderFixture(t)

	order, err := uc.AssignCourier(context.Background(), "order-1", "PickMe Flash", "0771234567", "admin-1")
	require.NoError(t, err)

	require.NotNil(t, order.Courier)
	assert.Equal(t, "PickMe Flash", order.Courier.Name)
	// Courier assignment leaves the status untouched.
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Len(t, order.StatusHistory, 2)
}
