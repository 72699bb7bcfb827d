package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rebuy/internal/domain/entity"
)

func TestDashboardStats(t *testing.T) {
	userRepo := newFakeUserRepo()
	productRepo := newFakeProductRepo()
	orderRepo := newFakeOrderRepo()
	stockRepo := newFakeStockRepo()
	offerRepo := newFakeOfferRepo()

	userRepo.users["user-1"] = &entity.User{ID: "user-1", Role: "buyer"}
	userRepo.users["user-2"] = &entity.User{ID: "user-2", Role: "supplier"}
	productRepo.products["product-1"] = &entity.Product{ID: "product-1"}

	orderRepo.orders["order-1"] = &entity.Order{ID: "order-1", Status: entity.OrderStatusDelivered, Total: 12000}
	orderRepo.orders["order-2"] = &entity.Order{ID: "order-2", Status: entity.OrderStatusDelivered, Total: 8000}
	orderRepo.orders["order-3"] = &entity.Order{ID: "order-3", Status: entity.OrderStatusPending, Total: 99999}

	stockRepo.stocks["stock-1"] = &entity.Stock{ID: "stock-1", Quantity: 2, ReorderLevel: 5}
	stockRepo.stocks["stock-2"] = &entity.Stock{ID: "stock-2", Quantity: 50, ReorderLevel: 5}

	offerRepo.offers["offer-1"] = &entity.SupplierOffer{ID: "offer-1", Status: entity.OfferStatusPending}
	offerRepo.offers["offer-2"] = &entity.SupplierOffer{ID: "offer-2", Status: entity.OfferStatusRejected}

	uc := NewDashboardUseCase(userRepo, productRepo, orderRepo, stockRepo, offerRepo)

	stats, err := uc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.Users)
	assert.Equal(t, int64(1), stats.Products)
	assert.Equal(t, int64(3), stats.Orders)
	assert.Equal(t, int64(2), stats.OrdersByStatus[entity.OrderStatusDelivered])
	assert.Equal(t, int64(1), stats.OrdersByStatus[entity.OrderStatusPending])
	// Revenue counts delivered orders only.
	assert.Equal(t, 20000.0, stats.Revenue)
	assert.Equal(t, 1, stats.LowStockItems)
	assert.Equal(t, int64(1), stats.PendingOffers)
}
