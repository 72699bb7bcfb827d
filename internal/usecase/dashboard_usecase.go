package usecase

import (
	"context"

	"rebuy/internal/domain/entity"
	"rebuy/internal/domain/repository"
)

type DashboardUseCase struct {
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	stockRepo   repository.StockRepository
	offerRepo   repository.OfferRepository
}

func NewDashboardUseCase(
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	stockRepo repository.StockRepository,
	offerRepo repository.OfferRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		userRepo:    userRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		stockRepo:   stockRepo,
		offerRepo:   offerRepo,
	}
}

type DashboardStats struct {
	Users          int64            `json:"users"`
	Products       int64            `json:"products"`
	Orders         int64            `json:"orders"`
	OrdersByStatus map[string]int64 `json:"orders_by_status"`
	Revenue        float64          `json:"revenue"`
	LowStockItems  int              `json:"low_stock_items"`
	PendingOffers  int64            `json:"pending_offers"`
}

func (uc *DashboardUseCase) Stats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{
		OrdersByStatus: make(map[string]int64),
	}

	_, users, err := uc.userRepo.List(ctx, "", 1, 0)
	if err != nil {
		return nil, err
	}
	stats.Users = users

	_, products, err := uc.productRepo.List(ctx, nil, "", 1, 0)
	if err != nil {
		return nil, err
	}
	stats.Products = products

	total, err := uc.orderRepo.CountByStatus(ctx, "")
	if err != nil {
		return nil, err
	}
	stats.Orders = total

	statuses := []string{
		entity.OrderStatusPending,
		entity.OrderStatusTransferPending,
		entity.OrderStatusConfirmed,
		entity.OrderStatusShipped,
		entity.OrderStatusDelivered,
		entity.OrderStatusCancelled,
	}
	for _, status := range statuses {
		count, err := uc.orderRepo.CountByStatus(ctx, status)
		if err != nil {
			return nil, err
		}
		stats.OrdersByStatus[status] = count
	}

	revenue, err := uc.orderRepo.SumTotalByStatus(ctx, entity.OrderStatusDelivered)
	if err != nil {
		return nil, err
	}
	stats.Revenue = revenue

	lowStock, err := uc.stockRepo.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}
	stats.LowStockItems = len(lowStock)

	pendingOffers, err := uc.offerRepo.CountByStatus(ctx, entity.OfferStatusPending)
	if err != nil {
		return nil, err
	}
	stats.PendingOffers = pendingOffers

	return stats, nil
}
