package usecase

import (
	"context"
	"time"

	"rebuy/internal/domain/entity"
	"rebuy/internal/domain/repository"
	"rebuy/pkg/errors"
	"rebuy/pkg/logger"
)

type OrderUseCase struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	stockRepo   repository.StockRepository
}

func NewOrderUseCase(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, stockRepo repository.StockRepository) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		stockRepo:   stockRepo,
	}
}

func (uc *OrderUseCase) GetOrder(ctx context.Context, userID, orderID string, isAdmin bool) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && order.UserID != userID {
		return nil, errors.Forbidden("Order belongs to another user", nil)
	}
	return order, nil
}

func (uc *OrderUseCase) ListMyOrders(ctx context.Context, userID string, limit, offset int) ([]*entity.Order, int64, error) {
	return uc.orderRepo.ListByUserID(ctx, userID, limit, offset)
}

func (uc *OrderUseCase) ListOrders(ctx context.Context, status string, limit, offset int) ([]*entity.Order, int64, error) {
	filter := map[string]interface{}{}
	if status != "" {
		filter["status"] = status
	}
	return uc.orderRepo.List(ctx, filter, limit, offset)
}

// UpdateStatus writes the supplied status and appends one history entry. The
// transition is not checked against the current state. Moving to confirmed
// deducts stock for each line item, clamped at zero; moving to cancelled adds
// the quantities back. The per-item writes are sequential and not atomic.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, orderID, newStatus, note, actor string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	switch newStatus {
	case entity.OrderStatusConfirmed:
		uc.adjustStockForOrder(ctx, order, -1)
	case entity.OrderStatusCancelled:
		uc.adjustStockForOrder(ctx, order, +1)
	}

	order.Status = newStatus
	order.StatusHistory = append(order.StatusHistory, entity.StatusEntry{
		Status:    newStatus,
		Note:      note,
		Actor:     actor,
		Timestamp: time.Now(),
	})

	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	logger.Info("Order %s status set to %s by %s", order.OrderNumber, newStatus, actor)
	return order, nil
}

// adjustStockForOrder walks the line items and applies direction*quantity to
// each referenced stock record. Deductions clamp at zero; restorations do
// not. A failed item is logged and skipped, leaving earlier items adjusted.
func (uc *OrderUseCase) adjustStockForOrder(ctx context.Context, order *entity.Order, direction int) {
	for _, item := range order.Items {
		product, err := uc.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			logger.LogOrderError(order.ID, "stock_adjust", err)
			continue
		}

		delta := direction * item.Quantity
		clamp := direction < 0
		if err := uc.stockRepo.AdjustQuantity(ctx, product.StockID, delta, clamp); err != nil {
			logger.LogOrderError(order.ID, "stock_adjust", err)
		}
	}
}

// AssignCourier records the delivery courier on the order with a history
// entry; the status itself is unchanged.
func (uc *OrderUseCase) AssignCourier(ctx context.Context, orderID, courierName, courierPhone, actor string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	order.Courier = &entity.CourierInfo{
		Name:  courierName,
		Phone: courierPhone,
	}
	order.StatusHistory = append(order.StatusHistory, entity.StatusEntry{
		Status:    order.Status,
		Note:      "Courier assigned: " + courierName,
		Actor:     actor,
		Timestamp: time.Now(),
	})

	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}
