package usecase

import (
	"context"

	"rebuy/internal/domain/entity"
	"rebuy/internal/domain/repository"
	"rebuy/pkg/errors"
)

type CartUseCase struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartUseCase(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartUseCase {
	return &CartUseCase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// CartView is the cart plus its recomputed subtotal.
type CartView struct {
	*entity.Cart
	Subtotal float64 `json:"subtotal"`
}

func (uc *CartUseCase) GetCart(ctx context.Context, userID string) (*CartView, error) {
	cart, err := uc.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &CartView{Cart: cart, Subtotal: cart.Subtotal()}, nil
}

// AddItem denormalizes the product into the cart; adding an existing product
// merges quantities.
func (uc *CartUseCase) AddItem(ctx context.Context, userID, productID string, quantity int) (*CartView, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	cart, err := uc.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, entity.CartItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			ImagePath: product.ImagePath,
			Quantity:  quantity,
		})
	}

	if err := uc.cartRepo.Save(ctx, cart); err != nil {
		return nil, err
	}

	return &CartView{Cart: cart, Subtotal: cart.Subtotal()}, nil
}

func (uc *CartUseCase) UpdateItemQuantity(ctx context.Context, userID, productID string, quantity int) (*CartView, error) {
	cart, err := uc.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity = quantity
			found = true
			break
		}
	}
	if !found {
		return nil, errors.NotFound("Cart item", nil)
	}

	if err := uc.cartRepo.Save(ctx, cart); err != nil {
		return nil, err
	}

	return &CartView{Cart: cart, Subtotal: cart.Subtotal()}, nil
}

func (uc *CartUseCase) RemoveItem(ctx context.Context, userID, productID string) (*CartView, error) {
	cart, err := uc.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := cart.Items[:0]
	removed := false
	for _, item := range cart.Items {
		if item.ProductID == productID {
			removed = true
			continue
		}
		items = append(items, item)
	}
	if !removed {
		return nil, errors.NotFound("Cart item", nil)
	}
	cart.Items = items

	if err := uc.cartRepo.Save(ctx, cart); err != nil {
		return nil, err
	}

	return &CartView{Cart: cart, Subtotal: cart.Subtotal()}, nil
}

func (uc *CartUseCase) Clear(ctx context.Context, userID string) error {
	return uc.cartRepo.Clear(ctx, userID)
}
