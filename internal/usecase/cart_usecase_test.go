package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rebuy/internal/domain/entity"
	"rebuy/pkg/errors"
)

func cartFixture(t *testing.T) (*CartUseCase, *fakeCartRepo) {
	t.Helper()

	cartRepo := newFakeCartRepo()
	productRepo := newFakeProductRepo()

	productRepo.products["product-1"] = &entity.Product{ID: "product-1", Name: "Used phone", Price: 15000}
	productRepo.products["product-2"] = &entity.Product{ID: "product-2", Name: "Used laptop", Price: 80000}

	return NewCartUseCase(cartRepo, productRepo), cartRepo
}

func TestGetCartCreatesLazily(t *testing.T) {
	uc, _ := cartFixture(t)

	view, err := uc.GetCart(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Empty(t, view.Items)
	assert.Equal(t, 0.0, view.Subtotal)
}

func TestAddItemMergesExisting(t *testing.T) {
	uc, _ := cartFixture(t)

	_, err := uc.AddItem(context.Background(), "user-1", "product-1", 2)
	require.NoError(t, err)

	view, err := uc.AddItem(context.Background(), "user-1", "product-1", 3)
	require.NoError(t, err)

	require.Len(t, view.Items, 1)
	assert.Equal(t, 5, view.Items[0].Quantity)
	assert.Equal(t, 75000.0, view.Subtotal)
}

func TestAddItemDenormalizesProduct(t *testing.T) {
	uc, _ := cartFixture(t)

	view, err := uc.AddItem(context.Background(), "user-1", "product-2", 1)
	require.NoError(t, err)

	require.Len(t, view.Items, 1)
	assert.Equal(t, "Used laptop", view.Items[0].Name)
	assert.Equal(t, 80000.0, view.Items[0].Price)
}

func TestAddItemUnknownProduct(t *testing.T) {
	uc, _ := cartFixture(t)

	_, err := uc.AddItem(context.Background(), "user-1", "product-x", 1)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestUpdateItemQuantity(t *testing.T) {
	uc, _ := cartFixture(t)

	_, err := uc.AddItem(context.Background(), "user-1", "product-1", 2)
	require.NoError(t, err)

	view, err := uc.UpdateItemQuantity(context.Background(), "user-1", "product-1", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, view.Items[0].Quantity)

	_, err = uc.UpdateItemQuantity(context.Background(), "user-1", "product-2", 1)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestRemoveItem(t *testing.T) {
	uc, _ := cartFixture(t)

	_, err := uc.AddItem(context.Background(), "user-1", "product-1", 2)
	require.NoError(t, err)
	_, err = uc.AddItem(context.Background(), "user-1", "product-2", 1)
	require.NoError(t, err)

	view, err := uc.RemoveItem(context.Background(), "user-1", "product-1")
	require.NoError(t, err)

	require.Len(t, view.Items, 1)
	assert.Equal(t, "product-2", view.Items[0].ProductID)

	_, err = uc.RemoveItem(context.Background(), "user-1", "product-1")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
