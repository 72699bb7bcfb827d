package usecase

import (
	"context"
	"fmt"

	"rebuy/internal/domain/entity"
	"rebuy/pkg/errors"
)

// In-memory repositories backing the usecase tests.

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if user.ID == "" {
		user.ID = fmt.Sprintf("user-%d", len(r.users)+1)
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) List(ctx context.Context, role string, limit, offset int) ([]*entity.User, int64, error) {
	var out []*entity.User
	for _, user := range r.users {
		if role == "" || user.Role == role {
			out = append(out, user)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return errors.NotFound("User", nil)
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return errors.NotFound("User", nil)
	}
	delete(r.users, id)
	return nil
}

type fakeStockRepo struct {
	stocks map[string]*entity.Stock
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{stocks: map[string]*entity.Stock{}}
}

func (r *fakeStockRepo) Create(ctx context.Context, stock *entity.Stock) error {
	if stock.ID == "" {
		stock.ID = fmt.Sprintf("stock-%d", len(r.stocks)+1)
	}
	r.stocks[stock.ID] = stock
	return nil
}

func (r *fakeStockRepo) GetByID(ctx context.Context, id string) (*entity.Stock, error) {
	stock, ok := r.stocks[id]
	if !ok {
		return nil, errors.NotFound("Stock item", nil)
	}
	return stock, nil
}

func (r *fakeStockRepo) List(ctx context.Context, category string, limit, offset int) ([]*entity.Stock, int64, error) {
	var out []*entity.Stock
	for _, stock := range r.stocks {
		if category == "" || stock.Category == category {
			out = append(out, stock)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeStockRepo) ListLowStock(ctx context.Context) ([]*entity.Stock, error) {
	var out []*entity.Stock
	for _, stock := range r.stocks {
		if stock.LowStock() {
			out = append(out, stock)
		}
	}
	return out, nil
}

func (r *fakeStockRepo) Update(ctx context.Context, stock *entity.Stock) error {
	if _, ok := r.stocks[stock.ID]; !ok {
		return errors.NotFound("Stock item", nil)
	}
	r.stocks[stock.ID] = stock
	return nil
}

func (r *fakeStockRepo) AdjustQuantity(ctx context.Context, id string, delta int, clampAtZero bool) error {
	stock, ok := r.stocks[id]
	if !ok {
		return errors.NotFound("Stock item", nil)
	}
	stock.Quantity += delta
	if clampAtZero && stock.Quantity < 0 {
		stock.Quantity = 0
	}
	return nil
}

func (r *fakeStockRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.stocks[id]; !ok {
		return errors.NotFound("Stock item", nil)
	}
	delete(r.stocks, id)
	return nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*entity.Product{}}
}

func (r *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		product.ID = fmt.Sprintf("product-%d", len(r.products)+1)
	}
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, errors.NotFound("Product", nil)
	}
	return product, nil
}

func (r *fakeProductRepo) List(ctx context.Context, filter map[string]interface{}, sort string, limit, offset int) ([]*entity.Product, int64, error) {
	var out []*entity.Product
	for _, product := range r.products {
		out = append(out, product)
	}
	return out, int64(len(out)), nil
}

func (r *fakeProductRepo) SearchByName(ctx context.Context, query string, limit, offset int) ([]*entity.Product, int64, error) {
	return nil, 0, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	if _, ok := r.products[product.ID]; !ok {
		return errors.NotFound("Product", nil)
	}
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) SoftDelete(ctx context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return errors.NotFound("Product", nil)
	}
	delete(r.products, id)
	return nil
}

type fakeCartRepo struct {
	carts map[string]*entity.Cart
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: map[string]*entity.Cart{}}
}

func (r *fakeCartRepo) GetByUserID(ctx context.Context, userID string) (*entity.Cart, error) {
	cart, ok := r.carts[userID]
	if !ok {
		cart = &entity.Cart{ID: "cart-" + userID, UserID: userID, Items: []entity.CartItem{}}
		r.carts[userID] = cart
	}
	return cart, nil
}

func (r *fakeCartRepo) Save(ctx context.Context, cart *entity.Cart) error {
	r.carts[cart.UserID] = cart
	return nil
}

func (r *fakeCartRepo) Clear(ctx context.Context, userID string) error {
	if cart, ok := r.carts[userID]; ok {
		cart.Items = []entity.CartItem{}
	}
	return nil
}

type fakeOrderRepo struct {
	orders map[string]*entity.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[string]*entity.Order{}}
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == "" {
		order.ID = fmt.Sprintf("order-%d", len(r.orders)+1)
	}
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, errors.NotFound("Order", nil)
	}
	return order, nil
}

func (r *fakeOrderRepo) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Order, int64, error) {
	var out []*entity.Order
	for _, order := range r.orders {
		if status, ok := filter["status"]; ok && order.Status != status {
			continue
		}
		out = append(out, order)
	}
	return out, int64(len(out)), nil
}

func (r *fakeOrderRepo) ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Order, int64, error) {
	var out []*entity.Order
	for _, order := range r.orders {
		if order.UserID == userID {
			out = append(out, order)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeOrderRepo) Update(ctx context.Context, order *entity.Order) error {
	if _, ok := r.orders[order.ID]; !ok {
		return errors.NotFound("Order", nil)
	}
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	for _, order := range r.orders {
		if status == "" || order.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *fakeOrderRepo) SumTotalByStatus(ctx context.Context, status string) (float64, error) {
	var sum float64
	for _, order := range r.orders {
		if order.Status == status {
			sum += order.Total
		}
	}
	return sum, nil
}

type fakeFeedbackRepo struct {
	entries map[string]*entity.Feedback
}

func newFakeFeedbackRepo() *fakeFeedbackRepo {
	return &fakeFeedbackRepo{entries: map[string]*entity.Feedback{}}
}

func (r *fakeFeedbackRepo) Create(ctx context.Context, feedback *entity.Feedback) error {
	if feedback.ID == "" {
		feedback.ID = fmt.Sprintf("feedback-%d", len(r.entries)+1)
	}
	r.entries[feedback.ID] = feedback
	return nil
}

func (r *fakeFeedbackRepo) GetByID(ctx context.Context, id string) (*entity.Feedback, error) {
	feedback, ok := r.entries[id]
	if !ok {
		return nil, errors.NotFound("Feedback", nil)
	}
	return feedback, nil
}

func (r *fakeFeedbackRepo) List(ctx context.Context, limit, offset int) ([]*entity.Feedback, int64, error) {
	var out []*entity.Feedback
	for _, feedback := range r.entries {
		out = append(out, feedback)
	}
	return out, int64(len(out)), nil
}

func (r *fakeFeedbackRepo) Update(ctx context.Context, feedback *entity.Feedback) error {
	if _, ok := r.entries[feedback.ID]; !ok {
		return errors.NotFound("Feedback", nil)
	}
	r.entries[feedback.ID] = feedback
	return nil
}

func (r *fakeFeedbackRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.entries[id]; !ok {
		return errors.NotFound("Feedback", nil)
	}
	delete(r.entries, id)
	return nil
}

type fakeTokenGenerator struct{}

func (fakeTokenGenerator) Generate(id, role string) (string, error) {
	return "token-" + id + "-" + role, nil
}

type fakeGoogleVerifier struct {
	email     string
	firstName string
	lastName  string
	err       error
}

func (v fakeGoogleVerifier) VerifyIDToken(idToken string) (string, string, string, error) {
	if v.err != nil {
		return "", "", "", v.err
	}
	return v.email, v.firstName, v.lastName, nil
}
