package entity

import (
	"time"
)

const (
	OrderStatusPending         = "pending"
	OrderStatusTransferPending = "transfer_pending"
	OrderStatusConfirmed       = "confirmed"
	OrderStatusShipped         = "shipped"
	OrderStatusDelivered       = "delivered"
	OrderStatusCancelled       = "cancelled"
)

const (
	PaymentMethodBankTransfer   = "bank_transfer"
	PaymentMethodCard           = "card"
	PaymentMethodCashOnDelivery = "cash_on_delivery"
)

const (
	DeliveryMethodHome      = "home"
	DeliveryMethodAlternate = "alternate"
	DeliveryMethodPickup    = "pickup"
)

type OrderItem struct {
	ProductID string  `json:"product_id" bson:"productId"`
	Name      string  `json:"name" bson:"name"`
	Price     float64 `json:"price" bson:"price"`
	ImagePath string  `json:"image_path,omitempty" bson:"imagePath,omitempty"`
	Quantity  int     `json:"quantity" bson:"quantity"`
}

// CustomerInfo is copied from the User at checkout time. Later profile edits
// do not touch existing orders.
type CustomerInfo struct {
	Name       string `json:"name" bson:"name"`
	Email      string `json:"email" bson:"email"`
	Phone      string `json:"phone,omitempty" bson:"phone,omitempty"`
	Address    string `json:"address" bson:"address"`
	City       string `json:"city,omitempty" bson:"city,omitempty"`
	PostalCode string `json:"postal_code,omitempty" bson:"postalCode,omitempty"`
}

type StatusEntry struct {
	Status    string    `json:"status" bson:"status"`
	Note      string    `json:"note,omitempty" bson:"note,omitempty"`
	Actor     string    `json:"actor" bson:"actor"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

type CourierInfo struct {
	Name  string `json:"name" bson:"name"`
	Phone string `json:"phone" bson:"phone"`
}

type Order struct {
	ID             string        `json:"id" bson:"_id"`
	OrderNumber    string        `json:"order_number" bson:"orderNumber"`
	UserID         string        `json:"user_id" bson:"userId"`
	Items          []OrderItem   `json:"items" bson:"items"`
	Customer       CustomerInfo  `json:"customer" bson:"customer"`
	DeliveryMethod string        `json:"delivery_method" bson:"deliveryMethod"`
	PaymentMethod  string        `json:"payment_method" bson:"paymentMethod"`
	SlipPath       string        `json:"slip_path,omitempty" bson:"slipPath,omitempty"`
	Subtotal       float64       `json:"subtotal" bson:"subtotal"`
	DeliveryCharge float64       `json:"delivery_charge" bson:"deliveryCharge"`
	Total          float64       `json:"total" bson:"total"`
	Status         string        `json:"status" bson:"status"`
	StatusHistory  []StatusEntry `json:"status_history" bson:"statusHistory"`
	Courier        *CourierInfo  `json:"courier,omitempty" bson:"courier,omitempty"`
	PaymentIntent  string        `json:"payment_intent,omitempty" bson:"paymentIntent,omitempty"`
	CreatedAt      time.Time     `json:"created_at" bson:"createdAt"`
	UpdatedAt      time.Time     `json:"updated_at" bson:"updatedAt"`
}

// Terminal reports whether the order has reached a final state.
func (o *Order) Terminal() bool {
	return o.Status == OrderStatusDelivered || o.Status == OrderStatusCancelled
}
