package entity

import (
	"time"
)

// CartItem is denormalized from Product at add time so a cart read does not
// need a catalog join. Price is the price at the moment the item was added.
type CartItem struct {
	ProductID string  `json:"product_id" bson:"productId"`
	Name      string  `json:"name" bson:"name"`
	Price     float64 `json:"price" bson:"price"`
	ImagePath string  `json:"image_path,omitempty" bson:"imagePath,omitempty"`
	Quantity  int     `json:"quantity" bson:"quantity"`
}

type Cart struct {
	ID        string     `json:"id" bson:"_id"`
	UserID    string     `json:"user_id" bson:"userId"`
	Items     []CartItem `json:"items" bson:"items"`
	CreatedAt time.Time  `json:"created_at" bson:"createdAt"`
	UpdatedAt time.Time  `json:"updated_at" bson:"updatedAt"`
}

// Subtotal is recomputed on every read rather than stored.
func (c *Cart) Subtotal() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
