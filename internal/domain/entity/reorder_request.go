package entity

import (
	"time"
)

type ReorderReply struct {
	SupplierID string    `json:"supplier_id" bson:"supplierId"`
	Message    string    `json:"message" bson:"message"`
	Price      float64   `json:"price,omitempty" bson:"price,omitempty"`
	CreatedAt  time.Time `json:"created_at" bson:"createdAt"`
}

type ReorderRequest struct {
	ID          string         `json:"id" bson:"_id"`
	Title       string         `json:"title" bson:"title"`
	Category    string         `json:"category" bson:"category"`
	Quantity    int            `json:"quantity" bson:"quantity"`
	Priority    string         `json:"priority" bson:"priority"` // Low, Medium, High
	NeededBy    *time.Time     `json:"needed_by,omitempty" bson:"neededBy,omitempty"`
	Description string         `json:"description,omitempty" bson:"description,omitempty"`
	Status      string         `json:"status" bson:"status"` // Open, Fulfilled, Closed
	Replies     []ReorderReply `json:"replies" bson:"replies"`
	CreatedBy   string         `json:"created_by" bson:"createdBy"`
	CreatedAt   time.Time      `json:"created_at" bson:"createdAt"`
	UpdatedAt   time.Time      `json:"updated_at" bson:"updatedAt"`
}
