package entity

import (
	"time"
)

type Stock struct {
	ID           string    `json:"id" bson:"_id"`
	Name         string    `json:"name" bson:"name"`
	Category     string    `json:"category" bson:"category"`
	Quantity     int       `json:"quantity" bson:"quantity"`
	ReorderLevel int       `json:"reorder_level" bson:"reorderLevel"`
	UnitPrice    float64   `json:"unit_price" bson:"unitPrice"`
	SupplierID   string    `json:"supplier_id,omitempty" bson:"supplierId,omitempty"`
	CreatedAt    time.Time `json:"created_at" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updatedAt"`
}

// LowStock reports whether the item has fallen to its reorder level.
func (s *Stock) LowStock() bool {
	return s.Quantity <= s.ReorderLevel
}
