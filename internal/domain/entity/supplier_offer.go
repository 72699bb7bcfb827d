package entity

import (
	"time"
)

const (
	OfferStatusPending  = "Pending"
	OfferStatusApproved = "Approved"
	OfferStatusRejected = "Rejected"
)

type OfferDecision struct {
	DecidedBy string    `json:"decided_by" bson:"decidedBy"`
	DecidedAt time.Time `json:"decided_at" bson:"decidedAt"`
	Note      string    `json:"note,omitempty" bson:"note,omitempty"`
}

type SupplierOffer struct {
	ID           string         `json:"id" bson:"_id"`
	SupplierID   string         `json:"supplier_id" bson:"supplierId"`
	StockID      string         `json:"stock_id" bson:"stockId"`
	StockName    string         `json:"stock_name" bson:"stockName"`
	Quantity     int            `json:"quantity" bson:"quantity"`
	UnitPrice    float64        `json:"unit_price" bson:"unitPrice"`
	DeliveryDate time.Time      `json:"delivery_date" bson:"deliveryDate"`
	Note         string         `json:"note,omitempty" bson:"note,omitempty"`
	Status       string         `json:"status" bson:"status"` // Pending, Approved, Rejected
	Decision     *OfferDecision `json:"decision,omitempty" bson:"decision,omitempty"`
	CreatedAt    time.Time      `json:"created_at" bson:"createdAt"`
	UpdatedAt    time.Time      `json:"updated_at" bson:"updatedAt"`
}

// Total is the offered quantity at the offered unit price.
func (o *SupplierOffer) Total() float64 {
	return float64(o.Quantity) * o.UnitPrice
}
