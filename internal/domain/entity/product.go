package entity

import (
	"time"
)

type Product struct {
	ID          string     `json:"id" bson:"_id"`
	StockID     string     `json:"stock_id" bson:"stockId"`
	Name        string     `json:"name" bson:"name"`
	Description string     `json:"description" bson:"description"`
	Price       float64    `json:"price" bson:"price"`
	ImagePath   string     `json:"image_path,omitempty" bson:"imagePath,omitempty"`
	ThumbPath   string     `json:"thumb_path,omitempty" bson:"thumbPath,omitempty"`
	Status      string     `json:"status" bson:"status"` // active, inactive
	CreatedAt   time.Time  `json:"created_at" bson:"createdAt"`
	UpdatedAt   time.Time  `json:"updated_at" bson:"updatedAt"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty" bson:"deletedAt,omitempty"`
}
