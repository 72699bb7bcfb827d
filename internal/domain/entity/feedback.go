package entity

import (
	"time"
)

type Feedback struct {
	ID        string    `json:"id" bson:"_id"`
	UserID    string    `json:"user_id" bson:"userId"`
	UserName  string    `json:"user_name" bson:"userName"`
	Rating    int       `json:"rating" bson:"rating"` // 1..5
	Message   string    `json:"message" bson:"message"`
	CreatedAt time.Time `json:"created_at" bson:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" bson:"updatedAt"`
}
