package entity

import (
	"time"
)

type Admin struct {
	ID           string     `json:"id" bson:"_id"`
	Email        string     `json:"email" bson:"email"`
	PasswordHash string     `json:"-" bson:"passwordHash"`
	Name         string     `json:"name" bson:"name"`
	Role         string     `json:"role" bson:"role"` // admin, super_admin
	Status       string     `json:"status" bson:"status"` // active, disabled
	LastLoginAt  *time.Time `json:"last_login_at,omitempty" bson:"lastLoginAt,omitempty"`
	CreatedAt    time.Time  `json:"created_at" bson:"createdAt"`
	UpdatedAt    time.Time  `json:"updated_at" bson:"updatedAt"`
}
