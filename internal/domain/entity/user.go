package entity

import (
	"time"
)

type User struct {
	ID           string    `json:"id" bson:"_id"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"passwordHash"`
	FirstName    string    `json:"first_name" bson:"firstName"`
	LastName     string    `json:"last_name" bson:"lastName"`
	Role         string    `json:"role" bson:"role"` // buyer, supplier
	Provider     string    `json:"provider" bson:"provider"` // local, google
	Phone        string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Address      string    `json:"address,omitempty" bson:"address,omitempty"`
	City         string    `json:"city,omitempty" bson:"city,omitempty"`
	PostalCode   string    `json:"postal_code,omitempty" bson:"postalCode,omitempty"`
	CompanyName  string    `json:"company_name,omitempty" bson:"companyName,omitempty"`
	Status       string    `json:"status" bson:"status"` // active, disabled
	CreatedAt    time.Time `json:"created_at" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updatedAt"`
}
