package models

import (
	"time"

	"vente-backend/internal/billing"
)

type Customer struct {
	ID        int               `json:"id"`
	FirstName string            `json:"first_name"`
	LastName  string            `json:"last_name"`
	Phone     string            `json:"phone"`
	Email     string            `json:"email"`
	Address   string            `json:"address"`
	PriceTier billing.PriceTier `json:"price_tier"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// FullName is the "First Last" form documents snapshot as customer_name.
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// CreateCustomerRequest represents the request body for creating a customer
type CreateCustomerRequest struct {
	FirstName string            `json:"first_name"`
	LastName  string            `json:"last_name"`
	Phone     string            `json:"phone"`
	Email     string            `json:"email"`
	Address   string            `json:"address"`
	PriceTier billing.PriceTier `json:"price_tier"`
}

// UpdateCustomerRequest represents the request body for updating a customer
type UpdateCustomerRequest struct {
	FirstName string            `json:"first_name"`
	LastName  string            `json:"last_name"`
	Phone     string            `json:"phone"`
	Email     string            `json:"email"`
	Address   string            `json:"address"`
	PriceTier billing.PriceTier `json:"price_tier"`
}
