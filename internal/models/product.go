package models

import (
	"time"

	"vente-backend/internal/billing"
)

type Category struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Product carries one price per customer tier. Catalog prices are
// reference data; documents snapshot the resolved unit price at selection
// time and never follow later catalog edits.
type Product struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	CategoryID     int       `json:"category_id"`
	CategoryName   string    `json:"category_name,omitempty"` // joined from categories
	WholesalePrice float64   `json:"wholesale_price"`
	RetailPrice    float64   `json:"retail_price"`
	ConsumerPrice  float64   `json:"consumer_price"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Priced returns the billing view of the product.
func (p *Product) Priced() billing.PricedProduct {
	return billing.PricedProduct{
		ID:             p.ID,
		Name:           p.Name,
		WholesalePrice: p.WholesalePrice,
		RetailPrice:    p.RetailPrice,
		ConsumerPrice:  p.ConsumerPrice,
	}
}

// CreateProductRequest represents the request body for creating a product
type CreateProductRequest struct {
	Name           string  `json:"name"`
	CategoryID     int     `json:"category_id"`
	WholesalePrice float64 `json:"wholesale_price"`
	RetailPrice    float64 `json:"retail_price"`
	ConsumerPrice  float64 `json:"consumer_price"`
}

// UpdateProductRequest represents the request body for updating a product
type UpdateProductRequest struct {
	Name           string  `json:"name"`
	CategoryID     int     `json:"category_id"`
	WholesalePrice float64 `json:"wholesale_price"`
	RetailPrice    float64 `json:"retail_price"`
	ConsumerPrice  float64 `json:"consumer_price"`
}

type CreateCategoryRequest struct {
	Name string `json:"name"`
}
