package models

import (
	"time"

	"vente-backend/internal/billing"
)

// Order is a CMD-numbered document. Lines and grand total are derived
// server-side through the billing engine; the stored values are the
// snapshots taken at submission time.
type Order struct {
	ID           int            `json:"id"`
	Number       string         `json:"number"`
	IssueDate    time.Time      `json:"issue_date"`
	CustomerName string         `json:"customer_name"`
	Lines        []billing.Line `json:"lines"`
	GrandTotal   float64        `json:"grand_total"`
	Status       string         `json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// DocumentLineInput is one draft line as submitted by the client: a
// product reference and a quantity. Prices are never accepted from the
// client.
type DocumentLineInput struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

// CreateOrderRequest represents the request body for creating an order.
// The customer is referenced by id so the server can resolve the price
// tier; number, date, prices and totals are all derived.
type CreateOrderRequest struct {
	CustomerID int                 `json:"customer_id"`
	Status     string              `json:"status"`
	Lines      []DocumentLineInput `json:"lines"`
}

// UpdateOrderRequest mirrors the create request; the order keeps its
// number but every derived field is recomputed.
type UpdateOrderRequest struct {
	CustomerID int                 `json:"customer_id"`
	Status     string              `json:"status"`
	Lines      []DocumentLineInput `json:"lines"`
}

// OrderBalance is the payment position of an order.
type OrderBalance struct {
	OrderID     int     `json:"order_id"`
	GrandTotal  float64 `json:"grand_total"`
	TotalPaid   float64 `json:"total_paid"`
	Outstanding float64 `json:"outstanding"`
}
