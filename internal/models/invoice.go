package models

import (
	"time"

	"vente-backend/internal/billing"
)

// Invoice is a FAC-numbered document, structurally identical to an order.
// Invoices created automatically from a payment carry the source order and
// payment ids.
type Invoice struct {
	ID           int            `json:"id"`
	Number       string         `json:"number"`
	IssueDate    time.Time      `json:"issue_date"`
	CustomerName string         `json:"customer_name"`
	Lines        []billing.Line `json:"lines"`
	GrandTotal   float64        `json:"grand_total"`
	Status       string         `json:"status"`
	OrderID      *int           `json:"order_id,omitempty"`
	PaymentID    *int           `json:"payment_id,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// CreateInvoiceRequest represents the request body for creating an invoice
type CreateInvoiceRequest struct {
	CustomerID int                 `json:"customer_id"`
	Status     string              `json:"status"`
	Lines      []DocumentLineInput `json:"lines"`
}

// UpdateInvoiceRequest represents the request body for updating an invoice
type UpdateInvoiceRequest struct {
	CustomerID int                 `json:"customer_id"`
	Status     string              `json:"status"`
	Lines      []DocumentLineInput `json:"lines"`
}
