package models

import "time"

type Payment struct {
	ID          int       `json:"id"`
	OrderID     int       `json:"order_id"`
	OrderNumber string    `json:"order_number,omitempty"` // joined from orders
	PaymentDate time.Time `json:"payment_date"`
	Amount      float64   `json:"amount"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreatePaymentRequest represents the request body for recording a
// payment. The date is always stamped server-side.
type CreatePaymentRequest struct {
	Amount float64 `json:"amount"`
}
