package services

import (
	"testing"
	"time"

	"vente-backend/internal/billing"
	"vente-backend/internal/events"
	"vente-backend/internal/models"
)

// A partial payment still yields an invoice totaled from its lines. The
// amount actually paid is tracked on the payment row, so the invoice
// total must stay consistent with the line totals it carries.
func TestInvoiceFromPaymentPartialPayment(t *testing.T) {
	order := &models.Order{
		ID:           7,
		Number:       "CMD-012",
		CustomerName: "Jean Dupont",
		Lines: []billing.Line{
			{ProductID: 1, ProductName: "Vin Rouge Bordeaux", Quantity: 5, UnitPrice: 12.00, LineTotal: 60.00},
			{ProductID: 2, ProductName: "Champagne Brut", Quantity: 1, UnitPrice: 40.00, LineTotal: 40.00},
		},
		GrandTotal: 100.00,
		Status:     billing.StatusDelivered,
	}
	ev := events.PaymentRecorded{
		PaymentID:  31,
		OrderID:    7,
		Amount:     40.00,
		RecordedAt: time.Date(2025, 4, 2, 14, 30, 0, 0, time.UTC),
	}

	invoice, err := invoiceFromPayment(order, ev, "FAC-003")
	if err != nil {
		t.Fatalf("invoiceFromPayment: %v", err)
	}

	if invoice.GrandTotal != 100.00 {
		t.Errorf("grand total = %.2f, want 100.00", invoice.GrandTotal)
	}
	var sum float64
	for _, line := range invoice.Lines {
		sum += line.LineTotal
	}
	if invoice.GrandTotal != sum {
		t.Errorf("grand total %.2f does not match line total sum %.2f", invoice.GrandTotal, sum)
	}

	if invoice.Number != "FAC-004" {
		t.Errorf("number = %q, want FAC-004", invoice.Number)
	}
	if invoice.Status != billing.StatusPaid {
		t.Errorf("status = %q, want %q", invoice.Status, billing.StatusPaid)
	}
	if !invoice.IssueDate.Equal(ev.RecordedAt) {
		t.Errorf("issue date = %v, want %v", invoice.IssueDate, ev.RecordedAt)
	}
	if invoice.OrderID == nil || *invoice.OrderID != order.ID {
		t.Errorf("order link = %v, want %d", invoice.OrderID, order.ID)
	}
	if invoice.PaymentID == nil || *invoice.PaymentID != ev.PaymentID {
		t.Errorf("payment link = %v, want %d", invoice.PaymentID, ev.PaymentID)
	}
	if invoice.CustomerName != order.CustomerName {
		t.Errorf("customer = %q, want %q", invoice.CustomerName, order.CustomerName)
	}
}

func TestInvoiceFromPaymentEmptyOrder(t *testing.T) {
	order := &models.Order{ID: 9, Number: "CMD-020", CustomerName: "Marie Rakoto"}
	ev := events.PaymentRecorded{PaymentID: 5, OrderID: 9, Amount: 10.00, RecordedAt: time.Now()}

	if _, err := invoiceFromPayment(order, ev, ""); err == nil {
		t.Fatal("expected error for order without lines")
	}
}
