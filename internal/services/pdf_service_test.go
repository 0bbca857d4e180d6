package services

import (
	"bytes"
	"testing"
	"time"

	"vente-backend/internal/billing"
	"vente-backend/internal/models"
)

func TestRenderInvoice(t *testing.T) {
	invoice := &models.Invoice{
		Number:       "FAC-004",
		IssueDate:    time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		CustomerName: "Jean Dupont",
		Lines: []billing.Line{
			{ProductID: 1, ProductName: "Vin Rouge Bordeaux", Quantity: 3, UnitPrice: 8.50, LineTotal: 25.50},
			{ProductID: 3, ProductName: "Eau Minerale", Quantity: 10, UnitPrice: 0.40, LineTotal: 4.00},
		},
		GrandTotal: 29.50,
		Status:     billing.StatusUnpaid,
	}

	data, err := NewPDFService().RenderInvoice(invoice)
	if err != nil {
		t.Fatalf("RenderInvoice: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("empty output")
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output is not a PDF, starts with %q", data[:min(8, len(data))])
	}
}
