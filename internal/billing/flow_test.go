package billing

import (
	"testing"
	"time"
)

// Walks an order from draft entry through partial payments to the paid
// invoice that each payment yields.
func TestOrderPaymentInvoiceFlow(t *testing.T) {
	catalog := testCatalog()

	draft := Draft{Kind: KindOrder}
	draft = SetCustomer(draft, "Marie Rakoto", TierRetail, catalog)
	draft = AddLine(draft)
	draft = SetLineProduct(draft, 0, 2, catalog)
	draft = SetLineQuantity(draft, 0, 2)
	draft = AddLine(draft)
	draft = SetLineProduct(draft, 1, 3, catalog)
	draft = SetLineQuantity(draft, 1, 4)

	draft.Number = NextNumber("CMD-041", OrderPrefix)
	if draft.Number != "CMD-042" {
		t.Fatalf("order number = %q", draft.Number)
	}

	now := time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC)
	order, err := BuildForSubmission(draft, now)
	if err != nil {
		t.Fatalf("BuildForSubmission: %v", err)
	}
	// 2*35.00 + 4*9.50
	if order.GrandTotal != 108.00 {
		t.Fatalf("grand total = %v", order.GrandTotal)
	}

	// First payment: within bounds.
	if err := CheckPayment(order.GrandTotal, 0, 60); err != nil {
		t.Fatalf("first payment rejected: %v", err)
	}
	// Second payment may only cover what remains.
	if err := CheckPayment(order.GrandTotal, 60, 50); err != ErrPaymentExceedsBalance {
		t.Errorf("overpayment allowed: %v", err)
	}
	if err := CheckPayment(order.GrandTotal, 60, 48); err != nil {
		t.Fatalf("settling payment rejected: %v", err)
	}
	if got := OutstandingBalance(order.GrandTotal, 108); got != 0 {
		t.Errorf("outstanding after settlement = %v", got)
	}

	// Each accepted payment yields a paid invoice under the FAC sequence.
	invNumber := NextNumber("", InvoicePrefix)
	if invNumber != "FAC-001" {
		t.Errorf("first invoice number = %q", invNumber)
	}
	invoice := Draft{
		Kind:         KindInvoice,
		Number:       invNumber,
		CustomerName: order.CustomerName,
		CustomerTier: order.CustomerTier,
		Lines:        order.Lines,
		Status:       StatusPaid,
	}
	built, err := BuildForSubmission(invoice, now)
	if err != nil {
		t.Fatalf("invoice build: %v", err)
	}
	if built.Status != StatusPaid {
		t.Errorf("invoice status = %q", built.Status)
	}
	if built.GrandTotal != order.GrandTotal {
		t.Errorf("invoice total = %v, want %v", built.GrandTotal, order.GrandTotal)
	}
}
