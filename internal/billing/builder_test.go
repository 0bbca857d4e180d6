package billing

import "testing"

// Payment amounts are bounded by the outstanding balance.
func TestCheckPayment(t *testing.T) {
	// grand total 100.00, 60.00 already paid
	if err := CheckPayment(100.00, 60.00, 45.00); err != ErrPaymentExceedsBalance {
		t.Errorf("45.00 against 40.00 balance: got %v, want ErrPaymentExceedsBalance", err)
	}
	if err := CheckPayment(100.00, 60.00, 40.00); err != nil {
		t.Errorf("40.00 against 40.00 balance: got %v, want nil", err)
	}
	if got := OutstandingBalance(100.00, 100.00); got != 0 {
		t.Errorf("outstanding after full payment = %v, want 0", got)
	}

	if err := CheckPayment(100.00, 0, 0); err != ErrPaymentNotPositive {
		t.Errorf("zero amount: got %v, want ErrPaymentNotPositive", err)
	}
	if err := CheckPayment(100.00, 0, -10); err != ErrPaymentNotPositive {
		t.Errorf("negative amount: got %v, want ErrPaymentNotPositive", err)
	}
}

func TestCoerceStatus(t *testing.T) {
	cases := []struct {
		kind   DocumentKind
		status string
		want   string
	}{
		{KindOrder, StatusDelivered, StatusDelivered},
		{KindOrder, StatusPickedUp, StatusPickedUp},
		{KindOrder, "Unknown", StatusDelivered},
		{KindOrder, StatusPaid, StatusDelivered}, // invoice status is not an order status
		{KindInvoice, StatusPaid, StatusPaid},
		{KindInvoice, StatusUnpaid, StatusUnpaid},
		{KindInvoice, "", StatusUnpaid},
		{KindInvoice, StatusDelivered, StatusUnpaid},
	}
	for _, c := range cases {
		if got := CoerceStatus(c.kind, c.status); got != c.want {
			t.Errorf("CoerceStatus(%s, %q) = %q, want %q", c.kind, c.status, got, c.want)
		}
	}
}

func TestCoerceTier(t *testing.T) {
	if CoerceTier(TierWholesale) != TierWholesale {
		t.Error("wholesale should survive coercion")
	}
	if CoerceTier("gros") != TierConsumer {
		t.Error("unknown tier should coerce to consumer")
	}
}
