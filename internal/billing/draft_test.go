package billing

import (
	"testing"
	"time"
)

func testCatalog() Catalog {
	return Catalog{
		{ID: 1, Name: "Vin Rouge Bordeaux", WholesalePrice: 8.50, RetailPrice: 12.00, ConsumerPrice: 15.99},
		{ID: 2, Name: "Champagne Brut", WholesalePrice: 25.00, RetailPrice: 35.00, ConsumerPrice: 45.99},
		{ID: 3, Name: "Vin Doux Muscat", WholesalePrice: 6.00, RetailPrice: 9.50, ConsumerPrice: 12.99},
	}
}

func newOrderDraft(name string, tier PriceTier) Draft {
	return Draft{Kind: KindOrder, CustomerName: name, CustomerTier: tier, Status: StatusDelivered}
}

func TestResolvePricePerTier(t *testing.T) {
	p := &PricedProduct{ID: 1, WholesalePrice: 8.50, RetailPrice: 12.00, ConsumerPrice: 15.99}

	cases := []struct {
		tier PriceTier
		want float64
	}{
		{TierWholesale, 8.50},
		{TierRetail, 12.00},
		{TierConsumer, 15.99},
		{PriceTier("unknown"), 15.99}, // fail open to consumer price
		{PriceTier(""), 15.99},
	}
	for _, c := range cases {
		if got := ResolvePrice(p, c.tier); got != c.want {
			t.Errorf("ResolvePrice(%q) = %v, want %v", c.tier, got, c.want)
		}
	}

	if got := ResolvePrice(nil, TierWholesale); got != 0 {
		t.Errorf("ResolvePrice(nil) = %v, want 0", got)
	}
}

func TestAddLineDefaults(t *testing.T) {
	d := AddLine(newOrderDraft("Jean Dupont", TierWholesale))

	if len(d.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(d.Lines))
	}
	line := d.Lines[0]
	if line.ProductID != 0 || line.Quantity != 1 || line.UnitPrice != 0 || line.LineTotal != 0 {
		t.Errorf("unexpected placeholder line: %+v", line)
	}
	if d.GrandTotal != 0 {
		t.Errorf("grand total = %v, want 0", d.GrandTotal)
	}
}

// lineTotal == quantity * unitPrice after a quantity change.
func TestSetLineQuantityComputesLineTotal(t *testing.T) {
	d := AddLine(newOrderDraft("Jean Dupont", TierWholesale))
	d = SetLineProduct(d, 0, 1, testCatalog())

	d = SetLineQuantity(d, 0, 3)
	if got := d.Lines[0].LineTotal; got != 3*8.50 {
		t.Errorf("line total = %v, want %v", got, 3*8.50)
	}
	if d.GrandTotal != d.Lines[0].LineTotal {
		t.Errorf("grand total = %v, want %v", d.GrandTotal, d.Lines[0].LineTotal)
	}
}

func TestSetLineQuantityClampsToOne(t *testing.T) {
	d := AddLine(newOrderDraft("Jean Dupont", TierRetail))
	d = SetLineProduct(d, 0, 3, testCatalog())

	for _, q := range []int{0, -5} {
		clamped := SetLineQuantity(d, 0, q)
		if clamped.Lines[0].Quantity != 1 {
			t.Errorf("quantity %d clamped to %d, want 1", q, clamped.Lines[0].Quantity)
		}
		if clamped.Lines[0].LineTotal != 9.50 {
			t.Errorf("line total = %v, want 9.50", clamped.Lines[0].LineTotal)
		}
	}
}

func TestSetLineProductUnknownIDLeavesLineUntouched(t *testing.T) {
	d := AddLine(newOrderDraft("Jean Dupont", TierWholesale))
	d = SetLineProduct(d, 0, 1, testCatalog())
	before := d.Lines[0]

	d = SetLineProduct(d, 0, 999, testCatalog())
	if d.Lines[0] != before {
		t.Errorf("line changed on unresolved product: %+v -> %+v", before, d.Lines[0])
	}
}

func TestRemoveLineOutOfRangeIsNoOp(t *testing.T) {
	d := AddLine(newOrderDraft("Jean Dupont", TierConsumer))
	d = SetLineProduct(d, 0, 2, testCatalog())

	for _, idx := range []int{-1, 1, 42} {
		if got := RemoveLine(d, idx); len(got.Lines) != 1 {
			t.Errorf("RemoveLine(%d) removed a line", idx)
		}
	}

	d = RemoveLine(d, 0)
	if len(d.Lines) != 0 {
		t.Fatalf("expected 0 lines, got %d", len(d.Lines))
	}
	if d.GrandTotal != 0 {
		t.Errorf("grand total = %v after removing only line, want 0", d.GrandTotal)
	}
}

// Switching the customer re-resolves every line's price from the new
// tier without touching quantity or product.
func TestSetCustomerReResolvesPrices(t *testing.T) {
	catalog := testCatalog()
	d := AddLine(newOrderDraft("Pierre Durand", TierConsumer))
	d = SetLineProduct(d, 0, 1, catalog)
	d = SetLineQuantity(d, 0, 2)

	if d.Lines[0].UnitPrice != 15.99 {
		t.Fatalf("consumer price = %v, want 15.99", d.Lines[0].UnitPrice)
	}

	d = SetCustomer(d, "Jean Dupont", TierWholesale, catalog)
	line := d.Lines[0]
	if line.UnitPrice != 8.50 {
		t.Errorf("unit price = %v, want wholesale 8.50", line.UnitPrice)
	}
	if line.LineTotal != 2*8.50 {
		t.Errorf("line total = %v, want %v", line.LineTotal, 2*8.50)
	}
	if line.Quantity != 2 || line.ProductID != 1 {
		t.Errorf("quantity/product changed: %+v", line)
	}
	if d.CustomerName != "Jean Dupont" {
		t.Errorf("customer name = %q", d.CustomerName)
	}
}

func TestSetCustomerUnknownTierFallsBackToConsumer(t *testing.T) {
	catalog := testCatalog()
	d := AddLine(newOrderDraft("Jean Dupont", TierWholesale))
	d = SetLineProduct(d, 0, 1, catalog)

	d = SetCustomer(d, "Inconnu Client", PriceTier("Mystery"), catalog)
	if d.CustomerTier != TierConsumer {
		t.Errorf("tier = %q, want consumer", d.CustomerTier)
	}
	if d.Lines[0].UnitPrice != 15.99 {
		t.Errorf("unit price = %v, want consumer 15.99", d.Lines[0].UnitPrice)
	}
}

// The totalizer is idempotent.
func TestRecomputeTotalIdempotent(t *testing.T) {
	catalog := testCatalog()
	d := AddLine(newOrderDraft("Marie Martin", TierRetail))
	d = SetLineProduct(d, 0, 2, catalog)
	d = SetLineQuantity(d, 0, 4)
	d = AddLine(d)
	d = SetLineProduct(d, 1, 3, catalog)

	once := RecomputeTotal(d)
	twice := RecomputeTotal(once)
	if once.GrandTotal != twice.GrandTotal {
		t.Errorf("totalizer not idempotent: %v != %v", once.GrandTotal, twice.GrandTotal)
	}
	want := 4*35.00 + 9.50
	if once.GrandTotal != want {
		t.Errorf("grand total = %v, want %v", once.GrandTotal, want)
	}
}

func TestDraftOperationsDoNotMutateInput(t *testing.T) {
	catalog := testCatalog()
	d := AddLine(newOrderDraft("Jean Dupont", TierWholesale))
	d = SetLineProduct(d, 0, 1, catalog)
	snapshot := d.Lines[0]

	_ = SetLineQuantity(d, 0, 10)
	_ = SetCustomer(d, "Marie Martin", TierRetail, catalog)
	_ = RemoveLine(d, 0)

	if d.Lines[0] != snapshot {
		t.Errorf("input draft mutated: %+v", d.Lines[0])
	}
}

// Submission validation and status coercion.
func TestBuildForSubmission(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	_, err := BuildForSubmission(newOrderDraft("Jean Dupont", TierWholesale), now)
	if err != ErrEmptyLines {
		t.Fatalf("empty draft: got %v, want ErrEmptyLines", err)
	}

	d := AddLine(newOrderDraft("Jean Dupont", TierWholesale))
	d = SetLineProduct(d, 0, 1, testCatalog())
	d.Status = "Unknown"
	d.IssueDate = time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)
	d.GrandTotal = 12345 // stale value the builder must not trust

	built, err := BuildForSubmission(d, now)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if built.Status != StatusDelivered {
		t.Errorf("status = %q, want delivered default", built.Status)
	}
	if !built.IssueDate.Equal(now) {
		t.Errorf("issue date = %v, want %v", built.IssueDate, now)
	}
	if built.GrandTotal != built.Lines[0].LineTotal {
		t.Errorf("grand total = %v not recomputed", built.GrandTotal)
	}

	inv := d
	inv.Kind = KindInvoice
	inv.Status = "whatever"
	builtInv, err := BuildForSubmission(inv, now)
	if err != nil {
		t.Fatalf("build invoice: %v", err)
	}
	if builtInv.Status != StatusUnpaid {
		t.Errorf("invoice status = %q, want unpaid default", builtInv.Status)
	}
}

// E2E scenario: wholesale customer, one line, quantity 3.
func TestOrderEntryScenario(t *testing.T) {
	catalog := testCatalog()
	d := newOrderDraft("", "")
	d = SetCustomer(d, "Jean Dupont", TierWholesale, catalog)
	d = AddLine(d)
	d = SetLineProduct(d, 0, 1, catalog)
	d = SetLineQuantity(d, 0, 3)

	if d.Lines[0].LineTotal != 25.50 {
		t.Errorf("line total = %v, want 25.50", d.Lines[0].LineTotal)
	}
	if d.GrandTotal != 25.50 {
		t.Errorf("grand total = %v, want 25.50", d.GrandTotal)
	}

	d.Number = NextNumber("CMD-007", OrderPrefix)
	built, err := BuildForSubmission(d, time.Now())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if built.Number != "CMD-008" {
		t.Errorf("number = %q, want CMD-008", built.Number)
	}
	if built.Status != StatusDelivered {
		t.Errorf("status = %q, want delivered", built.Status)
	}
}
