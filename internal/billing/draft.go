package billing

import "time"

// DocumentKind distinguishes orders from invoices. The two are structurally
// identical; only the number prefix and the status set differ.
type DocumentKind string

const (
	KindOrder   DocumentKind = "order"
	KindInvoice DocumentKind = "invoice"
)

// Number prefixes per document kind.
const (
	OrderPrefix   = "CMD"
	InvoicePrefix = "FAC"
)

// Order and invoice statuses.
const (
	StatusDelivered = "delivered"
	StatusPickedUp  = "picked_up"
	StatusPaid      = "paid"
	StatusUnpaid    = "unpaid"
)

// Line is one product-quantity entry of a document. ProductName and
// UnitPrice are snapshots taken at selection time; a later catalog price
// change does not touch them.
type Line struct {
	ProductID   int     `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	LineTotal   float64 `json:"line_total"`
}

// Draft is an order or invoice being edited. All operations on it are
// value transformations: they return a new Draft and never mutate the
// receiver, so an editing session can discard an intermediate state.
type Draft struct {
	Kind         DocumentKind `json:"kind"`
	Number       string       `json:"number"`
	IssueDate    time.Time    `json:"issue_date"`
	CustomerName string       `json:"customer_name"`
	CustomerTier PriceTier    `json:"customer_tier"`
	Lines        []Line       `json:"lines"`
	GrandTotal   float64      `json:"grand_total"`
	Status       string       `json:"status"`
}

// Catalog is the product snapshot a draft session works against. It is
// loaded once at form-open time and assumed static for the session.
type Catalog []PricedProduct

// Find returns the product with the given id, or nil.
func (c Catalog) Find(id int) *PricedProduct {
	for i := range c {
		if c[i].ID == id {
			return &c[i]
		}
	}
	return nil
}

func (d Draft) cloneLines() []Line {
	lines := make([]Line, len(d.Lines))
	copy(lines, d.Lines)
	return lines
}

// AddLine appends an empty placeholder line: no product, quantity 1.
func AddLine(d Draft) Draft {
	lines := append(d.cloneLines(), Line{Quantity: 1})
	d.Lines = lines
	return RecomputeTotal(d)
}

// RemoveLine deletes the line at index. Out-of-range indexes are a no-op.
func RemoveLine(d Draft, index int) Draft {
	if index < 0 || index >= len(d.Lines) {
		return d
	}
	lines := d.cloneLines()
	d.Lines = append(lines[:index], lines[index+1:]...)
	return RecomputeTotal(d)
}

// SetLineProduct points the line at a catalog product and snapshots its
// name and the unit price for the draft's customer tier. If the product id
// is not in the catalog the line is left entirely unchanged.
func SetLineProduct(d Draft, index int, productID int, catalog Catalog) Draft {
	if index < 0 || index >= len(d.Lines) {
		return d
	}
	product := catalog.Find(productID)
	if product == nil {
		return d
	}
	lines := d.cloneLines()
	line := &lines[index]
	line.ProductID = product.ID
	line.ProductName = product.Name
	line.UnitPrice = ResolvePrice(product, d.CustomerTier)
	line.LineTotal = float64(line.Quantity) * line.UnitPrice
	d.Lines = lines
	return RecomputeTotal(d)
}

// SetLineQuantity sets the quantity of the line at index, clamping
// non-positive input to 1, and recomputes the line total.
func SetLineQuantity(d Draft, index int, quantity int) Draft {
	if index < 0 || index >= len(d.Lines) {
		return d
	}
	if quantity < 1 {
		quantity = 1
	}
	lines := d.cloneLines()
	line := &lines[index]
	line.Quantity = quantity
	line.LineTotal = float64(line.Quantity) * line.UnitPrice
	d.Lines = lines
	return RecomputeTotal(d)
}

// SetCustomer switches the draft to a new customer and re-resolves every
// line's unit price from that customer's tier. Price follows the customer,
// not the product: a wholesale buyer pays wholesale on every line. Lines
// whose product is no longer in the catalog keep their prior snapshot.
func SetCustomer(d Draft, name string, tier PriceTier, catalog Catalog) Draft {
	d.CustomerName = name
	d.CustomerTier = CoerceTier(tier)
	lines := d.cloneLines()
	for i := range lines {
		product := catalog.Find(lines[i].ProductID)
		if product == nil {
			continue
		}
		lines[i].UnitPrice = ResolvePrice(product, d.CustomerTier)
		lines[i].LineTotal = float64(lines[i].Quantity) * lines[i].UnitPrice
	}
	d.Lines = lines
	return RecomputeTotal(d)
}

// RecomputeTotal derives the grand total as the sum of line totals, in
// insertion order. Idempotent.
func RecomputeTotal(d Draft) Draft {
	var total float64
	for _, line := range d.Lines {
		total += line.LineTotal
	}
	d.GrandTotal = total
	return d
}
