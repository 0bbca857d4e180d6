package billing

// PriceTier classifies a customer and selects which of a product's three
// prices applies to them.
type PriceTier string

const (
	TierWholesale PriceTier = "wholesale"
	TierRetail    PriceTier = "retail"
	TierConsumer  PriceTier = "consumer"
)

// CoerceTier maps any unrecognized tier value to the consumer tier.
// Selling at the highest price is the safe default when customer data is
// missing or corrupt.
func CoerceTier(t PriceTier) PriceTier {
	switch t {
	case TierWholesale, TierRetail, TierConsumer:
		return t
	default:
		return TierConsumer
	}
}

// PricedProduct is the catalog view the resolver needs: one price per tier.
type PricedProduct struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	WholesalePrice float64 `json:"wholesale_price"`
	RetailPrice    float64 `json:"retail_price"`
	ConsumerPrice  float64 `json:"consumer_price"`
}

// ResolvePrice returns the unit price of a product for a customer tier.
// A nil product resolves to 0; callers treat product id 0 as "unset".
func ResolvePrice(p *PricedProduct, tier PriceTier) float64 {
	if p == nil {
		return 0
	}
	switch CoerceTier(tier) {
	case TierWholesale:
		return p.WholesalePrice
	case TierRetail:
		return p.RetailPrice
	default:
		return p.ConsumerPrice
	}
}
