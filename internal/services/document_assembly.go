package services

import (
	"fmt"

	"vente-backend/internal/billing"
	"vente-backend/internal/models"
)

// assembleDraft replays the client's line inputs through the document
// engine: customer first (so the tier is set before any price resolves),
// then one add/select/quantity sequence per line. Anything the client
// may have computed locally is rederived here.
func assembleDraft(kind billing.DocumentKind, customer *models.Customer, status string, inputs []models.DocumentLineInput, catalog billing.Catalog) (billing.Draft, error) {
	draft := billing.Draft{Kind: kind, Status: status}
	draft = billing.SetCustomer(draft, customer.FullName(), customer.PriceTier, catalog)

	for i, input := range inputs {
		if catalog.Find(input.ProductID) == nil {
			return billing.Draft{}, fmt.Errorf("unknown product id %d", input.ProductID)
		}
		draft = billing.AddLine(draft)
		draft = billing.SetLineProduct(draft, i, input.ProductID, catalog)
		draft = billing.SetLineQuantity(draft, i, input.Quantity)
	}

	return draft, nil
}
