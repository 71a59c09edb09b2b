package order

import (
	"context"
	"fmt"

	"storefront-be/internal/product"
)

// assembler turns requested line items into priced order items. Prices
// come from the catalog only; a missing product fails the whole request.
type assembler struct {
	products product.Repository
}

func newAssembler(products product.Repository) *assembler {
	return &assembler{products: products}
}

// Assemble resolves every requested item against the catalog, snapshots
// the current unit price onto a fresh OrderItem and accumulates the order
// total in item order. It performs no writes.
func (a *assembler) Assemble(ctx context.Context, reqs []ItemRequest) ([]OrderItem, float64, error) {
	items := make([]OrderItem, 0, len(reqs))
	var total float64

	for _, req := range reqs {
		if req.Quantity < 0 {
			return nil, 0, fmt.Errorf("product %d: %w", req.ProductID, ErrInvalidQuantity)
		}

		p, err := a.products.GetByID(ctx, req.ProductID)
		if err != nil {
			return nil, 0, fmt.Errorf("product %d: %w", req.ProductID, err)
		}

		items = append(items, OrderItem{
			ProductID: p.ID,
			Quantity:  req.Quantity,
			Price:     p.Price,
		})
		total += p.Price * float64(req.Quantity)
	}

	return items, total, nil
}
