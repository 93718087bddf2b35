package ticket

import (
	"context"
	"fmt"

	"extinsia/internal/domain/catalog"
)

// ItemNotFoundError reports a cart entry whose code exists in none of the
// configured catalogs.
type ItemNotFoundError struct {
	Code string
}

func (e *ItemNotFoundError) Error() string {
	return fmt.Sprintf("item %q not found in either catalog", e.Code)
}

// Synchronizer resolves raw cart entries into priced line items by
// consulting an ordered list of catalog lookups. The first catalog that
// knows a code wins; with the standard wiring that means the generic
// product catalog is consulted before the extinguisher catalog, so a code
// that somehow existed in both resolves through products.
type Synchronizer struct {
	lookups []catalog.Lookup
}

func NewSynchronizer(lookups ...catalog.Lookup) *Synchronizer {
	return &Synchronizer{lookups: lookups}
}

// Sync resolves every entry, preserving input order. It is read-only and
// all-or-nothing: the first unresolvable code aborts the whole cart with
// an ItemNotFoundError so no partially priced ticket can exist.
func (s *Synchronizer) Sync(ctx context.Context, items []LineItem) ([]ResolvedItem, error) {
	resolved := make([]ResolvedItem, 0, len(items))

	for _, item := range items {
		match, err := s.find(ctx, item.Code)
		if err != nil {
			return nil, err
		}
		if match == nil {
			return nil, &ItemNotFoundError{Code: item.Code}
		}

		resolved = append(resolved, ResolvedItem{
			code:      item.Code,
			name:      match.Name,
			unitPrice: match.Price,
			quantity:  item.Quantity,
		})
	}

	return resolved, nil
}

func (s *Synchronizer) find(ctx context.Context, code string) (*catalog.Item, error) {
	for _, lookup := range s.lookups {
		match, err := lookup.FindItemByCode(ctx, code)
		if err != nil {
			return nil, fmt.Errorf("catalog lookup for %q failed: %w", code, err)
		}
		if match != nil {
			return match, nil
		}
	}
	return nil, nil
}
