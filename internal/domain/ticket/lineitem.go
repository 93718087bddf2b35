package ticket

import "fmt"

// LineItem is a raw cart entry as supplied by the caller: an item code and
// a quantity, not yet checked against any catalog.
type LineItem struct {
	Code     string
	Quantity int
}

// Validate checks the shape of a raw cart entry. It never touches the
// catalogs; existence is the synchronizer's concern.
func (i LineItem) Validate() error {
	if len(i.Code) == 0 {
		return fmt.Errorf("item code is required")
	}
	if i.Quantity <= 0 {
		return fmt.Errorf("item quantity must be an integer greater than 0")
	}
	return nil
}

// ValidateCart checks every entry of a cart and rejects empty carts.
func ValidateCart(items []LineItem) error {
	if len(items) == 0 {
		return fmt.Errorf("a ticket must include at least one item")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ResolvedItem is a priced, named line item. It is only ever produced by
// the Synchronizer (or reconstructed from storage); the name and unit
// price are snapshots taken at sale time and stay frozen even if the
// catalogs change afterwards.
type ResolvedItem struct {
	code      string
	name      string
	unitPrice int64
	quantity  int
}

func ReconstructResolvedItem(code, name string, unitPrice int64, quantity int) (ResolvedItem, error) {
	if len(code) == 0 {
		return ResolvedItem{}, fmt.Errorf("resolved item code is required")
	}
	if quantity <= 0 {
		return ResolvedItem{}, fmt.Errorf("resolved item quantity must be greater than 0")
	}

	return ResolvedItem{
		code:      code,
		name:      name,
		unitPrice: unitPrice,
		quantity:  quantity,
	}, nil
}

func (r ResolvedItem) Code() string     { return r.code }
func (r ResolvedItem) Name() string     { return r.name }
func (r ResolvedItem) UnitPrice() int64 { return r.unitPrice }
func (r ResolvedItem) Quantity() int    { return r.quantity }

// Subtotal is the line contribution to the ticket total.
func (r ResolvedItem) Subtotal() int64 {
	return r.unitPrice * int64(r.quantity)
}

// Total sums unit price times quantity over the given items without any
// intermediate rounding. An empty list yields 0.
func Total(items []ResolvedItem) int64 {
	var total int64
	for _, item := range items {
		total += item.Subtotal()
	}
	return total
}
