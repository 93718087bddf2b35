package catalog

import "context"

// Item is the read-only projection a Lookup resolves a code to. It is what
// the ticket synchronizer snapshots into a sale record.
type Item struct {
	Code  string
	Name  string
	Price int64
}

// Lookup resolves an item code against one catalog. Implementations return
// (nil, nil) when the code does not exist; an error means the catalog could
// not be consulted at all.
//
// The ticket synchronizer holds an ordered list of Lookups and takes the
// first hit, which keeps the resolution order open to future catalog types.
type Lookup interface {
	FindItemByCode(ctx context.Context, code string) (*Item, error)
}
