package catalog

import "context"

// ProductRepository persists the generic product catalog. Save assigns the
// next PRO-n code. FindByCode returns (nil, nil) when no record matches.
type ProductRepository interface {
	Save(ctx context.Context, product *Product) error
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, code string) (bool, error)
	FindByCode(ctx context.Context, code string) (*Product, error)
	List(ctx context.Context) ([]*Product, error)
}

// ExtinguisherRepository persists the extinguisher catalog with its own
// EXT-n code sequence.
type ExtinguisherRepository interface {
	Save(ctx context.Context, extinguisher *Extinguisher) error
	Update(ctx context.Context, extinguisher *Extinguisher) error
	Delete(ctx context.Context, code string) (bool, error)
	FindByCode(ctx context.Context, code string) (*Extinguisher, error)
	List(ctx context.Context) ([]*Extinguisher, error)
}
