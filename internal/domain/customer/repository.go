package customer

import "context"

// Repository persists customers. Save assigns the next CLI-n code.
// FindByCode returns (nil, nil) when no record matches.
type Repository interface {
	Save(ctx context.Context, customer *Customer) error
	Update(ctx context.Context, customer *Customer) error
	Delete(ctx context.Context, code string) (bool, error)
	FindByCode(ctx context.Context, code string) (*Customer, error)
	List(ctx context.Context) ([]*Customer, error)
	ListByRenewalMonth(ctx context.Context, month string) ([]*Customer, error)
}
