package ticket

import "context"

// Repository persists tickets. Save assigns the next TIC-n code by
// scanning existing records and stamps the creation time. FindByCode
// returns (nil, nil) when no record matches; Update reports whether a
// record with the ticket's code still existed at write time.
type Repository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) (bool, error)
	Delete(ctx context.Context, code string) (bool, error)
	FindByCode(ctx context.Context, code string) (*Ticket, error)
	List(ctx context.Context) ([]*Ticket, error)
	ListByCustomer(ctx context.Context, customerCode string) ([]*Ticket, error)
}
