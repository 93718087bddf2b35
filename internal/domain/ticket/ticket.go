// Package ticket implements the sale/service records at the heart of the
// system. A ticket links a customer to a list of priced line items and a
// total. Everything a ticket consumes from other entities is copied in at
// creation time: the record is a point-in-time snapshot, not a live join.
package ticket

import (
	"fmt"
	"time"

	"extinsia/internal/shared/textutil"
)

type Ticket struct {
	id           uint
	code         string
	service      string
	customerCode string
	customerName string
	items        []ResolvedItem
	total        int64
	createdAt    time.Time
}

// NewTicket assembles a ticket from already-resolved items. The service
// label is trimmed and title-cased; the code and creation timestamp are
// assigned by the repository at persistence time.
func NewTicket(service, customerCode, customerName string, items []ResolvedItem) (*Ticket, error) {
	service, err := normalizeService(service)
	if err != nil {
		return nil, err
	}
	if len(customerCode) == 0 {
		return nil, fmt.Errorf("customer code is required")
	}
	if len(customerName) == 0 {
		return nil, fmt.Errorf("customer name is required")
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("a ticket must include at least one item")
	}

	return &Ticket{
		service:      service,
		customerCode: customerCode,
		customerName: customerName,
		items:        copyItems(items),
		total:        Total(items),
	}, nil
}

func ReconstructTicket(
	id uint,
	code string,
	service string,
	customerCode string,
	customerName string,
	items []ResolvedItem,
	total int64,
	createdAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("ticket code is required")
	}

	return &Ticket{
		id:           id,
		code:         code,
		service:      service,
		customerCode: customerCode,
		customerName: customerName,
		items:        copyItems(items),
		total:        total,
		createdAt:    createdAt,
	}, nil
}

func (t *Ticket) ID() uint             { return t.id }
func (t *Ticket) Code() string         { return t.code }
func (t *Ticket) Service() string      { return t.service }
func (t *Ticket) CustomerCode() string { return t.customerCode }
func (t *Ticket) CustomerName() string { return t.customerName }
func (t *Ticket) Total() int64         { return t.total }
func (t *Ticket) CreatedAt() time.Time { return t.createdAt }

func (t *Ticket) Items() []ResolvedItem {
	return copyItems(t.items)
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) SetCode(code string) error {
	if len(t.code) > 0 {
		return fmt.Errorf("ticket code is already set")
	}
	if len(code) == 0 {
		return fmt.Errorf("ticket code cannot be empty")
	}
	t.code = code
	return nil
}

// SetCreatedAt stamps the creation time once, at persistence.
func (t *Ticket) SetCreatedAt(at time.Time) error {
	if !t.createdAt.IsZero() {
		return fmt.Errorf("ticket creation time is already set")
	}
	t.createdAt = at
	return nil
}

// ChangeService replaces the service label. Customer identity, code and
// creation time have no setters: they are immutable after creation.
func (t *Ticket) ChangeService(service string) error {
	service, err := normalizeService(service)
	if err != nil {
		return err
	}
	t.service = service
	return nil
}

// ReplaceItems swaps the whole item list and recomputes the total.
func (t *Ticket) ReplaceItems(items []ResolvedItem) error {
	if len(items) == 0 {
		return fmt.Errorf("a ticket must include at least one item")
	}
	t.items = copyItems(items)
	t.total = Total(items)
	return nil
}

func normalizeService(service string) (string, error) {
	service = textutil.Title(service)
	if len(service) == 0 {
		return "", fmt.Errorf("service is required")
	}
	return service, nil
}

func copyItems(items []ResolvedItem) []ResolvedItem {
	copied := make([]ResolvedItem, len(items))
	copy(copied, items)
	return copied
}
