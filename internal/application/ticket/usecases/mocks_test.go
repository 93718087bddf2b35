package usecases

import (
	"context"

	"extinsia/internal/domain/catalog"
	"extinsia/internal/domain/customer"
	"extinsia/internal/domain/ticket"
	"extinsia/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc           func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc         func(ctx context.Context, t *ticket.Ticket) (bool, error)
	DeleteFunc         func(ctx context.Context, code string) (bool, error)
	FindByCodeFunc     func(ctx context.Context, code string) (*ticket.Ticket, error)
	ListFunc           func(ctx context.Context) ([]*ticket.Ticket, error)
	ListByCustomerFunc func(ctx context.Context, customerCode string) ([]*ticket.Ticket, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) (bool, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return true, nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, code string) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, code)
	}
	return true, nil
}

func (m *mockTicketRepository) FindByCode(ctx context.Context, code string) (*ticket.Ticket, error) {
	if m.FindByCodeFunc != nil {
		return m.FindByCodeFunc(ctx, code)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context) ([]*ticket.Ticket, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListByCustomer(ctx context.Context, customerCode string) ([]*ticket.Ticket, error) {
	if m.ListByCustomerFunc != nil {
		return m.ListByCustomerFunc(ctx, customerCode)
	}
	return nil, nil
}

type mockCustomerRepository struct {
	SaveFunc               func(ctx context.Context, c *customer.Customer) error
	UpdateFunc             func(ctx context.Context, c *customer.Customer) error
	DeleteFunc             func(ctx context.Context, code string) (bool, error)
	FindByCodeFunc         func(ctx context.Context, code string) (*customer.Customer, error)
	ListFunc               func(ctx context.Context) ([]*customer.Customer, error)
	ListByRenewalMonthFunc func(ctx context.Context, month string) ([]*customer.Customer, error)
}

func (m *mockCustomerRepository) Save(ctx context.Context, c *customer.Customer) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCustomerRepository) Delete(ctx context.Context, code string) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, code)
	}
	return true, nil
}

func (m *mockCustomerRepository) FindByCode(ctx context.Context, code string) (*customer.Customer, error) {
	if m.FindByCodeFunc != nil {
		return m.FindByCodeFunc(ctx, code)
	}
	return nil, nil
}

func (m *mockCustomerRepository) List(ctx context.Context) ([]*customer.Customer, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockCustomerRepository) ListByRenewalMonth(ctx context.Context, month string) ([]*customer.Customer, error) {
	if m.ListByRenewalMonthFunc != nil {
		return m.ListByRenewalMonthFunc(ctx, month)
	}
	return nil, nil
}

// mockLookup backs the synchronizer with an in-memory catalog table.
type mockLookup struct {
	FindItemByCodeFunc func(ctx context.Context, code string) (*catalog.Item, error)
}

func (m *mockLookup) FindItemByCode(ctx context.Context, code string) (*catalog.Item, error) {
	if m.FindItemByCodeFunc != nil {
		return m.FindItemByCodeFunc(ctx, code)
	}
	return nil, nil
}

func lookupFromTable(items map[string]catalog.Item) *mockLookup {
	return &mockLookup{
		FindItemByCodeFunc: func(ctx context.Context, code string) (*catalog.Item, error) {
			if item, ok := items[code]; ok {
				return &item, nil
			}
			return nil, nil
		},
	}
}

type mockLogger struct {
	DebugFunc  func(msg string, args ...any)
	InfoFunc   func(msg string, args ...any)
	WarnFunc   func(msg string, args ...any)
	ErrorFunc  func(msg string, args ...any)
	DebugwFunc func(msg string, keysAndValues ...interface{})
	InfowFunc  func(msg string, keysAndValues ...interface{})
	WarnwFunc  func(msg string, keysAndValues ...interface{})
	ErrorwFunc func(msg string, keysAndValues ...interface{})
}

func (m *mockLogger) Debug(msg string, args ...any) {
	if m.DebugFunc != nil {
		m.DebugFunc(msg, args...)
	}
}

func (m *mockLogger) Info(msg string, args ...any) {
	if m.InfoFunc != nil {
		m.InfoFunc(msg, args...)
	}
}

func (m *mockLogger) Warn(msg string, args ...any) {
	if m.WarnFunc != nil {
		m.WarnFunc(msg, args...)
	}
}

func (m *mockLogger) Error(msg string, args ...any) {
	if m.ErrorFunc != nil {
		m.ErrorFunc(msg, args...)
	}
}

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {
	if m.DebugwFunc != nil {
		m.DebugwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {
	if m.InfowFunc != nil {
		m.InfowFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {
	if m.WarnwFunc != nil {
		m.WarnwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) With(args ...any) logger.Interface { return m }

func (m *mockLogger) Named(name string) logger.Interface { return m }
