package customer

import (
	"context"
	goerrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"extinsia/internal/domain/customer"
	"extinsia/internal/shared/errors"
	"extinsia/internal/shared/logger"
)

type mockRepository struct {
	SaveFunc               func(ctx context.Context, c *customer.Customer) error
	UpdateFunc             func(ctx context.Context, c *customer.Customer) error
	DeleteFunc             func(ctx context.Context, code string) (bool, error)
	FindByCodeFunc         func(ctx context.Context, code string) (*customer.Customer, error)
	ListFunc               func(ctx context.Context) ([]*customer.Customer, error)
	ListByRenewalMonthFunc func(ctx context.Context, month string) ([]*customer.Customer, error)
}

func (m *mockRepository) Save(ctx context.Context, c *customer.Customer) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockRepository) Update(ctx context.Context, c *customer.Customer) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockRepository) Delete(ctx context.Context, code string) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, code)
	}
	return true, nil
}

func (m *mockRepository) FindByCode(ctx context.Context, code string) (*customer.Customer, error) {
	if m.FindByCodeFunc != nil {
		return m.FindByCodeFunc(ctx, code)
	}
	return nil, nil
}

func (m *mockRepository) List(ctx context.Context) ([]*customer.Customer, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockRepository) ListByRenewalMonth(ctx context.Context, month string) ([]*customer.Customer, error) {
	if m.ListByRenewalMonthFunc != nil {
		return m.ListByRenewalMonthFunc(ctx, month)
	}
	return nil, nil
}

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (l noopLogger) With(args ...any) logger.Interface             { return l }
func (l noopLogger) Named(name string) logger.Interface            { return l }

func storedCustomer(t *testing.T) *customer.Customer {
	t.Helper()
	c, err := customer.ReconstructCustomer(
		1, "CLI-1", "Ferretería El Clavo", "Ana Torres",
		"Av. Central 45", "5512345678", "Marzo")
	require.NoError(t, err)
	return c
}

func TestServiceCreate(t *testing.T) {
	t.Run("assigns code via repository", func(t *testing.T) {
		mockRepo := &mockRepository{
			SaveFunc: func(ctx context.Context, c *customer.Customer) error {
				return c.SetCode("CLI-2")
			},
		}
		svc := NewService(mockRepo, noopLogger{})

		result, err := svc.Create(context.Background(), CreateCustomerRequest{
			CompanyName: "acme norte", ManagerName: "luis pérez",
			Address: "Calle 2", Phone: "5587654321", RenewalMonth: "octubre",
		})

		require.NoError(t, err)
		assert.Equal(t, "CLI-2", result.Code)
		assert.Equal(t, "Acme Norte", result.CompanyName)
		assert.Equal(t, "Octubre", result.RenewalMonth)
	})

	t.Run("duplicate company name conflicts", func(t *testing.T) {
		mockRepo := &mockRepository{
			ListFunc: func(ctx context.Context) ([]*customer.Customer, error) {
				return []*customer.Customer{storedCustomer(t)}, nil
			},
		}
		svc := NewService(mockRepo, noopLogger{})

		_, err := svc.Create(context.Background(), CreateCustomerRequest{
			CompanyName: "FERRETERÍA EL CLAVO", ManagerName: "Otro",
			Address: "Calle 9", Phone: "5500000000", RenewalMonth: "Enero",
		})

		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("invalid input", func(t *testing.T) {
		svc := NewService(&mockRepository{}, noopLogger{})

		_, err := svc.Create(context.Background(), CreateCustomerRequest{
			CompanyName: "Acme", ManagerName: "Ana",
			Address: "Calle 1", Phone: "123", RenewalMonth: "Marzo",
		})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestServiceUpdate(t *testing.T) {
	t.Run("empty fields keep stored values", func(t *testing.T) {
		var updated *customer.Customer
		mockRepo := &mockRepository{
			FindByCodeFunc: func(ctx context.Context, code string) (*customer.Customer, error) {
				return storedCustomer(t), nil
			},
			UpdateFunc: func(ctx context.Context, c *customer.Customer) error {
				updated = c
				return nil
			},
		}
		svc := NewService(mockRepo, noopLogger{})

		result, err := svc.Update(context.Background(), "CLI-1", UpdateCustomerRequest{
			Phone: "5599999999",
		})

		require.NoError(t, err)
		assert.Equal(t, "Ferretería El Clavo", result.CompanyName)
		assert.Equal(t, "5599999999", result.Phone)
		assert.Equal(t, "Marzo", result.RenewalMonth)
		require.NotNil(t, updated)
		assert.Equal(t, "5599999999", updated.Phone())
	})

	t.Run("not found", func(t *testing.T) {
		svc := NewService(&mockRepository{}, noopLogger{})

		_, err := svc.Update(context.Background(), "CLI-99", UpdateCustomerRequest{})

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("renaming onto another customer conflicts", func(t *testing.T) {
		other, err := customer.ReconstructCustomer(
			2, "CLI-2", "Acme Norte", "Luis", "Calle 2", "5587654321", "Octubre")
		require.NoError(t, err)

		mockRepo := &mockRepository{
			FindByCodeFunc: func(ctx context.Context, code string) (*customer.Customer, error) {
				return storedCustomer(t), nil
			},
			ListFunc: func(ctx context.Context) ([]*customer.Customer, error) {
				return []*customer.Customer{storedCustomer(t), other}, nil
			},
		}
		svc := NewService(mockRepo, noopLogger{})

		_, err = svc.Update(context.Background(), "CLI-1", UpdateCustomerRequest{
			CompanyName: "acme norte",
		})

		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})
}

func TestServiceSearch(t *testing.T) {
	mockRepo := &mockRepository{
		ListFunc: func(ctx context.Context) ([]*customer.Customer, error) {
			other, err := customer.ReconstructCustomer(
				2, "CLI-2", "Acme Norte", "Luis Pérez", "Calle 2", "5587654321", "Octubre")
			require.NoError(t, err)
			return []*customer.Customer{storedCustomer(t), other}, nil
		},
	}
	svc := NewService(mockRepo, noopLogger{})

	result, err := svc.Search(context.Background(), "ferretería")
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "CLI-1", result[0].Code)

	// Manager names are searched too.
	result, err = svc.Search(context.Background(), "pérez")
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "CLI-2", result[0].Code)
}

func TestServiceListByRenewalMonth(t *testing.T) {
	t.Run("normalizes the month", func(t *testing.T) {
		mockRepo := &mockRepository{
			ListByRenewalMonthFunc: func(ctx context.Context, month string) ([]*customer.Customer, error) {
				assert.Equal(t, "Marzo", month)
				return []*customer.Customer{storedCustomer(t)}, nil
			},
		}
		svc := NewService(mockRepo, noopLogger{})

		result, err := svc.ListByRenewalMonth(context.Background(), "marzo")
		require.NoError(t, err)
		require.Len(t, result, 1)
	})

	t.Run("rejects unknown months", func(t *testing.T) {
		svc := NewService(&mockRepository{}, noopLogger{})

		_, err := svc.ListByRenewalMonth(context.Background(), "March")
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestServiceDelete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		mockRepo := &mockRepository{
			DeleteFunc: func(ctx context.Context, code string) (bool, error) {
				return false, nil
			},
		}
		svc := NewService(mockRepo, noopLogger{})

		err := svc.Delete(context.Background(), "CLI-99")
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("repository failure", func(t *testing.T) {
		mockRepo := &mockRepository{
			DeleteFunc: func(ctx context.Context, code string) (bool, error) {
				return false, goerrors.New("disk full")
			},
		}
		svc := NewService(mockRepo, noopLogger{})

		err := svc.Delete(context.Background(), "CLI-1")
		require.Error(t, err)
		assert.True(t, errors.IsRepositoryError(err))
	})
}
