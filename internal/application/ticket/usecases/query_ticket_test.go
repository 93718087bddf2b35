package usecases

import (
	"context"
	goerrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"extinsia/internal/domain/customer"
	"extinsia/internal/domain/ticket"
	"extinsia/internal/shared/errors"
)

func TestGetTicketUseCase_Execute(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mockRepo := &mockTicketRepository{
			FindByCodeFunc: func(ctx context.Context, code string) (*ticket.Ticket, error) {
				return storedTicket(t), nil
			},
		}
		useCase := NewGetTicketUseCase(mockRepo, &mockLogger{})

		result, err := useCase.Execute(context.Background(), GetTicketQuery{TicketCode: "TIC-7"})

		require.NoError(t, err)
		assert.Equal(t, "TIC-7", result.Code)
		assert.Equal(t, int64(1900), result.Total)
	})

	t.Run("not found", func(t *testing.T) {
		useCase := NewGetTicketUseCase(&mockTicketRepository{}, &mockLogger{})

		result, err := useCase.Execute(context.Background(), GetTicketQuery{TicketCode: "TIC-404"})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("repository failure", func(t *testing.T) {
		mockRepo := &mockTicketRepository{
			FindByCodeFunc: func(ctx context.Context, code string) (*ticket.Ticket, error) {
				return nil, goerrors.New("connection refused")
			},
		}
		useCase := NewGetTicketUseCase(mockRepo, &mockLogger{})

		_, err := useCase.Execute(context.Background(), GetTicketQuery{TicketCode: "TIC-7"})

		require.Error(t, err)
		assert.True(t, errors.IsRepositoryError(err))
	})
}

func TestListTicketsUseCase_Execute(t *testing.T) {
	t.Run("all tickets", func(t *testing.T) {
		mockRepo := &mockTicketRepository{
			ListFunc: func(ctx context.Context) ([]*ticket.Ticket, error) {
				return []*ticket.Ticket{storedTicket(t)}, nil
			},
		}
		useCase := NewListTicketsUseCase(mockRepo, &mockCustomerRepository{}, &mockLogger{})

		result, err := useCase.Execute(context.Background(), ListTicketsQuery{})

		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "TIC-7", result[0].Code)
	})

	t.Run("filtered by customer", func(t *testing.T) {
		mockCustomers := &mockCustomerRepository{
			FindByCodeFunc: func(ctx context.Context, code string) (*customer.Customer, error) {
				return testCustomer(t), nil
			},
		}
		mockRepo := &mockTicketRepository{
			ListByCustomerFunc: func(ctx context.Context, customerCode string) ([]*ticket.Ticket, error) {
				assert.Equal(t, "CLI-1", customerCode)
				return []*ticket.Ticket{storedTicket(t)}, nil
			},
		}
		useCase := NewListTicketsUseCase(mockRepo, mockCustomers, &mockLogger{})

		result, err := useCase.Execute(context.Background(), ListTicketsQuery{CustomerCode: "CLI-1"})

		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "CLI-1", result[0].CustomerCode)
	})

	t.Run("filter customer does not exist", func(t *testing.T) {
		useCase := NewListTicketsUseCase(
			&mockTicketRepository{}, &mockCustomerRepository{}, &mockLogger{})

		result, err := useCase.Execute(context.Background(), ListTicketsQuery{CustomerCode: "CLI-99"})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("empty result is not an error", func(t *testing.T) {
		useCase := NewListTicketsUseCase(
			&mockTicketRepository{}, &mockCustomerRepository{}, &mockLogger{})

		result, err := useCase.Execute(context.Background(), ListTicketsQuery{})

		require.NoError(t, err)
		assert.Empty(t, result)
	})
}

func TestDeleteTicketUseCase_Execute(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		var deletedCode string
		mockRepo := &mockTicketRepository{
			DeleteFunc: func(ctx context.Context, code string) (bool, error) {
				deletedCode = code
				return true, nil
			},
		}
		useCase := NewDeleteTicketUseCase(mockRepo, &mockLogger{})

		err := useCase.Execute(context.Background(), DeleteTicketCommand{TicketCode: "TIC-7"})

		require.NoError(t, err)
		assert.Equal(t, "TIC-7", deletedCode)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := &mockTicketRepository{
			DeleteFunc: func(ctx context.Context, code string) (bool, error) {
				return false, nil
			},
		}
		useCase := NewDeleteTicketUseCase(mockRepo, &mockLogger{})

		err := useCase.Execute(context.Background(), DeleteTicketCommand{TicketCode: "TIC-404"})

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("repository failure", func(t *testing.T) {
		mockRepo := &mockTicketRepository{
			DeleteFunc: func(ctx context.Context, code string) (bool, error) {
				return false, goerrors.New("disk full")
			},
		}
		useCase := NewDeleteTicketUseCase(mockRepo, &mockLogger{})

		err := useCase.Execute(context.Background(), DeleteTicketCommand{TicketCode: "TIC-7"})

		require.Error(t, err)
		assert.True(t, errors.IsRepositoryError(err))
	})
}
