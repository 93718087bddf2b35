package usecases

import (
	"context"
	"fmt"

	"extinsia/internal/application/ticket/dto"
	"extinsia/internal/domain/customer"
	"extinsia/internal/domain/ticket"
	"extinsia/internal/shared/errors"
	"extinsia/internal/shared/logger"
)

// ListTicketsQuery lists every ticket, or only those belonging to one
// customer when CustomerCode is set.
type ListTicketsQuery struct {
	CustomerCode string
}

type ListTicketsUseCase struct {
	ticketRepo   ticket.Repository
	customerRepo customer.Repository
	logger       logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.Repository,
	customerRepo customer.Repository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo:   ticketRepo,
		customerRepo: customerRepo,
		logger:       logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) ([]*dto.TicketDTO, error) {
	if query.CustomerCode == "" {
		tickets, err := uc.ticketRepo.List(ctx)
		if err != nil {
			uc.logger.Errorw("failed to list tickets", "error", err)
			return nil, errors.NewRepositoryError("failed to list tickets", err.Error())
		}
		return dto.FromTickets(tickets), nil
	}

	existing, err := uc.customerRepo.FindByCode(ctx, query.CustomerCode)
	if err != nil {
		uc.logger.Errorw("failed to load customer", "error", err)
		return nil, errors.NewRepositoryError("failed to load customer", err.Error())
	}
	if existing == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("customer %q not found", query.CustomerCode))
	}

	tickets, err := uc.ticketRepo.ListByCustomer(ctx, query.CustomerCode)
	if err != nil {
		uc.logger.Errorw("failed to list tickets by customer", "error", err)
		return nil, errors.NewRepositoryError("failed to list tickets", err.Error())
	}

	return dto.FromTickets(tickets), nil
}
