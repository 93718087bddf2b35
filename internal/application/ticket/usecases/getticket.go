package usecases

import (
	"context"
	"fmt"

	"extinsia/internal/application/ticket/dto"
	"extinsia/internal/domain/ticket"
	"extinsia/internal/shared/errors"
	"extinsia/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketCode string
}

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	t, err := uc.ticketRepo.FindByCode(ctx, query.TicketCode)
	if err != nil {
		uc.logger.Errorw("failed to load ticket", "error", err)
		return nil, errors.NewRepositoryError("failed to load ticket", err.Error())
	}
	if t == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %q not found", query.TicketCode))
	}

	return dto.FromTicket(t), nil
}
