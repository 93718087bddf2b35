package usecases

import (
	"context"
	"fmt"

	"extinsia/internal/domain/ticket"
	"extinsia/internal/shared/errors"
	"extinsia/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketCode string
}

type DeleteTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewDeleteTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	found, err := uc.ticketRepo.Delete(ctx, cmd.TicketCode)
	if err != nil {
		uc.logger.Errorw("failed to delete ticket", "error", err)
		return errors.NewRepositoryError("failed to delete ticket", err.Error())
	}
	if !found {
		return errors.NewNotFoundError(fmt.Sprintf("ticket %q not found", cmd.TicketCode))
	}

	uc.logger.Infow("ticket deleted", "ticket_code", cmd.TicketCode)
	return nil
}
