package usecases

import (
	"context"
	"fmt"
	"strings"

	"extinsia/internal/application/ticket/dto"
	"extinsia/internal/domain/ticket"
	"extinsia/internal/shared/errors"
	"extinsia/internal/shared/logger"
)

// UpdateTicketCommand describes a partial ticket update. A nil Items
// pointer keeps the stored items verbatim without re-synchronizing them;
// an explicitly empty list is rejected.
type UpdateTicketCommand struct {
	TicketCode string
	Service    string
	Items      *[]ItemInput
}

type UpdateTicketUseCase struct {
	ticketRepo   ticket.Repository
	synchronizer *ticket.Synchronizer
	logger       logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.Repository,
	synchronizer *ticket.Synchronizer,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo:   ticketRepo,
		synchronizer: synchronizer,
		logger:       logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_code", cmd.TicketCode)

	existing, err := uc.ticketRepo.FindByCode(ctx, cmd.TicketCode)
	if err != nil {
		uc.logger.Errorw("failed to load ticket", "error", err)
		return nil, errors.NewRepositoryError("failed to load ticket", err.Error())
	}
	if existing == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %q not found", cmd.TicketCode))
	}

	if strings.TrimSpace(cmd.Service) != "" {
		if err := existing.ChangeService(cmd.Service); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Items != nil {
		if len(*cmd.Items) == 0 {
			return nil, errors.NewValidationError("items list must not be empty")
		}

		rawItems := toLineItems(*cmd.Items)
		if err := ticket.ValidateCart(rawItems); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}

		resolved, err := uc.synchronizer.Sync(ctx, rawItems)
		if err != nil {
			return nil, mapSyncError(err)
		}

		if err := existing.ReplaceItems(resolved); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	found, err := uc.ticketRepo.Update(ctx, existing)
	if err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err)
		return nil, errors.NewRepositoryError("failed to update ticket", err.Error())
	}
	if !found {
		// The record existed when loaded above, so this is a storage
		// inconsistency, not bad caller input.
		return nil, errors.NewRepositoryError(
			fmt.Sprintf("ticket %q disappeared during update", cmd.TicketCode))
	}

	uc.logger.Infow("ticket updated",
		"ticket_code", existing.Code(), "total", existing.Total())

	return dto.FromTicket(existing), nil
}
