package usecases

import (
	"context"
	goerrors "errors"
	"fmt"
	"strings"

	"extinsia/internal/application/ticket/dto"
	"extinsia/internal/domain/customer"
	"extinsia/internal/domain/ticket"
	"extinsia/internal/shared/errors"
	"extinsia/internal/shared/logger"
)

// ItemInput is a raw cart entry as received from the caller.
type ItemInput struct {
	Code     string
	Quantity int
}

type CreateTicketCommand struct {
	Service      string
	CustomerCode string
	Items        []ItemInput
}

// CreateTicketUseCase runs the full creation pipeline: service check,
// customer resolution, cart validation, catalog synchronization, total
// and a single persistence call at the end. Any failure aborts before
// anything is written.
type CreateTicketUseCase struct {
	ticketRepo   ticket.Repository
	customerRepo customer.Repository
	synchronizer *ticket.Synchronizer
	logger       logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	customerRepo customer.Repository,
	synchronizer *ticket.Synchronizer,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:   ticketRepo,
		customerRepo: customerRepo,
		synchronizer: synchronizer,
		logger:       logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing create ticket use case",
		"customer_code", cmd.CustomerCode, "items", len(cmd.Items))

	if strings.TrimSpace(cmd.Service) == "" {
		return nil, errors.NewValidationError("service is required")
	}

	// The customer must exist before any catalog work happens.
	cust, err := uc.customerRepo.FindByCode(ctx, cmd.CustomerCode)
	if err != nil {
		uc.logger.Errorw("failed to load customer", "error", err)
		return nil, errors.NewRepositoryError("failed to load customer", err.Error())
	}
	if cust == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("customer %q not found", cmd.CustomerCode))
	}

	rawItems := toLineItems(cmd.Items)
	if err := ticket.ValidateCart(rawItems); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	resolved, err := uc.synchronizer.Sync(ctx, rawItems)
	if err != nil {
		return nil, mapSyncError(err)
	}

	newTicket, err := ticket.NewTicket(cmd.Service, cust.Code(), cust.CompanyName(), resolved)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, errors.NewRepositoryError("failed to save ticket", err.Error())
	}

	uc.logger.Infow("ticket created",
		"ticket_code", newTicket.Code(), "total", newTicket.Total())

	return dto.FromTicket(newTicket), nil
}

func toLineItems(items []ItemInput) []ticket.LineItem {
	rawItems := make([]ticket.LineItem, len(items))
	for i, item := range items {
		rawItems[i] = ticket.LineItem{Code: item.Code, Quantity: item.Quantity}
	}
	return rawItems
}

// mapSyncError keeps the caller-facing taxonomy: an unknown code is the
// caller's problem (not found), a failing catalog store is not.
func mapSyncError(err error) error {
	var notFound *ticket.ItemNotFoundError
	if goerrors.As(err, &notFound) {
		return errors.NewNotFoundError(notFound.Error())
	}
	return errors.NewRepositoryError("catalog synchronization failed", err.Error())
}
