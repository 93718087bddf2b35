package ticket

import (
	"extinsia/internal/application/ticket/usecases"
)

// ItemRequest is one cart line as the client sends it: catalog code and
// quantity. Names and prices are resolved server side.
type ItemRequest struct {
	Code     string `json:"codigo" binding:"required"`
	Quantity int    `json:"cantidad" binding:"required"`
}

type CreateTicketRequest struct {
	Service      string        `json:"servicio" binding:"required"`
	CustomerCode string        `json:"codigo_cliente" binding:"required"`
	Items        []ItemRequest `json:"productos" binding:"required"`
}

func (r CreateTicketRequest) ToCommand() usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Service:      r.Service,
		CustomerCode: r.CustomerCode,
		Items:        toItemInputs(r.Items),
	}
}

// UpdateTicketRequest carries a partial update. Omitting productos keeps
// the stored items untouched; sending an empty list is an error.
type UpdateTicketRequest struct {
	Service string         `json:"servicio"`
	Items   *[]ItemRequest `json:"productos"`
}

func (r UpdateTicketRequest) ToCommand(ticketCode string) usecases.UpdateTicketCommand {
	cmd := usecases.UpdateTicketCommand{
		TicketCode: ticketCode,
		Service:    r.Service,
	}
	if r.Items != nil {
		items := toItemInputs(*r.Items)
		cmd.Items = &items
	}
	return cmd
}

func toItemInputs(items []ItemRequest) []usecases.ItemInput {
	inputs := make([]usecases.ItemInput, len(items))
	for i, item := range items {
		inputs[i] = usecases.ItemInput{
			Code:     item.Code,
			Quantity: item.Quantity,
		}
	}
	return inputs
}
