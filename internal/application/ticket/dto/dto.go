// Package dto carries the ticket representations returned to callers.
// The JSON keys mirror the legacy on-disk record layout, so exported
// tickets stay readable by the tooling that consumed the old data files.
package dto

import (
	"time"

	"extinsia/internal/domain/ticket"
)

type ResolvedItemDTO struct {
	Code      string `json:"codigo"`
	Name      string `json:"nombre"`
	UnitPrice int64  `json:"precio"`
	Quantity  int    `json:"cantidad"`
}

type TicketDTO struct {
	Code         string            `json:"codigo_ticket"`
	Service      string            `json:"servicio"`
	CustomerCode string            `json:"codigo_cliente"`
	CustomerName string            `json:"cliente"`
	Items        []ResolvedItemDTO `json:"productos"`
	Total        int64             `json:"total"`
	CreatedAt    time.Time         `json:"fecha"`
}

func FromTicket(t *ticket.Ticket) *TicketDTO {
	items := t.Items()
	itemDTOs := make([]ResolvedItemDTO, len(items))
	for i, item := range items {
		itemDTOs[i] = ResolvedItemDTO{
			Code:      item.Code(),
			Name:      item.Name(),
			UnitPrice: item.UnitPrice(),
			Quantity:  item.Quantity(),
		}
	}

	return &TicketDTO{
		Code:         t.Code(),
		Service:      t.Service(),
		CustomerCode: t.CustomerCode(),
		CustomerName: t.CustomerName(),
		Items:        itemDTOs,
		Total:        t.Total(),
		CreatedAt:    t.CreatedAt(),
	}
}

func FromTickets(tickets []*ticket.Ticket) []*TicketDTO {
	dtos := make([]*TicketDTO, len(tickets))
	for i, t := range tickets {
		dtos[i] = FromTicket(t)
	}
	return dtos
}
