// Package mappers converts between domain entities and the gorm models.
package mappers

import (
	"encoding/json"
	"fmt"

	"extinsia/internal/domain/ticket"
	"extinsia/internal/infrastructure/persistence/models"
)

// itemRecord is the JSON shape of one line item inside the productos
// column. The keys match the legacy data files.
type itemRecord struct {
	Code      string `json:"codigo"`
	Name      string `json:"nombre"`
	UnitPrice int64  `json:"precio"`
	Quantity  int    `json:"cantidad"`
}

type TicketMapper struct{}

func NewTicketMapper() *TicketMapper {
	return &TicketMapper{}
}

func (m *TicketMapper) ToModel(t *ticket.Ticket) (*models.TicketModel, error) {
	items := t.Items()
	records := make([]itemRecord, len(items))
	for i, item := range items {
		records[i] = itemRecord{
			Code:      item.Code(),
			Name:      item.Name(),
			UnitPrice: item.UnitPrice(),
			Quantity:  item.Quantity(),
		}
	}

	itemsJSON, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal ticket items: %w", err)
	}

	return &models.TicketModel{
		ID:           t.ID(),
		Code:         t.Code(),
		Service:      t.Service(),
		CustomerCode: t.CustomerCode(),
		CustomerName: t.CustomerName(),
		Items:        itemsJSON,
		Total:        t.Total(),
		CreatedAt:    t.CreatedAt(),
	}, nil
}

func (m *TicketMapper) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	var records []itemRecord
	if err := json.Unmarshal(model.Items, &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ticket items: %w", err)
	}

	items := make([]ticket.ResolvedItem, len(records))
	for i, r := range records {
		item, err := ticket.ReconstructResolvedItem(r.Code, r.Name, r.UnitPrice, r.Quantity)
		if err != nil {
			return nil, fmt.Errorf("invalid stored item %q: %w", r.Code, err)
		}
		items[i] = item
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.Code,
		model.Service,
		model.CustomerCode,
		model.CustomerName,
		items,
		model.Total,
		model.CreatedAt,
	)
}
