package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"extinsia/internal/domain/ticket"
	"extinsia/internal/infrastructure/persistence/mappers"
	"extinsia/internal/infrastructure/persistence/models"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper *mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

// Save assigns the next TIC-n code, stamps the creation time and inserts
// the record in one transaction. The code and timestamp are staged on the
// row model and only written back to the aggregate once the insert
// succeeds, so a rolled-back save leaves the ticket reusable.
func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		code, err := nextCode(tx, &models.TicketModel{}, "codigo_ticket", "TIC")
		if err != nil {
			return err
		}

		model, err := r.mapper.ToModel(t)
		if err != nil {
			return err
		}
		model.Code = code
		model.CreatedAt = time.Now().UTC()

		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to save ticket: %w", err)
		}

		if err := t.SetCode(code); err != nil {
			return err
		}
		if err := t.SetCreatedAt(model.CreatedAt); err != nil {
			return err
		}
		return t.SetID(model.ID)
	})
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) (bool, error) {
	model, err := r.mapper.ToModel(t)
	if err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).
		Model(&models.TicketModel{}).
		Where("codigo_ticket = ?", t.Code()).
		Select("servicio", "productos", "total").
		Updates(map[string]interface{}{
			"servicio":  model.Service,
			"productos": model.Items,
			"total":     model.Total,
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		// Distinguish a missing row from a no-op write.
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&models.TicketModel{}).
			Where("codigo_ticket = ?", t.Code()).
			Count(&count).Error; err != nil {
			return false, fmt.Errorf("failed to check ticket existence: %w", err)
		}
		return count > 0, nil
	}

	return true, nil
}

func (r *TicketRepository) Delete(ctx context.Context, code string) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("codigo_ticket = ?", code).
		Delete(&models.TicketModel{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *TicketRepository) FindByCode(ctx context.Context, code string) (*ticket.Ticket, error) {
	var model models.TicketModel
	err := r.db.WithContext(ctx).
		Where("codigo_ticket = ?", code).
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) List(ctx context.Context) ([]*ticket.Ticket, error) {
	var modelList []models.TicketModel
	if err := r.db.WithContext(ctx).
		Order("id").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	return r.toDomainList(modelList)
}

func (r *TicketRepository) ListByCustomer(ctx context.Context, customerCode string) ([]*ticket.Ticket, error) {
	var modelList []models.TicketModel
	if err := r.db.WithContext(ctx).
		Where("codigo_cliente = ?", customerCode).
		Order("id").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets by customer: %w", err)
	}
	return r.toDomainList(modelList)
}

func (r *TicketRepository) toDomainList(modelList []models.TicketModel) ([]*ticket.Ticket, error) {
	tickets := make([]*ticket.Ticket, len(modelList))
	for i := range modelList {
		t, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		tickets[i] = t
	}
	return tickets, nil
}
