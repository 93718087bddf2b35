package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"extinsia/internal/domain/catalog"
	"extinsia/internal/infrastructure/persistence/mappers"
	"extinsia/internal/infrastructure/persistence/models"
)

// ExtinguisherRepository persists the extinguisher catalog and, like the
// product repository, doubles as a catalog.Lookup for the synchronizer.
type ExtinguisherRepository struct {
	db     *gorm.DB
	mapper *mappers.ExtinguisherMapper
}

func NewExtinguisherRepository(db *gorm.DB) *ExtinguisherRepository {
	return &ExtinguisherRepository{
		db:     db,
		mapper: mappers.NewExtinguisherMapper(),
	}
}

func (r *ExtinguisherRepository) Save(ctx context.Context, e *catalog.Extinguisher) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		code, err := nextCode(tx, &models.ExtinguisherModel{}, "codigo", "EXT")
		if err != nil {
			return err
		}
		if err := e.SetCode(code); err != nil {
			return err
		}

		model := r.mapper.ToModel(e)
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to save extinguisher: %w", err)
		}

		return e.SetID(model.ID)
	})
}

func (r *ExtinguisherRepository) Update(ctx context.Context, e *catalog.Extinguisher) error {
	result := r.db.WithContext(ctx).
		Model(&models.ExtinguisherModel{}).
		Where("codigo = ?", e.Code()).
		Updates(map[string]interface{}{
			"nombre":    e.Name(),
			"precio":    e.Price(),
			"tipo":      e.AgentType(),
			"capacidad": e.Capacity(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update extinguisher: %w", result.Error)
	}
	return nil
}

func (r *ExtinguisherRepository) Delete(ctx context.Context, code string) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("codigo = ?", code).
		Delete(&models.ExtinguisherModel{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete extinguisher: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *ExtinguisherRepository) FindByCode(ctx context.Context, code string) (*catalog.Extinguisher, error) {
	var model models.ExtinguisherModel
	err := r.db.WithContext(ctx).
		Where("codigo = ?", code).
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find extinguisher: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ExtinguisherRepository) List(ctx context.Context) ([]*catalog.Extinguisher, error) {
	var modelList []models.ExtinguisherModel
	if err := r.db.WithContext(ctx).
		Order("id").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list extinguishers: %w", err)
	}

	extinguishers := make([]*catalog.Extinguisher, len(modelList))
	for i := range modelList {
		e, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		extinguishers[i] = e
	}
	return extinguishers, nil
}

// FindItemByCode implements catalog.Lookup.
func (r *ExtinguisherRepository) FindItemByCode(ctx context.Context, code string) (*catalog.Item, error) {
	e, err := r.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}
	return &catalog.Item{Code: e.Code(), Name: e.Name(), Price: e.Price()}, nil
}
