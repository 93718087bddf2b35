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

// ProductRepository persists the generic product catalog. It also
// implements catalog.Lookup so the ticket synchronizer can consult it
// directly.
type ProductRepository struct {
	db     *gorm.DB
	mapper *mappers.ProductMapper
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{
		db:     db,
		mapper: mappers.NewProductMapper(),
	}
}

func (r *ProductRepository) Save(ctx context.Context, p *catalog.Product) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		code, err := nextCode(tx, &models.ProductModel{}, "codigo", "PRO")
		if err != nil {
			return err
		}
		if err := p.SetCode(code); err != nil {
			return err
		}

		model := r.mapper.ToModel(p)
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to save product: %w", err)
		}

		return p.SetID(model.ID)
	})
}

func (r *ProductRepository) Update(ctx context.Context, p *catalog.Product) error {
	result := r.db.WithContext(ctx).
		Model(&models.ProductModel{}).
		Where("codigo = ?", p.Code()).
		Updates(map[string]interface{}{
			"nombre": p.Name(),
			"precio": p.Price(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update product: %w", result.Error)
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, code string) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("codigo = ?", code).
		Delete(&models.ProductModel{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete product: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *ProductRepository) FindByCode(ctx context.Context, code string) (*catalog.Product, error) {
	var model models.ProductModel
	err := r.db.WithContext(ctx).
		Where("codigo = ?", code).
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ProductRepository) List(ctx context.Context) ([]*catalog.Product, error) {
	var modelList []models.ProductModel
	if err := r.db.WithContext(ctx).
		Order("id").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	products := make([]*catalog.Product, len(modelList))
	for i := range modelList {
		p, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		products[i] = p
	}
	return products, nil
}

// FindItemByCode implements catalog.Lookup.
func (r *ProductRepository) FindItemByCode(ctx context.Context, code string) (*catalog.Item, error) {
	p, err := r.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return &catalog.Item{Code: p.Code(), Name: p.Name(), Price: p.Price()}, nil
}
