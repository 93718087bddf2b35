package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"extinsia/internal/domain/customer"
	"extinsia/internal/infrastructure/persistence/mappers"
	"extinsia/internal/infrastructure/persistence/models"
)

type CustomerRepository struct {
	db     *gorm.DB
	mapper *mappers.CustomerMapper
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{
		db:     db,
		mapper: mappers.NewCustomerMapper(),
	}
}

func (r *CustomerRepository) Save(ctx context.Context, c *customer.Customer) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		code, err := nextCode(tx, &models.CustomerModel{}, "codigo", "CLI")
		if err != nil {
			return err
		}
		if err := c.SetCode(code); err != nil {
			return err
		}

		model := r.mapper.ToModel(c)
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to save customer: %w", err)
		}

		return c.SetID(model.ID)
	})
}

func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	model := r.mapper.ToModel(c)
	result := r.db.WithContext(ctx).
		Model(&models.CustomerModel{}).
		Where("codigo = ?", c.Code()).
		Updates(map[string]interface{}{
			"nombre_empresa":   model.CompanyName,
			"nombre_encargado": model.ManagerName,
			"direccion":        model.Address,
			"celular":          model.Phone,
			"mes_vencimiento":  model.RenewalMonth,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update customer: %w", result.Error)
	}
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, code string) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("codigo = ?", code).
		Delete(&models.CustomerModel{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete customer: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *CustomerRepository) FindByCode(ctx context.Context, code string) (*customer.Customer, error) {
	var model models.CustomerModel
	err := r.db.WithContext(ctx).
		Where("codigo = ?", code).
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *CustomerRepository) List(ctx context.Context) ([]*customer.Customer, error) {
	var modelList []models.CustomerModel
	if err := r.db.WithContext(ctx).
		Order("id").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return r.toDomainList(modelList)
}

func (r *CustomerRepository) ListByRenewalMonth(ctx context.Context, month string) ([]*customer.Customer, error) {
	var modelList []models.CustomerModel
	if err := r.db.WithContext(ctx).
		Where("mes_vencimiento = ?", month).
		Order("id").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list customers by renewal month: %w", err)
	}
	return r.toDomainList(modelList)
}

func (r *CustomerRepository) toDomainList(modelList []models.CustomerModel) ([]*customer.Customer, error) {
	customers := make([]*customer.Customer, len(modelList))
	for i := range modelList {
		c, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		customers[i] = c
	}
	return customers, nil
}
