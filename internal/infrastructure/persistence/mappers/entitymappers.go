package mappers

import (
	"extinsia/internal/domain/catalog"
	"extinsia/internal/domain/customer"
	"extinsia/internal/domain/user"
	"extinsia/internal/infrastructure/persistence/models"
	"extinsia/internal/shared/authorization"
)

type CustomerMapper struct{}

func NewCustomerMapper() *CustomerMapper {
	return &CustomerMapper{}
}

func (m *CustomerMapper) ToModel(c *customer.Customer) *models.CustomerModel {
	return &models.CustomerModel{
		ID:           c.ID(),
		Code:         c.Code(),
		CompanyName:  c.CompanyName(),
		ManagerName:  c.ManagerName(),
		Address:      c.Address(),
		Phone:        c.Phone(),
		RenewalMonth: c.RenewalMonth(),
	}
}

func (m *CustomerMapper) ToDomain(model *models.CustomerModel) (*customer.Customer, error) {
	return customer.ReconstructCustomer(
		model.ID,
		model.Code,
		model.CompanyName,
		model.ManagerName,
		model.Address,
		model.Phone,
		model.RenewalMonth,
	)
}

type ProductMapper struct{}

func NewProductMapper() *ProductMapper {
	return &ProductMapper{}
}

func (m *ProductMapper) ToModel(p *catalog.Product) *models.ProductModel {
	return &models.ProductModel{
		ID:    p.ID(),
		Code:  p.Code(),
		Name:  p.Name(),
		Price: p.Price(),
	}
}

func (m *ProductMapper) ToDomain(model *models.ProductModel) (*catalog.Product, error) {
	return catalog.ReconstructProduct(model.ID, model.Code, model.Name, model.Price)
}

type ExtinguisherMapper struct{}

func NewExtinguisherMapper() *ExtinguisherMapper {
	return &ExtinguisherMapper{}
}

func (m *ExtinguisherMapper) ToModel(e *catalog.Extinguisher) *models.ExtinguisherModel {
	return &models.ExtinguisherModel{
		ID:        e.ID(),
		Code:      e.Code(),
		Name:      e.Name(),
		Price:     e.Price(),
		AgentType: e.AgentType(),
		Capacity:  e.Capacity(),
	}
}

func (m *ExtinguisherMapper) ToDomain(model *models.ExtinguisherModel) (*catalog.Extinguisher, error) {
	return catalog.ReconstructExtinguisher(
		model.ID,
		model.Code,
		model.Name,
		model.Price,
		model.AgentType,
		model.Capacity,
	)
}

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Code:         u.Code(),
		Name:         u.Name(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
	}
}

func (m *UserMapper) ToDomain(model *models.UserModel) (*user.User, error) {
	return user.ReconstructUser(
		model.ID,
		model.Code,
		model.Name,
		model.Email,
		model.PasswordHash,
		authorization.ParseUserRole(model.Role),
	)
}
