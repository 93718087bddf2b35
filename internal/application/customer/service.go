// Package customer is the application service for client companies:
// creation, partial updates, renewal-month queries and name search.
package customer

import (
	"context"
	"fmt"
	"strings"

	"extinsia/internal/application/customer/dto"
	"extinsia/internal/domain/customer"
	"extinsia/internal/shared/errors"
	"extinsia/internal/shared/logger"
	"extinsia/internal/shared/textutil"
)

type CreateCustomerRequest struct {
	CompanyName  string
	ManagerName  string
	Address      string
	Phone        string
	RenewalMonth string
}

// UpdateCustomerRequest applies a partial update: empty fields keep the
// stored value.
type UpdateCustomerRequest struct {
	CompanyName  string
	ManagerName  string
	Address      string
	Phone        string
	RenewalMonth string
}

type Service struct {
	repo   customer.Repository
	logger logger.Interface
}

func NewService(repo customer.Repository, logger logger.Interface) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) Create(ctx context.Context, req CreateCustomerRequest) (*dto.CustomerDTO, error) {
	c, err := customer.NewCustomer(
		req.CompanyName, req.ManagerName, req.Address, req.Phone, req.RenewalMonth)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.checkDuplicateName(ctx, c.CompanyName(), ""); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, c); err != nil {
		s.logger.Errorw("failed to save customer", "error", err)
		return nil, errors.NewRepositoryError("failed to save customer", err.Error())
	}

	s.logger.Infow("customer created", "customer_code", c.Code())
	return dto.FromCustomer(c), nil
}

func (s *Service) Update(ctx context.Context, code string, req UpdateCustomerRequest) (*dto.CustomerDTO, error) {
	existing, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		s.logger.Errorw("failed to load customer", "error", err)
		return nil, errors.NewRepositoryError("failed to load customer", err.Error())
	}
	if existing == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("customer %q not found", code))
	}

	companyName := fallback(req.CompanyName, existing.CompanyName())
	managerName := fallback(req.ManagerName, existing.ManagerName())
	address := fallback(req.Address, existing.Address())
	phone := fallback(req.Phone, existing.Phone())
	renewalMonth := fallback(req.RenewalMonth, existing.RenewalMonth())

	if err := existing.UpdateDetails(companyName, managerName, address, phone, renewalMonth); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.checkDuplicateName(ctx, existing.CompanyName(), code); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		s.logger.Errorw("failed to update customer", "error", err)
		return nil, errors.NewRepositoryError("failed to update customer", err.Error())
	}

	return dto.FromCustomer(existing), nil
}

func (s *Service) Get(ctx context.Context, code string) (*dto.CustomerDTO, error) {
	c, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return nil, errors.NewRepositoryError("failed to load customer", err.Error())
	}
	if c == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("customer %q not found", code))
	}
	return dto.FromCustomer(c), nil
}

func (s *Service) Delete(ctx context.Context, code string) error {
	found, err := s.repo.Delete(ctx, code)
	if err != nil {
		s.logger.Errorw("failed to delete customer", "error", err)
		return errors.NewRepositoryError("failed to delete customer", err.Error())
	}
	if !found {
		return errors.NewNotFoundError(fmt.Sprintf("customer %q not found", code))
	}

	s.logger.Infow("customer deleted", "customer_code", code)
	return nil
}

func (s *Service) List(ctx context.Context) ([]*dto.CustomerDTO, error) {
	customers, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.NewRepositoryError("failed to list customers", err.Error())
	}
	return dto.FromCustomers(customers), nil
}

// Search matches the query against company and manager names,
// case-insensitively.
func (s *Service) Search(ctx context.Context, query string) ([]*dto.CustomerDTO, error) {
	customers, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.NewRepositoryError("failed to list customers", err.Error())
	}

	query = strings.ToLower(strings.TrimSpace(query))
	matched := make([]*customer.Customer, 0)
	for _, c := range customers {
		if strings.Contains(strings.ToLower(c.CompanyName()), query) ||
			strings.Contains(strings.ToLower(c.ManagerName()), query) {
			matched = append(matched, c)
		}
	}
	return dto.FromCustomers(matched), nil
}

// ListByRenewalMonth returns the customers whose service contract is due
// in the given Spanish month name.
func (s *Service) ListByRenewalMonth(ctx context.Context, month string) ([]*dto.CustomerDTO, error) {
	month = textutil.Title(month)
	if !customer.IsValidMonth(month) {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid renewal month %q", month))
	}

	customers, err := s.repo.ListByRenewalMonth(ctx, month)
	if err != nil {
		return nil, errors.NewRepositoryError("failed to list customers", err.Error())
	}
	return dto.FromCustomers(customers), nil
}

// checkDuplicateName rejects a company name already used by a customer
// other than excludeCode.
func (s *Service) checkDuplicateName(ctx context.Context, companyName, excludeCode string) error {
	existing, err := s.repo.List(ctx)
	if err != nil {
		return errors.NewRepositoryError("failed to list customers", err.Error())
	}
	for _, c := range existing {
		if c.Code() == excludeCode {
			continue
		}
		if strings.EqualFold(c.CompanyName(), companyName) {
			return errors.NewConflictError(
				fmt.Sprintf("a customer named %q already exists", companyName))
		}
	}
	return nil
}

func fallback(value, prior string) string {
	if strings.TrimSpace(value) == "" {
		return prior
	}
	return value
}
