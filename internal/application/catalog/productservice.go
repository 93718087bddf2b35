// Package catalog is the application service layer for the two sellable
// item catalogs.
package catalog

import (
	"context"
	"fmt"
	"strings"

	"extinsia/internal/application/catalog/dto"
	"extinsia/internal/domain/catalog"
	"extinsia/internal/shared/errors"
	"extinsia/internal/shared/logger"
)

type CreateProductRequest struct {
	Name  string
	Price int64
}

// UpdateProductRequest applies a partial update: a nil field keeps the
// stored value.
type UpdateProductRequest struct {
	Name  string
	Price *int64
}

type ProductService struct {
	repo   catalog.ProductRepository
	logger logger.Interface
}

func NewProductService(repo catalog.ProductRepository, logger logger.Interface) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*dto.ProductDTO, error) {
	p, err := catalog.NewProduct(req.Name, req.Price)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.checkDuplicateName(ctx, p.Name(), ""); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, p); err != nil {
		s.logger.Errorw("failed to save product", "error", err)
		return nil, errors.NewRepositoryError("failed to save product", err.Error())
	}

	s.logger.Infow("product created", "product_code", p.Code())
	return dto.FromProduct(p), nil
}

func (s *ProductService) Update(ctx context.Context, code string, req UpdateProductRequest) (*dto.ProductDTO, error) {
	existing, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		s.logger.Errorw("failed to load product", "error", err)
		return nil, errors.NewRepositoryError("failed to load product", err.Error())
	}
	if existing == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("product %q not found", code))
	}

	name := existing.Name()
	if strings.TrimSpace(req.Name) != "" {
		name = req.Name
	}
	price := existing.Price()
	if req.Price != nil {
		price = *req.Price
	}

	if err := existing.Rename(name, price); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.checkDuplicateName(ctx, existing.Name(), code); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		s.logger.Errorw("failed to update product", "error", err)
		return nil, errors.NewRepositoryError("failed to update product", err.Error())
	}

	return dto.FromProduct(existing), nil
}

func (s *ProductService) Get(ctx context.Context, code string) (*dto.ProductDTO, error) {
	p, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return nil, errors.NewRepositoryError("failed to load product", err.Error())
	}
	if p == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("product %q not found", code))
	}
	return dto.FromProduct(p), nil
}

func (s *ProductService) Delete(ctx context.Context, code string) error {
	found, err := s.repo.Delete(ctx, code)
	if err != nil {
		s.logger.Errorw("failed to delete product", "error", err)
		return errors.NewRepositoryError("failed to delete product", err.Error())
	}
	if !found {
		return errors.NewNotFoundError(fmt.Sprintf("product %q not found", code))
	}

	s.logger.Infow("product deleted", "product_code", code)
	return nil
}

func (s *ProductService) List(ctx context.Context) ([]*dto.ProductDTO, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.NewRepositoryError("failed to list products", err.Error())
	}
	return dto.FromProducts(products), nil
}

// Search matches the query against product names, case-insensitively.
func (s *ProductService) Search(ctx context.Context, query string) ([]*dto.ProductDTO, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.NewRepositoryError("failed to list products", err.Error())
	}

	query = strings.ToLower(strings.TrimSpace(query))
	matched := make([]*catalog.Product, 0)
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name()), query) {
			matched = append(matched, p)
		}
	}
	return dto.FromProducts(matched), nil
}

// SearchByPriceRange returns products priced within [min, max]. A nil
// max means no upper bound.
func (s *ProductService) SearchByPriceRange(ctx context.Context, min int64, max *int64) ([]*dto.ProductDTO, error) {
	if max != nil && *max < min {
		return nil, errors.NewValidationError("precio_max must be greater than or equal to precio_min")
	}

	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.NewRepositoryError("failed to list products", err.Error())
	}

	matched := make([]*catalog.Product, 0)
	for _, p := range products {
		if p.Price() < min {
			continue
		}
		if max != nil && p.Price() > *max {
			continue
		}
		matched = append(matched, p)
	}
	return dto.FromProducts(matched), nil
}

func (s *ProductService) checkDuplicateName(ctx context.Context, name, excludeCode string) error {
	existing, err := s.repo.List(ctx)
	if err != nil {
		return errors.NewRepositoryError("failed to list products", err.Error())
	}
	for _, p := range existing {
		if p.Code() == excludeCode {
			continue
		}
		if strings.EqualFold(p.Name(), name) {
			return errors.NewConflictError(fmt.Sprintf("a product named %q already exists", name))
		}
	}
	return nil
}
