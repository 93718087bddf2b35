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

type CreateExtinguisherRequest struct {
	Name      string
	Price     int64
	AgentType string
	Capacity  float64
}

// UpdateExtinguisherRequest applies a partial update: a nil field keeps
// the stored value.
type UpdateExtinguisherRequest struct {
	Name      string
	Price     *int64
	AgentType string
	Capacity  *float64
}

type ExtinguisherService struct {
	repo   catalog.ExtinguisherRepository
	logger logger.Interface
}

func NewExtinguisherService(repo catalog.ExtinguisherRepository, logger logger.Interface) *ExtinguisherService {
	return &ExtinguisherService{repo: repo, logger: logger}
}

func (s *ExtinguisherService) Create(ctx context.Context, req CreateExtinguisherRequest) (*dto.ExtinguisherDTO, error) {
	e, err := catalog.NewExtinguisher(req.Name, req.Price, req.AgentType, req.Capacity)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.checkDuplicateName(ctx, e.Name(), ""); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, e); err != nil {
		s.logger.Errorw("failed to save extinguisher", "error", err)
		return nil, errors.NewRepositoryError("failed to save extinguisher", err.Error())
	}

	s.logger.Infow("extinguisher created", "extinguisher_code", e.Code())
	return dto.FromExtinguisher(e), nil
}

func (s *ExtinguisherService) Update(ctx context.Context, code string, req UpdateExtinguisherRequest) (*dto.ExtinguisherDTO, error) {
	existing, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		s.logger.Errorw("failed to load extinguisher", "error", err)
		return nil, errors.NewRepositoryError("failed to load extinguisher", err.Error())
	}
	if existing == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("extinguisher %q not found", code))
	}

	name := existing.Name()
	if strings.TrimSpace(req.Name) != "" {
		name = req.Name
	}
	price := existing.Price()
	if req.Price != nil {
		price = *req.Price
	}
	agentType := existing.AgentType()
	if strings.TrimSpace(req.AgentType) != "" {
		agentType = req.AgentType
	}
	capacity := existing.Capacity()
	if req.Capacity != nil {
		capacity = *req.Capacity
	}

	if err := existing.Rename(name, price, agentType, capacity); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.checkDuplicateName(ctx, existing.Name(), code); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		s.logger.Errorw("failed to update extinguisher", "error", err)
		return nil, errors.NewRepositoryError("failed to update extinguisher", err.Error())
	}

	return dto.FromExtinguisher(existing), nil
}

func (s *ExtinguisherService) Get(ctx context.Context, code string) (*dto.ExtinguisherDTO, error) {
	e, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return nil, errors.NewRepositoryError("failed to load extinguisher", err.Error())
	}
	if e == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("extinguisher %q not found", code))
	}
	return dto.FromExtinguisher(e), nil
}

func (s *ExtinguisherService) Delete(ctx context.Context, code string) error {
	found, err := s.repo.Delete(ctx, code)
	if err != nil {
		s.logger.Errorw("failed to delete extinguisher", "error", err)
		return errors.NewRepositoryError("failed to delete extinguisher", err.Error())
	}
	if !found {
		return errors.NewNotFoundError(fmt.Sprintf("extinguisher %q not found", code))
	}

	s.logger.Infow("extinguisher deleted", "extinguisher_code", code)
	return nil
}

func (s *ExtinguisherService) List(ctx context.Context) ([]*dto.ExtinguisherDTO, error) {
	extinguishers, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.NewRepositoryError("failed to list extinguishers", err.Error())
	}
	return dto.FromExtinguishers(extinguishers), nil
}

// Search matches the query against extinguisher names, case-insensitively.
func (s *ExtinguisherService) Search(ctx context.Context, query string) ([]*dto.ExtinguisherDTO, error) {
	extinguishers, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.NewRepositoryError("failed to list extinguishers", err.Error())
	}

	query = strings.ToLower(strings.TrimSpace(query))
	matched := make([]*catalog.Extinguisher, 0)
	for _, e := range extinguishers {
		if strings.Contains(strings.ToLower(e.Name()), query) {
			matched = append(matched, e)
		}
	}
	return dto.FromExtinguishers(matched), nil
}

// SearchByAgentType matches the query against the extinguishing agent,
// case-insensitively.
func (s *ExtinguisherService) SearchByAgentType(ctx context.Context, agentType string) ([]*dto.ExtinguisherDTO, error) {
	extinguishers, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.NewRepositoryError("failed to list extinguishers", err.Error())
	}

	agentType = strings.ToLower(strings.TrimSpace(agentType))
	matched := make([]*catalog.Extinguisher, 0)
	for _, e := range extinguishers {
		if strings.Contains(strings.ToLower(e.AgentType()), agentType) {
			matched = append(matched, e)
		}
	}
	return dto.FromExtinguishers(matched), nil
}

// SearchByCapacityRange returns extinguishers whose capacity in kg falls
// within [min, max]. A nil max means no upper bound.
func (s *ExtinguisherService) SearchByCapacityRange(ctx context.Context, min float64, max *float64) ([]*dto.ExtinguisherDTO, error) {
	if max != nil && *max < min {
		return nil, errors.NewValidationError("capacidad_max must be greater than or equal to capacidad_min")
	}

	extinguishers, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.NewRepositoryError("failed to list extinguishers", err.Error())
	}

	matched := make([]*catalog.Extinguisher, 0)
	for _, e := range extinguishers {
		if e.Capacity() < min {
			continue
		}
		if max != nil && e.Capacity() > *max {
			continue
		}
		matched = append(matched, e)
	}
	return dto.FromExtinguishers(matched), nil
}

func (s *ExtinguisherService) checkDuplicateName(ctx context.Context, name, excludeCode string) error {
	existing, err := s.repo.List(ctx)
	if err != nil {
		return errors.NewRepositoryError("failed to list extinguishers", err.Error())
	}
	for _, e := range existing {
		if e.Code() == excludeCode {
			continue
		}
		if strings.EqualFold(e.Name(), name) {
			return errors.NewConflictError(fmt.Sprintf("an extinguisher named %q already exists", name))
		}
	}
	return nil
}
