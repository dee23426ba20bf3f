package resources

import (
	"context"
	"errors"
	"fmt"

	"github.com/opsdesk/OPS-ResourceService/internal/domain"
	resourceRepo "github.com/opsdesk/OPS-ResourceService/internal/infra/storage/resource"
)

// Service сервис реестра ресурсов
type Service struct {
	resourceRepo ResourceRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса ресурсов
func NewService(resourceRepo ResourceRepository, logger Logger) *Service {
	return &Service{
		resourceRepo: resourceRepo,
		logger:       logger,
	}
}

// CreateRequest модель запроса на провижининг ресурса
type CreateRequest struct {
	TenantID string
	Kind     domain.ResourceKind
	Name     string
	BaseRate float64
}

// Create регистрирует новый ресурс. Ресурс начинает жизнь свободным
// и чистым.
func (s *Service) Create(ctx context.Context, req *CreateRequest) (*domain.Resource, error) {
	s.logger.Info("Resources.Create: tenant=%s, kind=%s, name=%s", req.TenantID, req.Kind, req.Name)

	if req.TenantID == "" {
		return nil, fmt.Errorf("%w: tenantID is required", ErrInvalidInput)
	}
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !req.Kind.IsValid() {
		return nil, fmt.Errorf("%w: unknown resource kind %q", ErrInvalidInput, req.Kind)
	}
	if req.BaseRate < 0 {
		return nil, fmt.Errorf("%w: baseRate must be non-negative", ErrInvalidInput)
	}

	created, err := s.resourceRepo.Create(ctx, &domain.Resource{
		TenantID:           req.TenantID,
		Kind:               req.Kind,
		Name:               req.Name,
		Status:             domain.StatusAvailable,
		HousekeepingStatus: domain.HousekeepingClean,
		BaseRate:           req.BaseRate,
	})
	if err != nil {
		if errors.Is(err, resourceRepo.ErrResourceExists) {
			s.logger.Warn("Resources.Create: resource %q already exists for tenant=%s", req.Name, req.TenantID)
			return nil, ErrResourceExists
		}
		s.logger.Error("Resources.Create: failed to create resource: %v", err)
		return nil, fmt.Errorf("%w: failed to create resource: %v", ErrInternal, err)
	}

	s.logger.Info("Resources.Create: created resource id=%d", created.ID)

	return created, nil
}

// GetByID возвращает ресурс по идентификатору
func (s *Service) GetByID(ctx context.Context, tenantID string, id int64) (*domain.Resource, error) {
	res, err := s.resourceRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			return nil, ErrResourceNotFound
		}
		s.logger.Error("Resources.GetByID: failed to get resource id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
	}
	return res, nil
}

// List возвращает реестр ресурсов арендатора, опционально по типу
func (s *Service) List(ctx context.Context, tenantID string, kind *domain.ResourceKind) ([]*domain.Resource, error) {
	if tenantID == "" {
		return nil, fmt.Errorf("%w: tenantID is required", ErrInvalidInput)
	}
	if kind != nil && !kind.IsValid() {
		return nil, fmt.Errorf("%w: unknown resource kind %q", ErrInvalidInput, *kind)
	}

	list, err := s.resourceRepo.List(ctx, tenantID, kind)
	if err != nil {
		s.logger.Error("Resources.List: failed to list resources: %v", err)
		return nil, fmt.Errorf("%w: failed to list resources: %v", ErrInternal, err)
	}

	return list, nil
}
