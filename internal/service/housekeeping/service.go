package housekeeping

import (
	"context"
	"errors"
	"fmt"

	"github.com/opsdesk/OPS-ResourceService/internal/domain"
	taskRepo "github.com/opsdesk/OPS-ResourceService/internal/infra/storage/task"
)

// Service сервис чтения задач уборки
type Service struct {
	taskRepo TaskRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса задач уборки
func NewService(taskRepo TaskRepository, logger Logger) *Service {
	return &Service{
		taskRepo: taskRepo,
		logger:   logger,
	}
}

// GetByID возвращает задачу уборки по идентификатору
func (s *Service) GetByID(ctx context.Context, tenantID string, id int64) (*domain.HousekeepingTask, error) {
	t, err := s.taskRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, taskRepo.ErrTaskNotFound) {
			return nil, ErrTaskNotFound
		}
		s.logger.Error("Housekeeping.GetByID: failed to get task id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get task: %v", ErrInternal, err)
	}
	return t, nil
}

// ListWithFilter возвращает задачи уборки арендатора по фильтру
func (s *Service) ListWithFilter(ctx context.Context, filter domain.TasksFilter) ([]*domain.HousekeepingTask, error) {
	if filter.TenantID == "" {
		return nil, fmt.Errorf("%w: tenantID is required", ErrInvalidInput)
	}
	if filter.Status != nil && *filter.Status != domain.TaskInProgress && *filter.Status != domain.TaskDone {
		return nil, fmt.Errorf("%w: unknown task status %q", ErrInvalidInput, *filter.Status)
	}

	list, err := s.taskRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("Housekeeping.ListWithFilter: failed to list tasks: %v", err)
		return nil, fmt.Errorf("%w: failed to list tasks: %v", ErrInternal, err)
	}

	return list, nil
}
