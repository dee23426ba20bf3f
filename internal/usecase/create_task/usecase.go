package create_task

import (
	"context"
	"errors"
	"fmt"

	"github.com/opsdesk/OPS-ResourceService/internal/domain"
	resourceRepo "github.com/opsdesk/OPS-ResourceService/internal/infra/storage/resource"
	taskRepo "github.com/opsdesk/OPS-ResourceService/internal/infra/storage/task"
)

// Request модель запроса на ручное создание задачи уборки
type Request struct {
	TenantID   string
	ResourceID int64
}

// Response модель ответа. Existing = true, если по ресурсу уже шла
// незавершенная задача и создавать новую не потребовалось
type Response struct {
	Task           *domain.HousekeepingTask
	ResourceStatus domain.ResourceStatus
	Existing       bool
}

// UseCase use case ручного создания задачи уборки
type UseCase struct {
	resourceRepo ResourceRepository
	bookingRepo  BookingRepository
	taskRepo     TaskRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	resourceRepo ResourceRepository,
	bookingRepo BookingRepository,
	taskRepo TaskRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		resourceRepo: resourceRepo,
		bookingRepo:  bookingRepo,
		taskRepo:     taskRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute создает задачу уборки по запросу диспетчера. Если по ресурсу
// уже идет незавершенная задача, возвращается она — повторный запрос
// из UI не ошибка. Статус уборки ресурса переводится в cleaning,
// статус жизненного цикла пересчитывается.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateTask: tenant=%s, resource=%d", req.TenantID, req.ResourceID)

	if req.TenantID == "" {
		return nil, fmt.Errorf("%w: tenantID is required", ErrInvalidInput)
	}
	if req.ResourceID <= 0 {
		return nil, fmt.Errorf("%w: resourceID must be positive", ErrInvalidInput)
	}

	var result *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		res, err := uc.resourceRepo.GetByIDForUpdate(txCtx, req.TenantID, req.ResourceID)
		if err != nil {
			if errors.Is(err, resourceRepo.ErrResourceNotFound) {
				uc.logger.Warn("CreateTask: resource id=%d not found", req.ResourceID)
				return ErrResourceNotFound
			}
			uc.logger.Error("CreateTask: failed to get resource id=%d: %v", req.ResourceID, err)
			return fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
		}

		existing, err := uc.taskRepo.GetInProgressByResource(txCtx, req.TenantID, res.ID)
		if err == nil {
			uc.logger.Info("CreateTask: resource id=%d already has task id=%d in progress",
				res.ID, existing.ID)
			result = &Response{Task: existing, ResourceStatus: res.Status, Existing: true}
			return nil
		}
		if !errors.Is(err, taskRepo.ErrTaskNotFound) {
			uc.logger.Error("CreateTask: failed to get in-progress task: %v", err)
			return fmt.Errorf("%w: failed to get in-progress task: %v", ErrInternal, err)
		}

		created, err := uc.taskRepo.Create(txCtx, &domain.HousekeepingTask{
			TenantID:   req.TenantID,
			ResourceID: res.ID,
		})
		if err != nil {
			uc.logger.Error("CreateTask: failed to create task: %v", err)
			return fmt.Errorf("%w: failed to create task: %v", ErrInternal, err)
		}

		if err := uc.resourceRepo.UpdateHousekeeping(txCtx, req.TenantID, res.ID, domain.HousekeepingCleaning); err != nil {
			uc.logger.Error("CreateTask: failed to update housekeeping status: %v", err)
			return fmt.Errorf("%w: failed to update housekeeping status: %v", ErrInternal, err)
		}
		res.HousekeepingStatus = domain.HousekeepingCleaning

		// Уборка не меняет статус занятого или выведенного из
		// эксплуатации ресурса
		active, err := uc.bookingRepo.ListActiveByResource(txCtx, req.TenantID, res.ID)
		if err != nil {
			uc.logger.Error("CreateTask: failed to list active bookings: %v", err)
			return fmt.Errorf("%w: failed to list active bookings: %v", ErrInternal, err)
		}

		hasCheckedIn, hasConfirmed := bookingFlags(active)
		derived := domain.DeriveStatus(res.OutOfOrder.Active, res.HousekeepingStatus, hasCheckedIn, hasConfirmed)
		if derived != res.Status {
			if err := uc.resourceRepo.UpdateStatus(txCtx, req.TenantID, res.ID, derived); err != nil {
				uc.logger.Error("CreateTask: failed to update resource status: %v", err)
				return fmt.Errorf("%w: failed to update resource status: %v", ErrInternal, err)
			}
			res.Status = derived
		}

		result = &Response{Task: created, ResourceStatus: res.Status}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Existing {
		uc.logger.Info("CreateTask: returning existing task id=%d", result.Task.ID)
	} else {
		uc.logger.Info("CreateTask: created task id=%d, resource status=%s",
			result.Task.ID, result.ResourceStatus)
	}

	return result, nil
}

func bookingFlags(active []*domain.Booking) (hasCheckedIn, hasConfirmed bool) {
	for _, b := range active {
		switch b.Status {
		case domain.BookingCheckedIn:
			hasCheckedIn = true
		case domain.BookingConfirmed:
			hasConfirmed = true
		}
	}
	return hasCheckedIn, hasConfirmed
}
