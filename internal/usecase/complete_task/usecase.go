package complete_task

import (
	"context"
	"errors"
	"fmt"

	"github.com/opsdesk/OPS-ResourceService/internal/domain"
	resourceRepo "github.com/opsdesk/OPS-ResourceService/internal/infra/storage/resource"
	taskRepo "github.com/opsdesk/OPS-ResourceService/internal/infra/storage/task"
)

// Request модель запроса на завершение задачи уборки
type Request struct {
	TenantID string
	TaskID   int64
}

// Response модель ответа. AlreadyDone = true при повторном завершении
type Response struct {
	Task        *domain.HousekeepingTask
	Resource    *domain.Resource
	AlreadyDone bool
}

// UseCase use case завершения задачи уборки
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

// Execute завершает задачу уборки. Повторное завершение уже
// выполненной задачи возвращает текущее состояние без ошибки.
// При первом завершении статус уборки переводится в clean, а статус
// жизненного цикла пересчитывается: cleaning возвращается в available
// (или reserved, если остались подтвержденные бронирования). Для
// выведенного из эксплуатации ресурса статус остается out_of_order,
// но статус уборки все равно обновляется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CompleteTask: tenant=%s, task=%d", req.TenantID, req.TaskID)

	if req.TenantID == "" {
		return nil, fmt.Errorf("%w: tenantID is required", ErrInvalidInput)
	}
	if req.TaskID <= 0 {
		return nil, fmt.Errorf("%w: taskID must be positive", ErrInvalidInput)
	}

	var result *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		task, err := uc.taskRepo.GetByID(txCtx, req.TenantID, req.TaskID)
		if err != nil {
			if errors.Is(err, taskRepo.ErrTaskNotFound) {
				uc.logger.Warn("CompleteTask: task id=%d not found", req.TaskID)
				return ErrTaskNotFound
			}
			uc.logger.Error("CompleteTask: failed to get task id=%d: %v", req.TaskID, err)
			return fmt.Errorf("%w: failed to get task: %v", ErrInternal, err)
		}

		res, err := uc.resourceRepo.GetByIDForUpdate(txCtx, req.TenantID, task.ResourceID)
		if err != nil {
			if errors.Is(err, resourceRepo.ErrResourceNotFound) {
				return ErrResourceNotFound
			}
			uc.logger.Error("CompleteTask: failed to get resource id=%d: %v", task.ResourceID, err)
			return fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
		}

		// Идемпотентный повтор: задача уже завершена
		if task.IsDone() {
			uc.logger.Info("CompleteTask: task id=%d already done, returning current state", task.ID)
			result = &Response{Task: task, Resource: res, AlreadyDone: true}
			return nil
		}

		if err := uc.taskRepo.Complete(txCtx, req.TenantID, task.ID); err != nil {
			uc.logger.Error("CompleteTask: failed to complete task id=%d: %v", task.ID, err)
			return fmt.Errorf("%w: failed to complete task: %v", ErrInternal, err)
		}
		task.Status = domain.TaskDone

		if err := uc.resourceRepo.UpdateHousekeeping(txCtx, req.TenantID, res.ID, domain.HousekeepingClean); err != nil {
			uc.logger.Error("CompleteTask: failed to update housekeeping status: %v", err)
			return fmt.Errorf("%w: failed to update housekeeping status: %v", ErrInternal, err)
		}
		res.HousekeepingStatus = domain.HousekeepingClean

		active, err := uc.bookingRepo.ListActiveByResource(txCtx, req.TenantID, res.ID)
		if err != nil {
			uc.logger.Error("CompleteTask: failed to list active bookings: %v", err)
			return fmt.Errorf("%w: failed to list active bookings: %v", ErrInternal, err)
		}

		hasCheckedIn := false
		hasConfirmed := false
		for _, b := range active {
			switch b.Status {
			case domain.BookingCheckedIn:
				hasCheckedIn = true
			case domain.BookingConfirmed:
				hasConfirmed = true
			}
		}

		derived := domain.DeriveStatus(res.OutOfOrder.Active, res.HousekeepingStatus, hasCheckedIn, hasConfirmed)
		if derived != res.Status {
			if err := uc.resourceRepo.UpdateStatus(txCtx, req.TenantID, res.ID, derived); err != nil {
				uc.logger.Error("CompleteTask: failed to update resource status: %v", err)
				return fmt.Errorf("%w: failed to update resource status: %v", ErrInternal, err)
			}
			res.Status = derived
		}

		result = &Response{Task: task, Resource: res}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.AlreadyDone {
		uc.logger.Info("CompleteTask: task id=%d was already done", result.Task.ID)
	} else {
		uc.logger.Info("CompleteTask: task id=%d done, resource id=%d status=%s, housekeeping=%s",
			result.Task.ID, result.Resource.ID, result.Resource.Status, result.Resource.HousekeepingStatus)
	}

	return result, nil
}
