package check_out

import (
	"context"
	"errors"
	"fmt"

	"github.com/opsdesk/OPS-ResourceService/internal/domain"
	bookingRepo "github.com/opsdesk/OPS-ResourceService/internal/infra/storage/booking"
	resourceRepo "github.com/opsdesk/OPS-ResourceService/internal/infra/storage/resource"
	taskRepo "github.com/opsdesk/OPS-ResourceService/internal/infra/storage/task"
)

// Request модель запроса на выезд
type Request struct {
	TenantID  string
	BookingID int64
}

// Response модель ответа: обновленные бронирование, ресурс
// и задача уборки, созданная (или уже существовавшая) при выезде
type Response struct {
	Booking  *domain.Booking
	Resource *domain.Resource
	Task     *domain.HousekeepingTask
}

// UseCase use case выезда по бронированию
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

// Execute выполняет выезд: бронирование -> checked_out, ресурс ->
// cleaning, создается задача уборки, если незавершенной еще нет.
// Повторный выезд по уже завершенному бронированию возвращает текущее
// состояние без ошибки.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckOut: tenant=%s, booking=%d", req.TenantID, req.BookingID)

	var result *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		b, err := uc.bookingRepo.GetByID(txCtx, req.TenantID, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("CheckOut: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("CheckOut: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		res, err := uc.resourceRepo.GetByIDForUpdate(txCtx, req.TenantID, b.ResourceID)
		if err != nil {
			if errors.Is(err, resourceRepo.ErrResourceNotFound) {
				return ErrResourceNotFound
			}
			uc.logger.Error("CheckOut: failed to get resource id=%d: %v", b.ResourceID, err)
			return fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
		}

		// Идемпотентный повтор: выезд уже оформлен
		if b.Status == domain.BookingCheckedOut {
			uc.logger.Info("CheckOut: booking id=%d already checked out, returning current state", b.ID)
			task, err := uc.taskRepo.GetInProgressByResource(txCtx, req.TenantID, res.ID)
			if err != nil && !errors.Is(err, taskRepo.ErrTaskNotFound) {
				return fmt.Errorf("%w: failed to get task: %v", ErrInternal, err)
			}
			result = &Response{Booking: b, Resource: res, Task: task}
			return nil
		}

		if b.Status != domain.BookingCheckedIn {
			uc.logger.Warn("CheckOut: booking id=%d has status=%s, cannot check out", b.ID, b.Status)
			return ErrNotCheckedIn
		}

		if err := domain.ApplyEvent(res, domain.EventCheckOut); err != nil {
			uc.logger.Warn("CheckOut: illegal transition for resource id=%d (status=%s): %v",
				res.ID, res.Status, err)
			return fmt.Errorf("%w: %v", ErrIllegalTransition, err)
		}

		if err := uc.bookingRepo.UpdateStatus(txCtx, req.TenantID, b.ID, domain.BookingCheckedOut); err != nil {
			uc.logger.Error("CheckOut: failed to update booking status: %v", err)
			return fmt.Errorf("%w: failed to update booking status: %v", ErrInternal, err)
		}
		b.Status = domain.BookingCheckedOut

		if err := uc.resourceRepo.UpdateStatus(txCtx, req.TenantID, res.ID, res.Status); err != nil {
			uc.logger.Error("CheckOut: failed to update resource status: %v", err)
			return fmt.Errorf("%w: failed to update resource status: %v", ErrInternal, err)
		}

		if err := uc.resourceRepo.UpdateHousekeeping(txCtx, req.TenantID, res.ID, domain.HousekeepingCleaning); err != nil {
			uc.logger.Error("CheckOut: failed to update housekeeping status: %v", err)
			return fmt.Errorf("%w: failed to update housekeeping status: %v", ErrInternal, err)
		}
		res.HousekeepingStatus = domain.HousekeepingCleaning

		task, err := uc.ensureTask(txCtx, req.TenantID, res.ID)
		if err != nil {
			return err
		}

		result = &Response{Booking: b, Resource: res, Task: task}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// При идемпотентном повторе уборка могла уже завершиться, задачи нет
	if result.Task != nil {
		uc.logger.Info("CheckOut: booking id=%d checked out, resource id=%d status=%s, task id=%d",
			result.Booking.ID, result.Resource.ID, result.Resource.Status, result.Task.ID)
	} else {
		uc.logger.Info("CheckOut: booking id=%d checked out, resource id=%d status=%s, no task in progress",
			result.Booking.ID, result.Resource.ID, result.Resource.Status)
	}

	return result, nil
}

// ensureTask возвращает незавершенную задачу уборки ресурса,
// создавая её при отсутствии
func (uc *UseCase) ensureTask(ctx context.Context, tenantID string, resourceID int64) (*domain.HousekeepingTask, error) {
	existing, err := uc.taskRepo.GetInProgressByResource(ctx, tenantID, resourceID)
	if err == nil {
		uc.logger.Info("CheckOut: resource id=%d already has task id=%d in progress", resourceID, existing.ID)
		return existing, nil
	}
	if !errors.Is(err, taskRepo.ErrTaskNotFound) {
		uc.logger.Error("CheckOut: failed to get in-progress task: %v", err)
		return nil, fmt.Errorf("%w: failed to get in-progress task: %v", ErrInternal, err)
	}

	created, err := uc.taskRepo.Create(ctx, &domain.HousekeepingTask{
		TenantID:   tenantID,
		ResourceID: resourceID,
	})
	if err != nil {
		uc.logger.Error("CheckOut: failed to create task: %v", err)
		return nil, fmt.Errorf("%w: failed to create task: %v", ErrInternal, err)
	}

	return created, nil
}
