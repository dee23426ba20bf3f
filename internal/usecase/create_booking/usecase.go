package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/opsdesk/OPS-ResourceService/internal/domain"
	resourceRepo "github.com/opsdesk/OPS-ResourceService/internal/infra/storage/resource"
)

// UseCase use case создания бронирования
type UseCase struct {
	resourceRepo ResourceRepository
	bookingRepo  BookingRepository
	txManager    TransactionManager
	minDuration  func(domain.ResourceKind) time.Duration
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	resourceRepo ResourceRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	minDuration func(domain.ResourceKind) time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		resourceRepo: resourceRepo,
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		minDuration:  minDuration,
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка доступности и вставка идут в одной SERIALIZABLE транзакции
// под блокировкой строки ресурса (FOR UPDATE), поэтому последовательность
// "проверить-вставить" не гонится с конкурентным созданием по тому же
// ресурсу. Операции над разными ресурсами выполняются параллельно.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: tenant=%s, resource=%d, start=%s, end=%s",
		req.TenantID, req.ResourceID, req.StartAt.Format(time.RFC3339), req.EndAt.Format(time.RFC3339))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	var result *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Блокировка строки ресурса сериализует мутации по нему
		res, err := uc.resourceRepo.GetByIDForUpdate(txCtx, req.TenantID, req.ResourceID)
		if err != nil {
			if errors.Is(err, resourceRepo.ErrResourceNotFound) {
				uc.logger.Warn("CreateBooking: resource id=%d not found", req.ResourceID)
				return ErrResourceNotFound
			}
			uc.logger.Error("CreateBooking: failed to get resource id=%d: %v", req.ResourceID, err)
			return fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
		}

		active, err := uc.bookingRepo.ListActiveByResource(txCtx, req.TenantID, req.ResourceID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list active bookings: %v", err)
			return fmt.Errorf("%w: failed to list active bookings: %v", ErrInternal, err)
		}

		// Повторная проверка доступности внутри транзакции
		check := domain.CheckAvailability(res, active, req.StartAt, req.EndAt, uc.minDuration(res.Kind), nil)
		if !check.Available {
			switch check.Reason {
			case domain.ReasonInvalidInterval:
				uc.logger.Warn("CreateBooking: invalid interval for resource id=%d", req.ResourceID)
				return ErrInvalidInterval
			case domain.ReasonOutOfOrder:
				uc.logger.Warn("CreateBooking: resource id=%d is out of order", req.ResourceID)
				return ErrOutOfOrder
			default:
				uc.logger.Warn("CreateBooking: overlap with booking id=%d on resource id=%d",
					check.Conflict.ID, req.ResourceID)
				return ErrOverlap
			}
		}

		bookedBy := req.BookedBy
		if bookedBy == "" {
			bookedBy = domain.DefaultBookedBy
		}

		b := &domain.Booking{
			TenantID:   req.TenantID,
			ResourceID: req.ResourceID,
			StartAt:    req.StartAt,
			EndAt:      req.EndAt,
			Purpose:    req.Purpose,
			BookedBy:   bookedBy,
			Status:     domain.BookingConfirmed,
		}

		if req.Amount != nil {
			b.Amount = *req.Amount
		} else {
			b.Amount = computeAmount(res, b)
		}

		created, err := uc.bookingRepo.Create(txCtx, b)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		// Подтвержденное бронирование резервирует свободный ресурс
		if domain.CanApply(res.Status, domain.EventBookingConfirmed) {
			if err := domain.ApplyEvent(res, domain.EventBookingConfirmed); err != nil {
				return fmt.Errorf("%w: apply lifecycle event: %v", ErrInternal, err)
			}
			if err := uc.resourceRepo.UpdateStatus(txCtx, req.TenantID, res.ID, res.Status); err != nil {
				uc.logger.Error("CreateBooking: failed to update resource status: %v", err)
				return fmt.Errorf("%w: failed to update resource status: %v", ErrInternal, err)
			}
		}

		result = &Response{Booking: created, ResourceStatus: res.Status}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, resource status=%s",
		result.Booking.ID, result.ResourceStatus)

	return result, nil
}
