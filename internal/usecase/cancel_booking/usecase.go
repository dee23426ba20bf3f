package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/opsdesk/OPS-ResourceService/internal/domain"
	bookingRepo "github.com/opsdesk/OPS-ResourceService/internal/infra/storage/booking"
	resourceRepo "github.com/opsdesk/OPS-ResourceService/internal/infra/storage/resource"
)

// UseCase use case отмены бронирования
type UseCase struct {
	resourceRepo ResourceRepository
	bookingRepo  BookingRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	resourceRepo ResourceRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		resourceRepo: resourceRepo,
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute отменяет бронирование и пересчитывает статус ресурса:
// если после отмены у свободного от гостей ресурса не осталось
// подтвержденных бронирований, reserved возвращается в available.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelBooking: tenant=%s, booking=%d", req.TenantID, req.BookingID)

	if req.Reason != nil && len(*req.Reason) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: cancellation reason exceeds %d characters",
			ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	var result *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		b, err := uc.bookingRepo.GetByID(txCtx, req.TenantID, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("CancelBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("CancelBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		res, err := uc.resourceRepo.GetByIDForUpdate(txCtx, req.TenantID, b.ResourceID)
		if err != nil {
			if errors.Is(err, resourceRepo.ErrResourceNotFound) {
				return ErrResourceNotFound
			}
			uc.logger.Error("CancelBooking: failed to get resource id=%d: %v", b.ResourceID, err)
			return fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
		}

		if !b.CanBeCancelled() {
			uc.logger.Warn("CancelBooking: booking id=%d has status=%s, cannot cancel", b.ID, b.Status)
			return ErrCannotCancel
		}

		if err := uc.bookingRepo.Cancel(txCtx, req.TenantID, b.ID, req.Reason); err != nil {
			uc.logger.Error("CancelBooking: failed to cancel booking id=%d: %v", b.ID, err)
			return fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
		}
		b.Status = domain.BookingCancelled
		b.CancellationReason = req.Reason

		// Пересчитываем статус: отмена могла освободить ресурс
		if res.Status == domain.StatusReserved && !res.OutOfOrder.Active {
			remaining, err := uc.bookingRepo.ListActiveByResource(txCtx, req.TenantID, res.ID)
			if err != nil {
				uc.logger.Error("CancelBooking: failed to list remaining bookings: %v", err)
				return fmt.Errorf("%w: failed to list remaining bookings: %v", ErrInternal, err)
			}

			derived := deriveStatus(res, remaining)
			if derived != res.Status {
				if err := uc.resourceRepo.UpdateStatus(txCtx, req.TenantID, res.ID, derived); err != nil {
					uc.logger.Error("CancelBooking: failed to update resource status: %v", err)
					return fmt.Errorf("%w: failed to update resource status: %v", ErrInternal, err)
				}
				res.Status = derived
			}
		}

		result = &Response{Booking: b, ResourceStatus: res.Status}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CancelBooking: booking id=%d cancelled, resource status=%s",
		result.Booking.ID, result.ResourceStatus)

	return result, nil
}

func deriveStatus(res *domain.Resource, active []*domain.Booking) domain.ResourceStatus {
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
	return domain.DeriveStatus(res.OutOfOrder.Active, res.HousekeepingStatus, hasCheckedIn, hasConfirmed)
}
