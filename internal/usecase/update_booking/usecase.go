package update_booking

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/opsdesk/OPS-ResourceService/internal/domain"
	bookingRepo "github.com/opsdesk/OPS-ResourceService/internal/infra/storage/booking"
	resourceRepo "github.com/opsdesk/OPS-ResourceService/internal/infra/storage/resource"
)

// UseCase use case переноса бронирования на новый интервал
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

// Execute переносит подтвержденное бронирование на новый интервал.
// Новый интервал проверяется на пересечения, само переносимое
// бронирование из проверки исключается. Стоимость пересчитывается
// из базовой ставки ресурса, если не задана явно.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: tenant=%s, booking=%d, start=%s, end=%s",
		req.TenantID, req.BookingID, req.StartAt.Format(time.RFC3339), req.EndAt.Format(time.RFC3339))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	var result *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		b, err := uc.bookingRepo.GetByID(txCtx, req.TenantID, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("UpdateBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		res, err := uc.resourceRepo.GetByIDForUpdate(txCtx, req.TenantID, b.ResourceID)
		if err != nil {
			if errors.Is(err, resourceRepo.ErrResourceNotFound) {
				return ErrResourceNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get resource id=%d: %v", b.ResourceID, err)
			return fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
		}

		if !b.CanBeUpdated() {
			uc.logger.Warn("UpdateBooking: booking id=%d has status=%s, cannot update", b.ID, b.Status)
			return ErrCannotUpdate
		}

		active, err := uc.bookingRepo.ListActiveByResource(txCtx, req.TenantID, res.ID)
		if err != nil {
			uc.logger.Error("UpdateBooking: failed to list active bookings: %v", err)
			return fmt.Errorf("%w: failed to list active bookings: %v", ErrInternal, err)
		}

		check := domain.CheckAvailability(res, active, req.StartAt, req.EndAt, uc.minDuration(res.Kind), &b.ID)
		if !check.Available {
			switch check.Reason {
			case domain.ReasonInvalidInterval:
				uc.logger.Warn("UpdateBooking: invalid interval for booking id=%d", b.ID)
				return ErrInvalidInterval
			case domain.ReasonOutOfOrder:
				uc.logger.Warn("UpdateBooking: resource id=%d is out of order", res.ID)
				return ErrOutOfOrder
			default:
				uc.logger.Warn("UpdateBooking: overlap with booking id=%d on resource id=%d",
					check.Conflict.ID, res.ID)
				return ErrOverlap
			}
		}

		amount := b.Amount
		if req.Amount != nil {
			amount = *req.Amount
		} else {
			hours := req.EndAt.Sub(req.StartAt).Hours()
			rounded := math.Round(hours*2) / 2
			amount = math.Round(res.BaseRate*rounded*100) / 100
		}

		if err := uc.bookingRepo.UpdateInterval(txCtx, req.TenantID, b.ID, req.StartAt, req.EndAt, amount); err != nil {
			uc.logger.Error("UpdateBooking: failed to update interval: %v", err)
			return fmt.Errorf("%w: failed to update interval: %v", ErrInternal, err)
		}

		b.StartAt = req.StartAt
		b.EndAt = req.EndAt
		b.Amount = amount

		result = &Response{Booking: b}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateBooking: booking id=%d moved to [%s, %s)",
		result.Booking.ID,
		result.Booking.StartAt.Format(time.RFC3339),
		result.Booking.EndAt.Format(time.RFC3339))

	return result, nil
}

func validateRequest(req *Request) error {
	if req.TenantID == "" {
		return fmt.Errorf("%w: tenantID is required", ErrInvalidInput)
	}

	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.StartAt.IsZero() || req.EndAt.IsZero() {
		return fmt.Errorf("%w: startAt and endAt are required", ErrInvalidInput)
	}

	if req.Amount != nil && *req.Amount < 0 {
		return fmt.Errorf("%w: amount must be non-negative", ErrInvalidInput)
	}

	return nil
}
