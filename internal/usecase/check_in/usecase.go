package check_in

import (
	"context"
	"errors"
	"fmt"

	"github.com/opsdesk/OPS-ResourceService/internal/domain"
	bookingRepo "github.com/opsdesk/OPS-ResourceService/internal/infra/storage/booking"
	resourceRepo "github.com/opsdesk/OPS-ResourceService/internal/infra/storage/resource"
)

// Request модель запроса на заселение
type Request struct {
	TenantID  string
	BookingID int64
}

// Response модель ответа: обновленные бронирование и ресурс
type Response struct {
	Booking  *domain.Booking
	Resource *domain.Resource
}

// UseCase use case заселения по бронированию
type UseCase struct {
	resourceRepo ResourceRepository
	bookingRepo  BookingRepository
	txManager    TransactionManager
	timeProvider TimeProvider
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
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет заселение.
// Заселение законно, только если текущий момент внутри [start, end),
// бронирование confirmed и ресурс не выведен из эксплуатации.
// Повторное заселение уже заселенного бронирования возвращает текущее
// состояние без ошибки - ретраи клиента безопасны.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckIn: tenant=%s, booking=%d", req.TenantID, req.BookingID)

	var result *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		b, err := uc.bookingRepo.GetByID(txCtx, req.TenantID, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("CheckIn: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("CheckIn: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		res, err := uc.resourceRepo.GetByIDForUpdate(txCtx, req.TenantID, b.ResourceID)
		if err != nil {
			if errors.Is(err, resourceRepo.ErrResourceNotFound) {
				return ErrResourceNotFound
			}
			uc.logger.Error("CheckIn: failed to get resource id=%d: %v", b.ResourceID, err)
			return fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
		}

		// Идемпотентный повтор: бронирование уже заселено
		if b.Status == domain.BookingCheckedIn {
			uc.logger.Info("CheckIn: booking id=%d already checked in, returning current state", b.ID)
			result = &Response{Booking: b, Resource: res}
			return nil
		}

		if b.Status != domain.BookingConfirmed {
			uc.logger.Warn("CheckIn: booking id=%d has status=%s, cannot check in", b.ID, b.Status)
			return ErrNotConfirmed
		}

		now := uc.timeProvider.Now()
		if !b.Covers(now) {
			uc.logger.Warn("CheckIn: now=%s outside booking id=%d interval", now, b.ID)
			return ErrOutsideWindow
		}

		if res.OutOfOrder.Active {
			uc.logger.Warn("CheckIn: resource id=%d is out of order", res.ID)
			return ErrResourceOutOfOrder
		}

		if err := domain.ApplyEvent(res, domain.EventCheckIn); err != nil {
			uc.logger.Warn("CheckIn: illegal transition for resource id=%d (status=%s): %v",
				res.ID, res.Status, err)
			return fmt.Errorf("%w: %v", ErrIllegalTransition, err)
		}

		if err := uc.bookingRepo.UpdateStatus(txCtx, req.TenantID, b.ID, domain.BookingCheckedIn); err != nil {
			uc.logger.Error("CheckIn: failed to update booking status: %v", err)
			return fmt.Errorf("%w: failed to update booking status: %v", ErrInternal, err)
		}
		b.Status = domain.BookingCheckedIn

		if err := uc.resourceRepo.UpdateStatus(txCtx, req.TenantID, res.ID, res.Status); err != nil {
			uc.logger.Error("CheckIn: failed to update resource status: %v", err)
			return fmt.Errorf("%w: failed to update resource status: %v", ErrInternal, err)
		}

		result = &Response{Booking: b, Resource: res}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CheckIn: booking id=%d checked in, resource id=%d status=%s",
		result.Booking.ID, result.Resource.ID, result.Resource.Status)

	return result, nil
}
