package back_in_service

import (
	"context"
	"errors"
	"fmt"

	"github.com/opsdesk/OPS-ResourceService/internal/domain"
	resourceRepo "github.com/opsdesk/OPS-ResourceService/internal/infra/storage/resource"
)

// Request модель запроса на возврат ресурса в эксплуатацию
type Request struct {
	TenantID   string
	ResourceID int64
}

// Response модель ответа с обновленным ресурсом
type Response struct {
	Resource *domain.Resource
}

// UseCase use case возврата ресурса в эксплуатацию
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

// Execute возвращает ресурс в эксплуатацию. Тикет обслуживания
// снимается, статус пересчитывается из статуса уборки и активных
// бронирований: заселенный гость дает occupied, незавершенная уборка —
// cleaning, подтвержденные бронирования — reserved, иначе available.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BackInService: tenant=%s, resource=%d", req.TenantID, req.ResourceID)

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
				uc.logger.Warn("BackInService: resource id=%d not found", req.ResourceID)
				return ErrResourceNotFound
			}
			uc.logger.Error("BackInService: failed to get resource id=%d: %v", req.ResourceID, err)
			return fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
		}

		if !res.OutOfOrder.Active {
			uc.logger.Warn("BackInService: resource id=%d is not out of order (status=%s)",
				res.ID, res.Status)
			return ErrNotOutOfOrder
		}

		active, err := uc.bookingRepo.ListActiveByResource(txCtx, req.TenantID, res.ID)
		if err != nil {
			uc.logger.Error("BackInService: failed to list active bookings: %v", err)
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

		status := domain.DeriveStatus(false, res.HousekeepingStatus, hasCheckedIn, hasConfirmed)

		if err := uc.resourceRepo.ClearOutOfOrder(txCtx, req.TenantID, res.ID, status); err != nil {
			uc.logger.Error("BackInService: failed to clear out of order: %v", err)
			return fmt.Errorf("%w: failed to clear out of order: %v", ErrInternal, err)
		}

		res.Status = status
		res.OutOfOrder = domain.OutOfOrderRecord{}

		result = &Response{Resource: res}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("BackInService: resource id=%d back in service, status=%s",
		result.Resource.ID, result.Resource.Status)

	return result, nil
}
