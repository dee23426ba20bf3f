package check_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/opsdesk/OPS-ResourceService/internal/domain"
	resourceRepo "github.com/opsdesk/OPS-ResourceService/internal/infra/storage/resource"
)

// Request модель запроса проверки доступности
type Request struct {
	TenantID   string
	ResourceID int64
	StartAt    time.Time
	EndAt      time.Time
}

// Response результат проверки доступности
type Response struct {
	Available bool
	Reason    domain.AvailabilityReason // Пустая строка при Available == true
}

// UseCase use case проверки доступности интервала.
// Чистый запрос без побочных эффектов: выполняется вне транзакции
// по снимку журнала и не блокирует пишущие операции.
type UseCase struct {
	resourceRepo ResourceRepository
	bookingRepo  BookingRepository
	minDuration  func(domain.ResourceKind) time.Duration
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	resourceRepo ResourceRepository,
	bookingRepo BookingRepository,
	minDuration func(domain.ResourceKind) time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		resourceRepo: resourceRepo,
		bookingRepo:  bookingRepo,
		minDuration:  minDuration,
		logger:       logger,
	}
}

// Execute выполняет проверку доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.TenantID == "" || req.ResourceID <= 0 {
		return nil, fmt.Errorf("%w: tenantID and resourceID are required", ErrInvalidInput)
	}
	if req.StartAt.IsZero() || req.EndAt.IsZero() {
		return nil, fmt.Errorf("%w: startAt and endAt are required", ErrInvalidInput)
	}

	res, err := uc.resourceRepo.GetByID(ctx, req.TenantID, req.ResourceID)
	if err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			uc.logger.Warn("CheckAvailability: resource id=%d not found", req.ResourceID)
			return nil, ErrResourceNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get resource id=%d: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
	}

	active, err := uc.bookingRepo.ListActiveByResource(ctx, req.TenantID, req.ResourceID)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to list active bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list active bookings: %v", ErrInternal, err)
	}

	check := domain.CheckAvailability(res, active, req.StartAt, req.EndAt, uc.minDuration(res.Kind), nil)

	return &Response{Available: check.Available, Reason: check.Reason}, nil
}
