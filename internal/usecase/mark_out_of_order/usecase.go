package mark_out_of_order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/opsdesk/OPS-ResourceService/internal/domain"
	resourceRepo "github.com/opsdesk/OPS-ResourceService/internal/infra/storage/resource"
)

// Request модель запроса на вывод ресурса из эксплуатации
type Request struct {
	TenantID   string
	ResourceID int64
	Reason     *string
	ETA        *time.Time
}

// Response модель ответа с обновленным ресурсом
type Response struct {
	Resource *domain.Resource
}

// UseCase use case вывода ресурса из эксплуатации
type UseCase struct {
	resourceRepo ResourceRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	resourceRepo ResourceRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		resourceRepo: resourceRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выводит ресурс из эксплуатации из любого состояния и
// присваивает тикет обслуживания. Повторный вызов по уже выведенному
// ресурсу возвращает его как есть, существующий тикет сохраняется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("MarkOutOfOrder: tenant=%s, resource=%d", req.TenantID, req.ResourceID)

	if req.TenantID == "" {
		return nil, fmt.Errorf("%w: tenantID is required", ErrInvalidInput)
	}
	if req.ResourceID <= 0 {
		return nil, fmt.Errorf("%w: resourceID must be positive", ErrInvalidInput)
	}
	if req.Reason != nil && len(*req.Reason) > domain.MaxOutOfOrderReasonLength {
		return nil, fmt.Errorf("%w: reason exceeds %d characters",
			ErrInvalidInput, domain.MaxOutOfOrderReasonLength)
	}

	var result *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		res, err := uc.resourceRepo.GetByIDForUpdate(txCtx, req.TenantID, req.ResourceID)
		if err != nil {
			if errors.Is(err, resourceRepo.ErrResourceNotFound) {
				uc.logger.Warn("MarkOutOfOrder: resource id=%d not found", req.ResourceID)
				return ErrResourceNotFound
			}
			uc.logger.Error("MarkOutOfOrder: failed to get resource id=%d: %v", req.ResourceID, err)
			return fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
		}

		if res.OutOfOrder.Active {
			uc.logger.Info("MarkOutOfOrder: resource id=%d already out of order, ticket=%s",
				res.ID, derefTicket(res.OutOfOrder.Ticket))
			result = &Response{Resource: res}
			return nil
		}

		ticket := uuid.New().String()

		if err := uc.resourceRepo.SetOutOfOrder(txCtx, req.TenantID, res.ID, ticket, req.Reason, req.ETA); err != nil {
			uc.logger.Error("MarkOutOfOrder: failed to set out of order: %v", err)
			return fmt.Errorf("%w: failed to set out of order: %v", ErrInternal, err)
		}

		res.Status = domain.StatusOutOfOrder
		res.OutOfOrder = domain.OutOfOrderRecord{
			Active: true,
			Ticket: &ticket,
			Reason: req.Reason,
			ETA:    req.ETA,
		}

		result = &Response{Resource: res}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("MarkOutOfOrder: resource id=%d is out of order, ticket=%s",
		result.Resource.ID, derefTicket(result.Resource.OutOfOrder.Ticket))

	return result, nil
}

func derefTicket(t *string) string {
	if t == nil {
		return ""
	}
	return *t
}
