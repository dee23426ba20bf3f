package back_in_service

import (
	"context"

	"github.com/opsdesk/OPS-ResourceService/internal/domain"
)

// ResourceRepository интерфейс репозитория ресурсов
type ResourceRepository interface {
	GetByIDForUpdate(ctx context.Context, tenantID string, id int64) (*domain.Resource, error)
	ClearOutOfOrder(ctx context.Context, tenantID string, id int64, status domain.ResourceStatus) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListActiveByResource(ctx context.Context, tenantID string, resourceID int64) ([]*domain.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
