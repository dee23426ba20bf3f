package check_out

import (
	"context"

	"github.com/opsdesk/OPS-ResourceService/internal/domain"
)

// ResourceRepository интерфейс репозитория ресурсов
type ResourceRepository interface {
	GetByIDForUpdate(ctx context.Context, tenantID string, id int64) (*domain.Resource, error)
	UpdateStatus(ctx context.Context, tenantID string, id int64, status domain.ResourceStatus) error
	UpdateHousekeeping(ctx context.Context, tenantID string, id int64, hk domain.HousekeepingStatus) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, tenantID string, id int64) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, tenantID string, id int64, status domain.BookingStatus) error
}

// TaskRepository интерфейс репозитория задач уборки
type TaskRepository interface {
	Create(ctx context.Context, t *domain.HousekeepingTask) (*domain.HousekeepingTask, error)
	GetInProgressByResource(ctx context.Context, tenantID string, resourceID int64) (*domain.HousekeepingTask, error)
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
