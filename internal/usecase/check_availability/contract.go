package check_availability

import (
	"context"

	"github.com/opsdesk/OPS-ResourceService/internal/domain"
)

// ResourceRepository интерфейс репозитория ресурсов
type ResourceRepository interface {
	GetByID(ctx context.Context, tenantID string, id int64) (*domain.Resource, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListActiveByResource(ctx context.Context, tenantID string, resourceID int64) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
