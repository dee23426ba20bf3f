package summary

import (
	"context"
	"time"

	"github.com/opsdesk/OPS-ResourceService/internal/domain"
)

// ResourceRepository интерфейс репозитория ресурсов
type ResourceRepository interface {
	List(ctx context.Context, tenantID string, kind *domain.ResourceKind) ([]*domain.Resource, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	SumAmountForPeriod(ctx context.Context, tenantID string, from, to time.Time) (float64, int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
