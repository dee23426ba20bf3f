package resources

import (
	"context"

	"github.com/opsdesk/OPS-ResourceService/internal/domain"
)

// ResourceRepository интерфейс репозитория ресурсов
type ResourceRepository interface {
	Create(ctx context.Context, res *domain.Resource) (*domain.Resource, error)
	GetByID(ctx context.Context, tenantID string, id int64) (*domain.Resource, error)
	List(ctx context.Context, tenantID string, kind *domain.ResourceKind) ([]*domain.Resource, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
