package housekeeping

import (
	"context"

	"github.com/opsdesk/OPS-ResourceService/internal/domain"
)

// TaskRepository интерфейс репозитория задач уборки
type TaskRepository interface {
	GetByID(ctx context.Context, tenantID string, id int64) (*domain.HousekeepingTask, error)
	ListWithFilter(ctx context.Context, filter domain.TasksFilter) ([]*domain.HousekeepingTask, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
