package list_tasks

import (
	"context"

	"github.com/opsdesk/OPS-ResourceService/internal/domain"
)

type HousekeepingService interface {
	ListWithFilter(ctx context.Context, filter domain.TasksFilter) ([]*domain.HousekeepingTask, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
