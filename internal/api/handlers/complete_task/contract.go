package complete_task

import (
	"context"

	completeTask "github.com/opsdesk/OPS-ResourceService/internal/usecase/complete_task"
)

type CompleteTaskUseCase interface {
	Execute(ctx context.Context, req *completeTask.Request) (*completeTask.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
