package back_in_service

import (
	"context"

	backInService "github.com/opsdesk/OPS-ResourceService/internal/usecase/back_in_service"
)

type BackInServiceUseCase interface {
	Execute(ctx context.Context, req *backInService.Request) (*backInService.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
