package out_of_order

import (
	"context"

	markOutOfOrder "github.com/opsdesk/OPS-ResourceService/internal/usecase/mark_out_of_order"
)

type MarkOutOfOrderUseCase interface {
	Execute(ctx context.Context, req *markOutOfOrder.Request) (*markOutOfOrder.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
