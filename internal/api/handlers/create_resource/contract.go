package create_resource

import (
	"context"

	"github.com/opsdesk/OPS-ResourceService/internal/domain"
	"github.com/opsdesk/OPS-ResourceService/internal/service/resources"
)

type ResourceService interface {
	Create(ctx context.Context, req *resources.CreateRequest) (*domain.Resource, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
