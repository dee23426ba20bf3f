package list_resources

import (
	"context"

	"github.com/opsdesk/OPS-ResourceService/internal/domain"
)

type ResourceService interface {
	List(ctx context.Context, tenantID string, kind *domain.ResourceKind) ([]*domain.Resource, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
