package revenue_summary

import (
	"context"

	"github.com/opsdesk/OPS-ResourceService/internal/service/summary"
)

type SummaryService interface {
	Revenue(ctx context.Context, tenantID, period string) (*summary.RevenueSummary, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
