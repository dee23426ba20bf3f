package occupancy_summary

import (
	"context"

	"github.com/opsdesk/OPS-ResourceService/internal/service/summary"
)

type SummaryService interface {
	Occupancy(ctx context.Context, tenantID string) (*summary.OccupancySummary, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
