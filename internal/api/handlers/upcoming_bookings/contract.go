package upcoming_bookings

import (
	"context"

	"github.com/opsdesk/OPS-ResourceService/internal/domain"
)

type BookingService interface {
	Upcoming(ctx context.Context, tenantID string, hours int) ([]*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
