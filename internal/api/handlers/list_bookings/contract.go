package list_bookings

import (
	"context"

	"github.com/opsdesk/OPS-ResourceService/internal/domain"
)

type BookingService interface {
	ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
