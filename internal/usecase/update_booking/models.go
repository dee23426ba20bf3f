package update_booking

import (
	"time"

	"github.com/opsdesk/OPS-ResourceService/internal/domain"
)

// Request модель запроса на перенос бронирования
type Request struct {
	TenantID  string
	BookingID int64
	StartAt   time.Time
	EndAt     time.Time
	Amount    *float64
}

// Response модель ответа после переноса
type Response struct {
	Booking *domain.Booking
}
