package cancel_booking

import "github.com/opsdesk/OPS-ResourceService/internal/domain"

// Request модель запроса на отмену бронирования
type Request struct {
	TenantID  string
	BookingID int64
	Reason    *string
}

// Response модель ответа после отмены
type Response struct {
	Booking        *domain.Booking
	ResourceStatus domain.ResourceStatus
}
