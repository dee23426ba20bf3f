package cancel_booking

import (
	"github.com/opsdesk/OPS-ResourceService/internal/api/handlers"
	cancelBooking "github.com/opsdesk/OPS-ResourceService/internal/usecase/cancel_booking"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	Reason *string `json:"reason,omitempty"`
}

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	Booking        *handlers.BookingView `json:"booking"`
	ResourceStatus string                `json:"resourceStatus"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelBooking.Response) *CancelBookingResponse {
	return &CancelBookingResponse{
		Booking:        handlers.FromBooking(resp.Booking),
		ResourceStatus: string(resp.ResourceStatus),
	}
}
