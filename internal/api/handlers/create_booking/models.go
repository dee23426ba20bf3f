package create_booking

import (
	"fmt"
	"time"

	"github.com/opsdesk/OPS-ResourceService/internal/api/handlers"
	"github.com/opsdesk/OPS-ResourceService/internal/domain"
	createBooking "github.com/opsdesk/OPS-ResourceService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model. Вместо явного end можно
// передать пресет длительности из диспетчерского UI.
type CreateBookingRequest struct {
	ResourceID int64    `json:"resourceId"`
	Start      string   `json:"start"` // RFC3339
	End        *string  `json:"end,omitempty"`
	Duration   *string  `json:"duration,omitempty"` // 1h|2h|3h|half_day|full_day|night
	Purpose    *string  `json:"purpose,omitempty"`
	BookedBy   string   `json:"bookedBy,omitempty"`
	Amount     *float64 `json:"amount,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(tenantID string) (*createBooking.Request, error) {
	startAt, err := time.Parse(time.RFC3339, r.Start)
	if err != nil {
		return nil, fmt.Errorf("parse start: %w", err)
	}

	var endAt time.Time
	switch {
	case r.End != nil:
		endAt, err = time.Parse(time.RFC3339, *r.End)
		if err != nil {
			return nil, fmt.Errorf("parse end: %w", err)
		}
	case r.Duration != nil:
		minutes, ok := domain.DurationPresets[*r.Duration]
		if !ok {
			return nil, fmt.Errorf("unknown duration preset %q", *r.Duration)
		}
		endAt = startAt.Add(time.Duration(minutes) * time.Minute)
	default:
		return nil, fmt.Errorf("either end or duration is required")
	}

	return &createBooking.Request{
		TenantID:   tenantID,
		ResourceID: r.ResourceID,
		StartAt:    startAt,
		EndAt:      endAt,
		Purpose:    r.Purpose,
		BookedBy:   r.BookedBy,
		Amount:     r.Amount,
	}, nil
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	Booking        *handlers.BookingView `json:"booking"`
	ResourceStatus string                `json:"resourceStatus"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		Booking:        handlers.FromBooking(resp.Booking),
		ResourceStatus: string(resp.ResourceStatus),
	}
}
