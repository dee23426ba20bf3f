package update_booking

import (
	"fmt"
	"time"

	"github.com/opsdesk/OPS-ResourceService/internal/domain"
	updateBooking "github.com/opsdesk/OPS-ResourceService/internal/usecase/update_booking"
)

// UpdateBookingRequest HTTP request model. Как и при создании,
// вместо явного end допускается пресет длительности.
type UpdateBookingRequest struct {
	Start    string   `json:"start"` // RFC3339
	End      *string  `json:"end,omitempty"`
	Duration *string  `json:"duration,omitempty"`
	Amount   *float64 `json:"amount,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateBookingRequest) ToUseCaseRequest(tenantID string, bookingID int64) (*updateBooking.Request, error) {
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

	return &updateBooking.Request{
		TenantID:  tenantID,
		BookingID: bookingID,
		StartAt:   startAt,
		EndAt:     endAt,
		Amount:    r.Amount,
	}, nil
}
