package create_booking

import (
	"fmt"
	"math"

	"github.com/opsdesk/OPS-ResourceService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TenantID == "" {
		return fmt.Errorf("%w: tenantID is required", ErrInvalidInput)
	}

	if req.ResourceID <= 0 {
		return fmt.Errorf("%w: resourceID must be positive", ErrInvalidInput)
	}

	if req.StartAt.IsZero() || req.EndAt.IsZero() {
		return fmt.Errorf("%w: startAt and endAt are required", ErrInvalidInput)
	}

	if req.Purpose != nil && len(*req.Purpose) > domain.MaxPurposeLength {
		return fmt.Errorf("%w: purpose exceeds %d characters", ErrInvalidInput, domain.MaxPurposeLength)
	}

	if req.Amount != nil && *req.Amount < 0 {
		return fmt.Errorf("%w: amount must be non-negative", ErrInvalidInput)
	}

	return nil
}

// computeAmount считает стоимость бронирования из базовой ставки ресурса.
// Часы округляются до ближайшей половины, как в диспетчерском UI.
func computeAmount(res *domain.Resource, b *domain.Booking) float64 {
	hours := b.EndAt.Sub(b.StartAt).Hours()
	rounded := math.Round(hours*2) / 2
	return math.Round(res.BaseRate*rounded*100) / 100
}
