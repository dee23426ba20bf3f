package out_of_order

import (
	"time"

	markOutOfOrder "github.com/opsdesk/OPS-ResourceService/internal/usecase/mark_out_of_order"
)

// OutOfOrderRequest HTTP request model
type OutOfOrderRequest struct {
	Reason *string `json:"reason,omitempty"`
	ETA    *string `json:"eta,omitempty"` // RFC3339
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *OutOfOrderRequest) ToUseCaseRequest(tenantID string, resourceID int64) (*markOutOfOrder.Request, error) {
	var eta *time.Time
	if r.ETA != nil {
		parsed, err := time.Parse(time.RFC3339, *r.ETA)
		if err != nil {
			return nil, err
		}
		eta = &parsed
	}

	return &markOutOfOrder.Request{
		TenantID:   tenantID,
		ResourceID: resourceID,
		Reason:     r.Reason,
		ETA:        eta,
	}, nil
}
