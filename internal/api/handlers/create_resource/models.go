package create_resource

import (
	"github.com/opsdesk/OPS-ResourceService/internal/domain"
	"github.com/opsdesk/OPS-ResourceService/internal/service/resources"
)

// CreateResourceRequest HTTP request model
type CreateResourceRequest struct {
	Kind     string  `json:"kind"`
	Name     string  `json:"name"`
	BaseRate float64 `json:"baseRate"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateResourceRequest) ToServiceRequest(tenantID string) *resources.CreateRequest {
	return &resources.CreateRequest{
		TenantID: tenantID,
		Kind:     domain.ResourceKind(r.Kind),
		Name:     r.Name,
		BaseRate: r.BaseRate,
	}
}
