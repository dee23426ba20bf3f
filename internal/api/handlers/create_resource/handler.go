package create_resource

import (
	"errors"
	"net/http"

	"github.com/opsdesk/OPS-ResourceService/internal/api/handlers"
	"github.com/opsdesk/OPS-ResourceService/internal/api/middleware"
	"github.com/opsdesk/OPS-ResourceService/internal/service/resources"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgResourceExists     = "ресурс с таким именем уже существует"
	msgInvalidInput       = "некорректные данные ресурса"
)

type Handler struct {
	service ResourceService
	logger  Logger
}

func NewHandler(service ResourceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/resources
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.TenantFromContext(r.Context())

	var req CreateResourceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /resources - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.Create(r.Context(), req.ToServiceRequest(tenantID))
	if err != nil {
		switch {
		case errors.Is(err, resources.ErrResourceExists):
			h.logger.Warn("POST /resources - Resource already exists: tenant=%s, name=%s", tenantID, req.Name)
			handlers.RespondConflict(w, msgResourceExists, "resource_exists")

		case errors.Is(err, resources.ErrInvalidInput):
			h.logger.Warn("POST /resources - Invalid input: tenant=%s, error=%v", tenantID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /resources - Failed to create resource: tenant=%s, error=%v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /resources - Resource created: tenant=%s, resource_id=%d", tenantID, created.ID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromResource(created))
}
