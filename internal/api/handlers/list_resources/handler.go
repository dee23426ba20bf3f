package list_resources

import (
	"errors"
	"net/http"

	"github.com/opsdesk/OPS-ResourceService/internal/api/handlers"
	"github.com/opsdesk/OPS-ResourceService/internal/api/middleware"
	"github.com/opsdesk/OPS-ResourceService/internal/domain"
	"github.com/opsdesk/OPS-ResourceService/internal/service/resources"
)

const (
	msgInvalidKind = "некорректный тип ресурса, ожидается room или vehicle"
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

// Handle GET /api/v1/resources
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.TenantFromContext(r.Context())

	var kind *domain.ResourceKind
	if param := r.URL.Query().Get("kind"); param != "" {
		k := domain.ResourceKind(param)
		kind = &k
	}

	list, err := h.service.List(r.Context(), tenantID, kind)
	if err != nil {
		if errors.Is(err, resources.ErrInvalidInput) {
			h.logger.Warn("GET /resources - Invalid kind: tenant=%s, error=%v", tenantID, err)
			handlers.RespondBadRequest(w, msgInvalidKind)
			return
		}
		h.logger.Error("GET /resources - Failed to list resources: tenant=%s, error=%v", tenantID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /resources - Resources retrieved: tenant=%s, count=%d", tenantID, len(list))
	handlers.RespondJSON(w, http.StatusOK, handlers.FromResources(list))
}
