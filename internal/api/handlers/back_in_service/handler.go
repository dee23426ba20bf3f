package back_in_service

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/opsdesk/OPS-ResourceService/internal/api/handlers"
	"github.com/opsdesk/OPS-ResourceService/internal/api/middleware"
	backInService "github.com/opsdesk/OPS-ResourceService/internal/usecase/back_in_service"
)

const (
	msgInvalidResourceID = "некорректный ID ресурса"
	msgResourceNotFound  = "ресурс не найден"
	msgNotOutOfOrder     = "ресурс не выведен из эксплуатации"
)

type Handler struct {
	useCase BackInServiceUseCase
	logger  Logger
}

func NewHandler(useCase BackInServiceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/resources/{resourceId}/back-in-service
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.TenantFromContext(r.Context())

	resourceID, err := strconv.ParseInt(mux.Vars(r)["resourceId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /resources/{id}/back-in-service - Invalid resource ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidResourceID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &backInService.Request{
		TenantID:   tenantID,
		ResourceID: resourceID,
	})
	if err != nil {
		switch {
		case errors.Is(err, backInService.ErrResourceNotFound):
			h.logger.Warn("POST /resources/{id}/back-in-service - Resource not found: resource_id=%d", resourceID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, backInService.ErrNotOutOfOrder):
			h.logger.Warn("POST /resources/{id}/back-in-service - Not out of order: resource_id=%d", resourceID)
			handlers.RespondConflict(w, msgNotOutOfOrder, "not_out_of_order")

		default:
			h.logger.Error("POST /resources/{id}/back-in-service - Failed: resource_id=%d, error=%v", resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /resources/{id}/back-in-service - Resource restored: resource_id=%d, status=%s",
		resourceID, result.Resource.Status)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromResource(result.Resource))
}
