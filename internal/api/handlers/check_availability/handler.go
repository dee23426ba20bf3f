package check_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/opsdesk/OPS-ResourceService/internal/api/handlers"
	"github.com/opsdesk/OPS-ResourceService/internal/api/middleware"
	checkAvailability "github.com/opsdesk/OPS-ResourceService/internal/usecase/check_availability"
)

const (
	msgInvalidResourceID = "некорректный ID ресурса"
	msgInvalidInterval   = "некорректный интервал, ожидаются start и end в формате RFC3339"
	msgResourceNotFound  = "ресурс не найден"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// Handle GET /api/v1/resources/{resourceId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.TenantFromContext(r.Context())

	resourceID, err := strconv.ParseInt(mux.Vars(r)["resourceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /resources/{id}/availability - Invalid resource ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidResourceID)
		return
	}

	startAt, err := time.Parse(time.RFC3339, r.URL.Query().Get("start"))
	if err != nil {
		h.logger.Warn("GET /resources/{id}/availability - Invalid start: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInterval)
		return
	}
	endAt, err := time.Parse(time.RFC3339, r.URL.Query().Get("end"))
	if err != nil {
		h.logger.Warn("GET /resources/{id}/availability - Invalid end: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInterval)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkAvailability.Request{
		TenantID:   tenantID,
		ResourceID: resourceID,
		StartAt:    startAt,
		EndAt:      endAt,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrResourceNotFound):
			h.logger.Warn("GET /resources/{id}/availability - Resource not found: resource_id=%d", resourceID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /resources/{id}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		default:
			h.logger.Error("GET /resources/{id}/availability - Failed: resource_id=%d, error=%v", resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /resources/{id}/availability - Checked: resource_id=%d, available=%t, reason=%s",
		resourceID, result.Available, result.Reason)
	handlers.RespondJSON(w, http.StatusOK, AvailabilityResponse{
		Available: result.Available,
		Reason:    string(result.Reason),
	})
}
