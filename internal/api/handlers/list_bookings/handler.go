package list_bookings

import (
	"errors"
	"net/http"

	"github.com/opsdesk/OPS-ResourceService/internal/api/handlers"
	"github.com/opsdesk/OPS-ResourceService/internal/api/middleware"
	"github.com/opsdesk/OPS-ResourceService/internal/service/bookings"
)

const (
	msgInvalidFilter = "некорректные параметры фильтра"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.TenantFromContext(r.Context())

	filter, err := parseFilter(tenantID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /bookings - Invalid filter: tenant=%s, error=%v", tenantID, err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	list, err := h.service.ListWithFilter(r.Context(), filter)
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidInput) {
			h.logger.Warn("GET /bookings - Invalid input: tenant=%s, error=%v", tenantID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		h.logger.Error("GET /bookings - Failed to list bookings: tenant=%s, error=%v", tenantID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved: tenant=%s, count=%d", tenantID, len(list))
	handlers.RespondJSON(w, http.StatusOK, handlers.FromBookings(list))
}
