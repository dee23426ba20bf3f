package upcoming_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/opsdesk/OPS-ResourceService/internal/api/handlers"
	"github.com/opsdesk/OPS-ResourceService/internal/api/middleware"
	"github.com/opsdesk/OPS-ResourceService/internal/service/bookings"
)

const (
	msgInvalidHours = "некорректное значение hours"
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

// Handle GET /api/v1/bookings/upcoming
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.TenantFromContext(r.Context())

	hours := 0
	if param := r.URL.Query().Get("hours"); param != "" {
		parsed, err := strconv.Atoi(param)
		if err != nil || parsed < 0 {
			h.logger.Warn("GET /bookings/upcoming - Invalid hours: tenant=%s, hours=%s", tenantID, param)
			handlers.RespondBadRequest(w, msgInvalidHours)
			return
		}
		hours = parsed
	}

	list, err := h.service.Upcoming(r.Context(), tenantID, hours)
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidInput) {
			h.logger.Warn("GET /bookings/upcoming - Invalid input: tenant=%s, error=%v", tenantID, err)
			handlers.RespondBadRequest(w, msgInvalidHours)
			return
		}
		h.logger.Error("GET /bookings/upcoming - Failed: tenant=%s, error=%v", tenantID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings/upcoming - Bookings retrieved: tenant=%s, count=%d", tenantID, len(list))
	handlers.RespondJSON(w, http.StatusOK, handlers.FromBookings(list))
}
