package revenue_summary

import (
	"errors"
	"net/http"
	"time"

	"github.com/opsdesk/OPS-ResourceService/internal/api/handlers"
	"github.com/opsdesk/OPS-ResourceService/internal/api/middleware"
	"github.com/opsdesk/OPS-ResourceService/internal/service/summary"
)

const (
	msgUnknownPeriod = "некорректный период, ожидается day, week, month или year"
)

type Handler struct {
	service SummaryService
	logger  Logger
}

func NewHandler(service SummaryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// RevenueResponse HTTP response model
type RevenueResponse struct {
	Period   string  `json:"period"`
	From     string  `json:"from"`
	To       string  `json:"to"`
	Total    float64 `json:"total"`
	Bookings int     `json:"bookings"`
}

// Handle GET /api/v1/summary/revenue
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.TenantFromContext(r.Context())

	period := r.URL.Query().Get("period")
	if period == "" {
		period = "day"
	}

	result, err := h.service.Revenue(r.Context(), tenantID, period)
	if err != nil {
		if errors.Is(err, summary.ErrUnknownPeriod) {
			h.logger.Warn("GET /summary/revenue - Unknown period: tenant=%s, period=%s", tenantID, period)
			handlers.RespondBadRequest(w, msgUnknownPeriod)
			return
		}
		h.logger.Error("GET /summary/revenue - Failed: tenant=%s, error=%v", tenantID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /summary/revenue - Summary built: tenant=%s, period=%s, total=%.2f",
		tenantID, period, result.Total)
	handlers.RespondJSON(w, http.StatusOK, RevenueResponse{
		Period:   result.Period,
		From:     result.From.Format(time.RFC3339),
		To:       result.To.Format(time.RFC3339),
		Total:    result.Total,
		Bookings: result.Bookings,
	})
}
