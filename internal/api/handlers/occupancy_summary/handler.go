package occupancy_summary

import (
	"net/http"

	"github.com/opsdesk/OPS-ResourceService/internal/api/handlers"
	"github.com/opsdesk/OPS-ResourceService/internal/api/middleware"
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

// KindCountsView счетчики по одному типу ресурсов
type KindCountsView struct {
	Total      int `json:"total"`
	Occupied   int `json:"occupied"`
	OutOfOrder int `json:"outOfOrder"`
	Vacant     int `json:"vacant"`
}

// OccupancyResponse HTTP response model
type OccupancyResponse struct {
	Total      int                       `json:"total"`
	Occupied   int                       `json:"occupied"`
	OutOfOrder int                       `json:"outOfOrder"`
	Vacant     int                       `json:"vacant"`
	ByKind     map[string]KindCountsView `json:"byKind"`
}

// Handle GET /api/v1/summary/occupancy
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.TenantFromContext(r.Context())

	result, err := h.service.Occupancy(r.Context(), tenantID)
	if err != nil {
		h.logger.Error("GET /summary/occupancy - Failed: tenant=%s, error=%v", tenantID, err)
		handlers.RespondInternalError(w)
		return
	}

	response := OccupancyResponse{
		Total:      result.Total,
		Occupied:   result.Occupied,
		OutOfOrder: result.OutOfOrder,
		Vacant:     result.Vacant,
		ByKind:     make(map[string]KindCountsView, len(result.ByKind)),
	}
	for kind, counts := range result.ByKind {
		response.ByKind[string(kind)] = KindCountsView(counts)
	}

	h.logger.Info("GET /summary/occupancy - Summary built: tenant=%s, total=%d", tenantID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, response)
}
