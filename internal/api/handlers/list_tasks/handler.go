package list_tasks

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/opsdesk/OPS-ResourceService/internal/api/handlers"
	"github.com/opsdesk/OPS-ResourceService/internal/api/middleware"
	"github.com/opsdesk/OPS-ResourceService/internal/domain"
	"github.com/opsdesk/OPS-ResourceService/internal/service/housekeeping"
)

const (
	msgInvalidFilter = "некорректные параметры фильтра"
)

type Handler struct {
	service HousekeepingService
	logger  Logger
}

func NewHandler(service HousekeepingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/housekeeping-tasks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.TenantFromContext(r.Context())

	filter := domain.TasksFilter{TenantID: tenantID}

	if param := r.URL.Query().Get("resource_id"); param != "" {
		id, err := strconv.ParseInt(param, 10, 64)
		if err != nil {
			h.logger.Warn("GET /housekeeping-tasks - Invalid resource_id: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		filter.ResourceID = &id
	}

	if param := r.URL.Query().Get("status"); param != "" {
		status := domain.TaskStatus(param)
		filter.Status = &status
	}

	list, err := h.service.ListWithFilter(r.Context(), filter)
	if err != nil {
		if errors.Is(err, housekeeping.ErrInvalidInput) {
			h.logger.Warn("GET /housekeeping-tasks - Invalid input: tenant=%s, error=%v", tenantID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		h.logger.Error("GET /housekeeping-tasks - Failed: tenant=%s, error=%v", tenantID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /housekeeping-tasks - Tasks retrieved: tenant=%s, count=%d", tenantID, len(list))
	handlers.RespondJSON(w, http.StatusOK, handlers.FromTasks(list))
}
