package create_task

import (
	"errors"
	"net/http"

	"github.com/opsdesk/OPS-ResourceService/internal/api/handlers"
	"github.com/opsdesk/OPS-ResourceService/internal/api/middleware"
	createTask "github.com/opsdesk/OPS-ResourceService/internal/usecase/create_task"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgResourceNotFound   = "ресурс не найден"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	useCase CreateTaskUseCase
	logger  Logger
}

func NewHandler(useCase CreateTaskUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// CreateTaskRequest HTTP request model
type CreateTaskRequest struct {
	ResourceID int64 `json:"resourceId"`
}

// Handle POST /api/v1/housekeeping-tasks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.TenantFromContext(r.Context())

	var req CreateTaskRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /housekeeping-tasks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &createTask.Request{
		TenantID:   tenantID,
		ResourceID: req.ResourceID,
	})
	if err != nil {
		switch {
		case errors.Is(err, createTask.ErrResourceNotFound):
			h.logger.Warn("POST /housekeeping-tasks - Resource not found: resource_id=%d", req.ResourceID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, createTask.ErrInvalidInput):
			h.logger.Warn("POST /housekeeping-tasks - Invalid input: error=%v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /housekeeping-tasks - Failed: resource_id=%d, error=%v", req.ResourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Идемпотентный повтор возвращает существующую задачу с 200
	status := http.StatusCreated
	if result.Existing {
		status = http.StatusOK
	}

	h.logger.Info("POST /housekeeping-tasks - Task returned: task_id=%d, existing=%t",
		result.Task.ID, result.Existing)
	handlers.RespondJSON(w, status, handlers.FromTask(result.Task))
}
