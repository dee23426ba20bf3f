package complete_task

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/opsdesk/OPS-ResourceService/internal/api/handlers"
	"github.com/opsdesk/OPS-ResourceService/internal/api/middleware"
	completeTask "github.com/opsdesk/OPS-ResourceService/internal/usecase/complete_task"
)

const (
	msgInvalidTaskID = "некорректный ID задачи"
	msgTaskNotFound  = "задача уборки не найдена"
)

type Handler struct {
	useCase CompleteTaskUseCase
	logger  Logger
}

func NewHandler(useCase CompleteTaskUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// CompleteTaskResponse HTTP response model
type CompleteTaskResponse struct {
	Task     *handlers.TaskView     `json:"task"`
	Resource *handlers.ResourceView `json:"resource"`
}

// Handle POST /api/v1/housekeeping-tasks/{taskId}/complete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.TenantFromContext(r.Context())

	taskID, err := strconv.ParseInt(mux.Vars(r)["taskId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /housekeeping-tasks/{id}/complete - Invalid task ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTaskID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &completeTask.Request{
		TenantID: tenantID,
		TaskID:   taskID,
	})
	if err != nil {
		switch {
		case errors.Is(err, completeTask.ErrTaskNotFound),
			errors.Is(err, completeTask.ErrResourceNotFound):
			h.logger.Warn("POST /housekeeping-tasks/{id}/complete - Not found: task_id=%d", taskID)
			handlers.RespondNotFound(w, msgTaskNotFound)

		default:
			h.logger.Error("POST /housekeeping-tasks/{id}/complete - Failed: task_id=%d, error=%v", taskID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /housekeeping-tasks/{id}/complete - Task completed: task_id=%d, already_done=%t",
		taskID, result.AlreadyDone)
	handlers.RespondJSON(w, http.StatusOK, CompleteTaskResponse{
		Task:     handlers.FromTask(result.Task),
		Resource: handlers.FromResource(result.Resource),
	})
}
