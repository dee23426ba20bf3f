package out_of_order

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/opsdesk/OPS-ResourceService/internal/api/handlers"
	"github.com/opsdesk/OPS-ResourceService/internal/api/middleware"
	markOutOfOrder "github.com/opsdesk/OPS-ResourceService/internal/usecase/mark_out_of_order"
)

const (
	msgInvalidResourceID  = "некорректный ID ресурса"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidETA         = "некорректный формат eta, ожидается RFC3339"
	msgResourceNotFound   = "ресурс не найден"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	useCase MarkOutOfOrderUseCase
	logger  Logger
}

func NewHandler(useCase MarkOutOfOrderUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/resources/{resourceId}/out-of-order
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.TenantFromContext(r.Context())

	resourceID, err := strconv.ParseInt(mux.Vars(r)["resourceId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /resources/{id}/out-of-order - Invalid resource ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidResourceID)
		return
	}

	// Тело опционально: вывод из эксплуатации без причины допустим
	var req OutOfOrderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /resources/{id}/out-of-order - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(tenantID, resourceID)
	if err != nil {
		h.logger.Warn("POST /resources/{id}/out-of-order - Invalid eta: %v", err)
		handlers.RespondBadRequest(w, msgInvalidETA)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, markOutOfOrder.ErrResourceNotFound):
			h.logger.Warn("POST /resources/{id}/out-of-order - Resource not found: resource_id=%d", resourceID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, markOutOfOrder.ErrInvalidInput):
			h.logger.Warn("POST /resources/{id}/out-of-order - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /resources/{id}/out-of-order - Failed: resource_id=%d, error=%v", resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /resources/{id}/out-of-order - Resource marked: resource_id=%d", resourceID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromResource(result.Resource))
}
