package create_booking

import (
	"errors"
	"net/http"

	"github.com/opsdesk/OPS-ResourceService/internal/api/handlers"
	"github.com/opsdesk/OPS-ResourceService/internal/api/middleware"
	createBooking "github.com/opsdesk/OPS-ResourceService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgResourceNotFound   = "ресурс не найден"
	msgOverlap            = "интервал пересекается с существующим бронированием"
	msgOutOfOrder         = "ресурс выведен из эксплуатации"
	msgInvalidInterval    = "некорректный интервал бронирования"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.TenantFromContext(r.Context())

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(tenantID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrResourceNotFound):
			h.logger.Warn("POST /bookings - Resource not found: tenant=%s, resource_id=%d",
				tenantID, req.ResourceID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, createBooking.ErrOverlap):
			h.logger.Warn("POST /bookings - Overlap: tenant=%s, resource_id=%d", tenantID, req.ResourceID)
			handlers.RespondConflict(w, msgOverlap, "overlap")

		case errors.Is(err, createBooking.ErrOutOfOrder):
			h.logger.Warn("POST /bookings - Out of order: tenant=%s, resource_id=%d", tenantID, req.ResourceID)
			handlers.RespondConflict(w, msgOutOfOrder, "out_of_order")

		case errors.Is(err, createBooking.ErrInvalidInterval):
			h.logger.Warn("POST /bookings - Invalid interval: tenant=%s, resource_id=%d", tenantID, req.ResourceID)
			handlers.RespondConflict(w, msgInvalidInterval, "invalid_interval")

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: tenant=%s, error=%v", tenantID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: tenant=%s, resource_id=%d, error=%v",
				tenantID, req.ResourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: tenant=%s, booking_id=%d, resource_status=%s",
		tenantID, result.Booking.ID, result.ResourceStatus)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
