package update_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/opsdesk/OPS-ResourceService/internal/api/handlers"
	"github.com/opsdesk/OPS-ResourceService/internal/api/middleware"
	updateBooking "github.com/opsdesk/OPS-ResourceService/internal/usecase/update_booking"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgBookingNotFound    = "бронирование не найдено"
	msgCannotUpdate       = "бронирование нельзя изменить в текущем статусе"
	msgOverlap            = "интервал пересекается с существующим бронированием"
	msgOutOfOrder         = "ресурс выведен из эксплуатации"
	msgInvalidInterval    = "некорректный интервал бронирования"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.TenantFromContext(r.Context())

	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(tenantID, bookingID)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateBooking.ErrBookingNotFound),
			errors.Is(err, updateBooking.ErrResourceNotFound):
			h.logger.Warn("PUT /bookings/{id} - Not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, updateBooking.ErrCannotUpdate):
			h.logger.Warn("PUT /bookings/{id} - Cannot update: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgCannotUpdate, "cannot_update")

		case errors.Is(err, updateBooking.ErrOverlap):
			h.logger.Warn("PUT /bookings/{id} - Overlap: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgOverlap, "overlap")

		case errors.Is(err, updateBooking.ErrOutOfOrder):
			h.logger.Warn("PUT /bookings/{id} - Out of order: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgOutOfOrder, "out_of_order")

		case errors.Is(err, updateBooking.ErrInvalidInterval):
			h.logger.Warn("PUT /bookings/{id} - Invalid interval: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgInvalidInterval, "invalid_interval")

		case errors.Is(err, updateBooking.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/{id} - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /bookings/{id} - Failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/{id} - Booking updated: booking_id=%d", bookingID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromBooking(result.Booking))
}
