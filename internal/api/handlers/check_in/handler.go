package check_in

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/opsdesk/OPS-ResourceService/internal/api/handlers"
	"github.com/opsdesk/OPS-ResourceService/internal/api/middleware"
	checkIn "github.com/opsdesk/OPS-ResourceService/internal/usecase/check_in"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgBookingNotFound  = "бронирование не найдено"
	msgNotConfirmed     = "бронирование не подтверждено"
	msgOutsideWindow    = "заселение возможно только внутри интервала бронирования"
	msgOutOfOrder       = "ресурс выведен из эксплуатации"
	msgIllegalState     = "недопустимое состояние ресурса для заселения"
)

type Handler struct {
	useCase CheckInUseCase
	logger  Logger
}

func NewHandler(useCase CheckInUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// CheckInResponse HTTP response model
type CheckInResponse struct {
	Booking  *handlers.BookingView  `json:"booking"`
	Resource *handlers.ResourceView `json:"resource"`
}

// Handle POST /api/v1/bookings/{bookingId}/check-in
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.TenantFromContext(r.Context())

	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/check-in - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkIn.Request{
		TenantID:  tenantID,
		BookingID: bookingID,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkIn.ErrBookingNotFound),
			errors.Is(err, checkIn.ErrResourceNotFound):
			h.logger.Warn("POST /bookings/{id}/check-in - Not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, checkIn.ErrNotConfirmed):
			h.logger.Warn("POST /bookings/{id}/check-in - Not confirmed: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgNotConfirmed, "not_confirmed")

		case errors.Is(err, checkIn.ErrOutsideWindow):
			h.logger.Warn("POST /bookings/{id}/check-in - Outside window: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgOutsideWindow, "outside_window")

		case errors.Is(err, checkIn.ErrResourceOutOfOrder):
			h.logger.Warn("POST /bookings/{id}/check-in - Out of order: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgOutOfOrder, "out_of_order")

		case errors.Is(err, checkIn.ErrIllegalTransition):
			h.logger.Warn("POST /bookings/{id}/check-in - Illegal transition: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondConflict(w, msgIllegalState, "illegal_transition")

		default:
			h.logger.Error("POST /bookings/{id}/check-in - Failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/check-in - Checked in: booking_id=%d, resource_status=%s",
		bookingID, result.Resource.Status)
	handlers.RespondJSON(w, http.StatusOK, CheckInResponse{
		Booking:  handlers.FromBooking(result.Booking),
		Resource: handlers.FromResource(result.Resource),
	})
}
