package check_out

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/opsdesk/OPS-ResourceService/internal/api/handlers"
	"github.com/opsdesk/OPS-ResourceService/internal/api/middleware"
	checkOut "github.com/opsdesk/OPS-ResourceService/internal/usecase/check_out"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgBookingNotFound  = "бронирование не найдено"
	msgNotCheckedIn     = "по бронированию не оформлено заселение"
	msgIllegalState     = "недопустимое состояние ресурса для выезда"
)

type Handler struct {
	useCase CheckOutUseCase
	logger  Logger
}

func NewHandler(useCase CheckOutUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// CheckOutResponse HTTP response model. Task == nil возможен только
// при идемпотентном повторе, когда уборка уже завершена.
type CheckOutResponse struct {
	Booking  *handlers.BookingView  `json:"booking"`
	Resource *handlers.ResourceView `json:"resource"`
	Task     *handlers.TaskView     `json:"task,omitempty"`
}

// Handle POST /api/v1/bookings/{bookingId}/check-out
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.TenantFromContext(r.Context())

	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/check-out - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkOut.Request{
		TenantID:  tenantID,
		BookingID: bookingID,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkOut.ErrBookingNotFound),
			errors.Is(err, checkOut.ErrResourceNotFound):
			h.logger.Warn("POST /bookings/{id}/check-out - Not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, checkOut.ErrNotCheckedIn):
			h.logger.Warn("POST /bookings/{id}/check-out - Not checked in: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgNotCheckedIn, "not_checked_in")

		case errors.Is(err, checkOut.ErrIllegalTransition):
			h.logger.Warn("POST /bookings/{id}/check-out - Illegal transition: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondConflict(w, msgIllegalState, "illegal_transition")

		default:
			h.logger.Error("POST /bookings/{id}/check-out - Failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := CheckOutResponse{
		Booking:  handlers.FromBooking(result.Booking),
		Resource: handlers.FromResource(result.Resource),
	}
	if result.Task != nil {
		response.Task = handlers.FromTask(result.Task)
	}

	h.logger.Info("POST /bookings/{id}/check-out - Checked out: booking_id=%d, resource_status=%s",
		bookingID, result.Resource.Status)
	handlers.RespondJSON(w, http.StatusOK, response)
}
