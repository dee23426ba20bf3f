package update_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/opsdesk/OPS-ResourceService/internal/api/handlers"
	updateBooking "github.com/opsdesk/OPS-ResourceService/internal/usecase/update_booking"
)

type mockUseCase struct {
	executeFn func(ctx context.Context, req *updateBooking.Request) (*updateBooking.Response, error)
}

var _ UpdateBookingUseCase = (*mockUseCase)(nil)

func (m *mockUseCase) Execute(ctx context.Context, req *updateBooking.Request) (*updateBooking.Response, error) {
	return m.executeFn(ctx, req)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestHandleCannotUpdateConflict(t *testing.T) {
	h := NewHandler(&mockUseCase{
		executeFn: func(ctx context.Context, req *updateBooking.Request) (*updateBooking.Response, error) {
			return nil, updateBooking.ErrCannotUpdate
		},
	}, nopLogger{})

	payload := `{"start": "2026-03-10T14:00:00Z", "end": "2026-03-10T16:00:00Z"}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/bookings/5", strings.NewReader(payload))
	req = mux.SetURLVars(req, map[string]string{"bookingId": "5"})
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)

	var body handlers.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Equal(t, "cannot_update", body.Reason)
}

func TestHandleRejectsUnknownFields(t *testing.T) {
	h := NewHandler(&mockUseCase{
		executeFn: func(ctx context.Context, req *updateBooking.Request) (*updateBooking.Response, error) {
			t.Fatal("use case must not run for a malformed body")
			return nil, nil
		},
	}, nopLogger{})

	payload := `{"start": "2026-03-10T14:00:00Z", "end": "2026-03-10T16:00:00Z", "surprise": 1}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/bookings/5", strings.NewReader(payload))
	req = mux.SetURLVars(req, map[string]string{"bookingId": "5"})
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
