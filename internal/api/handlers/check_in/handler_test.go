package check_in

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/opsdesk/OPS-ResourceService/internal/api/handlers"
	checkIn "github.com/opsdesk/OPS-ResourceService/internal/usecase/check_in"
)

type mockUseCase struct {
	executeFn func(ctx context.Context, req *checkIn.Request) (*checkIn.Response, error)
}

var _ CheckInUseCase = (*mockUseCase)(nil)

func (m *mockUseCase) Execute(ctx context.Context, req *checkIn.Request) (*checkIn.Response, error) {
	return m.executeFn(ctx, req)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestHandleConflictReasons(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		reason string
	}{
		{"not confirmed", checkIn.ErrNotConfirmed, "not_confirmed"},
		{"outside window", checkIn.ErrOutsideWindow, "outside_window"},
		{"out of order", checkIn.ErrResourceOutOfOrder, "out_of_order"},
		{"illegal transition", checkIn.ErrIllegalTransition, "illegal_transition"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHandler(&mockUseCase{
				executeFn: func(ctx context.Context, req *checkIn.Request) (*checkIn.Response, error) {
					return nil, tc.err
				},
			}, nopLogger{})

			req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/5/check-in", nil)
			req = mux.SetURLVars(req, map[string]string{"bookingId": "5"})
			rec := httptest.NewRecorder()

			h.Handle(rec, req)

			require.Equal(t, http.StatusConflict, rec.Code)

			var body handlers.ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			require.Equal(t, tc.reason, body.Reason)
			require.NotEmpty(t, body.Error)
		})
	}
}

func TestHandleInvalidBookingID(t *testing.T) {
	h := NewHandler(&mockUseCase{}, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/abc/check-in", nil)
	req = mux.SetURLVars(req, map[string]string{"bookingId": "abc"})
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
