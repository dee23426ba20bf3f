package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/opsdesk/OPS-ResourceService/internal/domain"
)

type mockBookingRepo struct {
	getByIDFn        func(ctx context.Context, tenantID string, id int64) (*domain.Booking, error)
	listWithFilterFn func(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	listUpcomingFn   func(ctx context.Context, tenantID string, now time.Time, window time.Duration) ([]*domain.Booking, error)
}

var _ BookingRepository = (*mockBookingRepo)(nil)

func (m *mockBookingRepo) GetByID(ctx context.Context, tenantID string, id int64) (*domain.Booking, error) {
	return m.getByIDFn(ctx, tenantID, id)
}

func (m *mockBookingRepo) ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	return m.listWithFilterFn(ctx, filter)
}

func (m *mockBookingRepo) ListUpcoming(ctx context.Context, tenantID string, now time.Time, window time.Duration) ([]*domain.Booking, error) {
	return m.listUpcomingFn(ctx, tenantID, now, window)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestUpcomingWindow(t *testing.T) {
	var gotWindow time.Duration
	repo := &mockBookingRepo{
		listUpcomingFn: func(ctx context.Context, tenantID string, now time.Time, window time.Duration) ([]*domain.Booking, error) {
			gotWindow = window
			return nil, nil
		},
	}
	svc := NewService(repo, 48, nopLogger{})

	t.Run("explicit hours", func(t *testing.T) {
		_, err := svc.Upcoming(context.Background(), "tenant-1", 12)
		require.NoError(t, err)
		require.Equal(t, 12*time.Hour, gotWindow)
	})

	t.Run("zero hours falls back to default", func(t *testing.T) {
		_, err := svc.Upcoming(context.Background(), "tenant-1", 0)
		require.NoError(t, err)
		require.Equal(t, 48*time.Hour, gotWindow)
	})

	t.Run("oversized window is capped", func(t *testing.T) {
		_, err := svc.Upcoming(context.Background(), "tenant-1", domain.MaxUpcomingWindowHours+100)
		require.NoError(t, err)
		require.Equal(t, time.Duration(domain.MaxUpcomingWindowHours)*time.Hour, gotWindow)
	})

	t.Run("negative hours rejected", func(t *testing.T) {
		_, err := svc.Upcoming(context.Background(), "tenant-1", -1)
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestListWithFilterValidation(t *testing.T) {
	svc := NewService(&mockBookingRepo{}, 48, nopLogger{})

	_, err := svc.ListWithFilter(context.Background(), domain.BookingsFilter{})
	require.ErrorIs(t, err, ErrInvalidInput)

	from := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, -1)
	_, err = svc.ListWithFilter(context.Background(), domain.BookingsFilter{
		TenantID:  "tenant-1",
		StartDate: &from,
		EndDate:   &to,
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}
