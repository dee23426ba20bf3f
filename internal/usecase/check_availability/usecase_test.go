package check_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/opsdesk/OPS-ResourceService/internal/domain"
)

type mockResourceRepo struct {
	getByIDFn func(ctx context.Context, tenantID string, id int64) (*domain.Resource, error)
}

var _ ResourceRepository = (*mockResourceRepo)(nil)

func (m *mockResourceRepo) GetByID(ctx context.Context, tenantID string, id int64) (*domain.Resource, error) {
	return m.getByIDFn(ctx, tenantID, id)
}

type mockBookingRepo struct {
	listActiveByResourceFn func(ctx context.Context, tenantID string, resourceID int64) ([]*domain.Booking, error)
}

var _ BookingRepository = (*mockBookingRepo)(nil)

func (m *mockBookingRepo) ListActiveByResource(ctx context.Context, tenantID string, resourceID int64) ([]*domain.Booking, error) {
	return m.listActiveByResourceFn(ctx, tenantID, resourceID)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func fixedMinDuration(domain.ResourceKind) time.Duration {
	return 30 * time.Minute
}

func ts(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	return parsed
}

func TestExecute(t *testing.T) {
	res := &domain.Resource{ID: 1, Kind: domain.KindRoom, Status: domain.StatusReserved}
	active := []*domain.Booking{{
		ID:      7,
		Status:  domain.BookingConfirmed,
		StartAt: ts(t, "2026-03-10T10:00:00Z"),
		EndAt:   ts(t, "2026-03-10T12:00:00Z"),
	}}

	uc := NewUseCase(
		&mockResourceRepo{
			getByIDFn: func(ctx context.Context, tenantID string, id int64) (*domain.Resource, error) {
				return res, nil
			},
		},
		&mockBookingRepo{
			listActiveByResourceFn: func(ctx context.Context, tenantID string, resourceID int64) ([]*domain.Booking, error) {
				return active, nil
			},
		},
		fixedMinDuration,
		nopLogger{},
	)

	t.Run("free interval", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), &Request{
			TenantID:   "tenant-1",
			ResourceID: 1,
			StartAt:    ts(t, "2026-03-10T13:00:00Z"),
			EndAt:      ts(t, "2026-03-10T14:00:00Z"),
		})
		require.NoError(t, err)
		require.True(t, resp.Available)
		require.Empty(t, resp.Reason)
	})

	t.Run("overlap", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), &Request{
			TenantID:   "tenant-1",
			ResourceID: 1,
			StartAt:    ts(t, "2026-03-10T11:00:00Z"),
			EndAt:      ts(t, "2026-03-10T13:00:00Z"),
		})
		require.NoError(t, err)
		require.False(t, resp.Available)
		require.Equal(t, domain.ReasonOverlap, resp.Reason)
	})

	t.Run("invalid input", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{TenantID: "tenant-1"})
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}
