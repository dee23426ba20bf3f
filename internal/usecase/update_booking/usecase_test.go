package update_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/opsdesk/OPS-ResourceService/internal/domain"
	"github.com/opsdesk/OPS-ResourceService/pkg/ptr"
)

type mockResourceRepo struct {
	getByIDForUpdateFn func(ctx context.Context, tenantID string, id int64) (*domain.Resource, error)
}

var _ ResourceRepository = (*mockResourceRepo)(nil)

func (m *mockResourceRepo) GetByIDForUpdate(ctx context.Context, tenantID string, id int64) (*domain.Resource, error) {
	return m.getByIDForUpdateFn(ctx, tenantID, id)
}

type mockBookingRepo struct {
	getByIDFn              func(ctx context.Context, tenantID string, id int64) (*domain.Booking, error)
	listActiveByResourceFn func(ctx context.Context, tenantID string, resourceID int64) ([]*domain.Booking, error)
	updateIntervalFn       func(ctx context.Context, tenantID string, id int64, startAt, endAt time.Time, amount float64) error
}

var _ BookingRepository = (*mockBookingRepo)(nil)

func (m *mockBookingRepo) GetByID(ctx context.Context, tenantID string, id int64) (*domain.Booking, error) {
	return m.getByIDFn(ctx, tenantID, id)
}

func (m *mockBookingRepo) ListActiveByResource(ctx context.Context, tenantID string, resourceID int64) ([]*domain.Booking, error) {
	return m.listActiveByResourceFn(ctx, tenantID, resourceID)
}

func (m *mockBookingRepo) UpdateInterval(ctx context.Context, tenantID string, id int64, startAt, endAt time.Time, amount float64) error {
	return m.updateIntervalFn(ctx, tenantID, id, startAt, endAt, amount)
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

func confirmed(t *testing.T) *domain.Booking {
	return &domain.Booking{
		ID:         5,
		ResourceID: 1,
		Status:     domain.BookingConfirmed,
		StartAt:    ts(t, "2026-03-10T10:00:00Z"),
		EndAt:      ts(t, "2026-03-10T12:00:00Z"),
		Amount:     200,
	}
}

func TestExecuteMovesBookingAndRecomputesAmount(t *testing.T) {
	b := confirmed(t)
	res := &domain.Resource{ID: 1, Kind: domain.KindRoom, Status: domain.StatusReserved, BaseRate: 100}

	var storedAmount float64
	uc := NewUseCase(
		&mockResourceRepo{
			getByIDForUpdateFn: func(ctx context.Context, tenantID string, id int64) (*domain.Resource, error) {
				return res, nil
			},
		},
		&mockBookingRepo{
			getByIDFn: func(ctx context.Context, tenantID string, id int64) (*domain.Booking, error) {
				return b, nil
			},
			listActiveByResourceFn: func(ctx context.Context, tenantID string, resourceID int64) ([]*domain.Booking, error) {
				return []*domain.Booking{b}, nil
			},
			updateIntervalFn: func(ctx context.Context, tenantID string, id int64, startAt, endAt time.Time, amount float64) error {
				storedAmount = amount
				return nil
			},
		},
		fakeTxManager{},
		fixedMinDuration,
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		TenantID:  "tenant-1",
		BookingID: 5,
		StartAt:   ts(t, "2026-03-10T14:00:00Z"),
		EndAt:     ts(t, "2026-03-10T17:00:00Z"),
	})
	require.NoError(t, err)
	require.Equal(t, ts(t, "2026-03-10T14:00:00Z"), resp.Booking.StartAt)
	require.Equal(t, ts(t, "2026-03-10T17:00:00Z"), resp.Booking.EndAt)
	// 3 hours at base rate 100
	require.Equal(t, 300.0, storedAmount)
	require.Equal(t, 300.0, resp.Booking.Amount)
}

func TestExecuteExcludesOwnIntervalFromOverlapCheck(t *testing.T) {
	b := confirmed(t)
	res := &domain.Resource{ID: 1, Kind: domain.KindRoom, Status: domain.StatusReserved, BaseRate: 100}

	uc := NewUseCase(
		&mockResourceRepo{
			getByIDForUpdateFn: func(ctx context.Context, tenantID string, id int64) (*domain.Resource, error) {
				return res, nil
			},
		},
		&mockBookingRepo{
			getByIDFn: func(ctx context.Context, tenantID string, id int64) (*domain.Booking, error) {
				return b, nil
			},
			listActiveByResourceFn: func(ctx context.Context, tenantID string, resourceID int64) ([]*domain.Booking, error) {
				return []*domain.Booking{b}, nil
			},
			updateIntervalFn: func(ctx context.Context, tenantID string, id int64, startAt, endAt time.Time, amount float64) error {
				return nil
			},
		},
		fakeTxManager{},
		fixedMinDuration,
		nopLogger{},
	)

	// Новый интервал пересекается только со старым интервалом самого бронирования
	_, err := uc.Execute(context.Background(), &Request{
		TenantID:  "tenant-1",
		BookingID: 5,
		StartAt:   ts(t, "2026-03-10T11:00:00Z"),
		EndAt:     ts(t, "2026-03-10T13:00:00Z"),
	})
	require.NoError(t, err)
}

func TestExecuteRejectsOverlapWithOtherBooking(t *testing.T) {
	b := confirmed(t)
	other := &domain.Booking{
		ID:         6,
		ResourceID: 1,
		Status:     domain.BookingConfirmed,
		StartAt:    ts(t, "2026-03-10T14:00:00Z"),
		EndAt:      ts(t, "2026-03-10T16:00:00Z"),
	}
	res := &domain.Resource{ID: 1, Kind: domain.KindRoom, Status: domain.StatusReserved}

	uc := NewUseCase(
		&mockResourceRepo{
			getByIDForUpdateFn: func(ctx context.Context, tenantID string, id int64) (*domain.Resource, error) {
				return res, nil
			},
		},
		&mockBookingRepo{
			getByIDFn: func(ctx context.Context, tenantID string, id int64) (*domain.Booking, error) {
				return b, nil
			},
			listActiveByResourceFn: func(ctx context.Context, tenantID string, resourceID int64) ([]*domain.Booking, error) {
				return []*domain.Booking{b, other}, nil
			},
			updateIntervalFn: func(ctx context.Context, tenantID string, id int64, startAt, endAt time.Time, amount float64) error {
				t.Fatal("interval must not be updated on overlap")
				return nil
			},
		},
		fakeTxManager{},
		fixedMinDuration,
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		TenantID:  "tenant-1",
		BookingID: 5,
		StartAt:   ts(t, "2026-03-10T15:00:00Z"),
		EndAt:     ts(t, "2026-03-10T17:00:00Z"),
	})
	require.ErrorIs(t, err, ErrOverlap)
}

func TestExecuteCannotUpdateNonConfirmed(t *testing.T) {
	for _, status := range []domain.BookingStatus{domain.BookingCheckedIn, domain.BookingCheckedOut, domain.BookingCancelled} {
		b := confirmed(t)
		b.Status = status
		res := &domain.Resource{ID: 1, Kind: domain.KindRoom}

		uc := NewUseCase(
			&mockResourceRepo{
				getByIDForUpdateFn: func(ctx context.Context, tenantID string, id int64) (*domain.Resource, error) {
					return res, nil
				},
			},
			&mockBookingRepo{
				getByIDFn: func(ctx context.Context, tenantID string, id int64) (*domain.Booking, error) {
					return b, nil
				},
				listActiveByResourceFn: func(ctx context.Context, tenantID string, resourceID int64) ([]*domain.Booking, error) {
					return nil, nil
				},
				updateIntervalFn: func(ctx context.Context, tenantID string, id int64, startAt, endAt time.Time, amount float64) error {
					t.Fatalf("booking with status=%s must not be updated", status)
					return nil
				},
			},
			fakeTxManager{},
			fixedMinDuration,
			nopLogger{},
		)

		_, err := uc.Execute(context.Background(), &Request{
			TenantID:  "tenant-1",
			BookingID: 5,
			StartAt:   ts(t, "2026-03-10T14:00:00Z"),
			EndAt:     ts(t, "2026-03-10T16:00:00Z"),
		})
		require.ErrorIs(t, err, ErrCannotUpdate, "status=%s", status)
	}
}

func TestExecuteExplicitAmountWins(t *testing.T) {
	b := confirmed(t)
	res := &domain.Resource{ID: 1, Kind: domain.KindRoom, Status: domain.StatusReserved, BaseRate: 100}

	var storedAmount float64
	uc := NewUseCase(
		&mockResourceRepo{
			getByIDForUpdateFn: func(ctx context.Context, tenantID string, id int64) (*domain.Resource, error) {
				return res, nil
			},
		},
		&mockBookingRepo{
			getByIDFn: func(ctx context.Context, tenantID string, id int64) (*domain.Booking, error) {
				return b, nil
			},
			listActiveByResourceFn: func(ctx context.Context, tenantID string, resourceID int64) ([]*domain.Booking, error) {
				return nil, nil
			},
			updateIntervalFn: func(ctx context.Context, tenantID string, id int64, startAt, endAt time.Time, amount float64) error {
				storedAmount = amount
				return nil
			},
		},
		fakeTxManager{},
		fixedMinDuration,
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		TenantID:  "tenant-1",
		BookingID: 5,
		StartAt:   ts(t, "2026-03-10T14:00:00Z"),
		EndAt:     ts(t, "2026-03-10T16:00:00Z"),
		Amount:    ptr.Ptr(99.5),
	})
	require.NoError(t, err)
	require.Equal(t, 99.5, storedAmount)
}
