package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/opsdesk/OPS-ResourceService/internal/domain"
)

type mockResourceRepo struct {
	getByIDForUpdateFn func(ctx context.Context, tenantID string, id int64) (*domain.Resource, error)
	updateStatusFn     func(ctx context.Context, tenantID string, id int64, status domain.ResourceStatus) error
}

var _ ResourceRepository = (*mockResourceRepo)(nil)

func (m *mockResourceRepo) GetByIDForUpdate(ctx context.Context, tenantID string, id int64) (*domain.Resource, error) {
	return m.getByIDForUpdateFn(ctx, tenantID, id)
}

func (m *mockResourceRepo) UpdateStatus(ctx context.Context, tenantID string, id int64, status domain.ResourceStatus) error {
	return m.updateStatusFn(ctx, tenantID, id, status)
}

type mockBookingRepo struct {
	createFn               func(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	listActiveByResourceFn func(ctx context.Context, tenantID string, resourceID int64) ([]*domain.Booking, error)
}

var _ BookingRepository = (*mockBookingRepo)(nil)

func (m *mockBookingRepo) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	return m.createFn(ctx, b)
}

func (m *mockBookingRepo) ListActiveByResource(ctx context.Context, tenantID string, resourceID int64) ([]*domain.Booking, error) {
	return m.listActiveByResourceFn(ctx, tenantID, resourceID)
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

func TestExecuteCreatesBookingAndReservesResource(t *testing.T) {
	res := &domain.Resource{
		ID:       1,
		TenantID: "tenant-1",
		Kind:     domain.KindRoom,
		Status:   domain.StatusAvailable,
		BaseRate: 100,
	}

	var createdBooking *domain.Booking
	var updatedStatus domain.ResourceStatus

	resourceRepo := &mockResourceRepo{
		getByIDForUpdateFn: func(ctx context.Context, tenantID string, id int64) (*domain.Resource, error) {
			return res, nil
		},
		updateStatusFn: func(ctx context.Context, tenantID string, id int64, status domain.ResourceStatus) error {
			updatedStatus = status
			return nil
		},
	}
	bookingRepo := &mockBookingRepo{
		listActiveByResourceFn: func(ctx context.Context, tenantID string, resourceID int64) ([]*domain.Booking, error) {
			return nil, nil
		},
		createFn: func(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
			createdBooking = b
			b.ID = 42
			return b, nil
		},
	}

	uc := NewUseCase(resourceRepo, bookingRepo, fakeTxManager{}, fixedMinDuration, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		TenantID:   "tenant-1",
		ResourceID: 1,
		StartAt:    ts(t, "2026-03-10T10:00:00Z"),
		EndAt:      ts(t, "2026-03-10T12:00:00Z"),
	})
	require.NoError(t, err)
	require.Equal(t, int64(42), resp.Booking.ID)
	require.Equal(t, domain.StatusReserved, resp.ResourceStatus)
	require.Equal(t, domain.StatusReserved, updatedStatus)
	require.Equal(t, domain.BookingConfirmed, createdBooking.Status)
	require.Equal(t, domain.DefaultBookedBy, createdBooking.BookedBy)
}

func TestExecuteComputesAmountFromBaseRate(t *testing.T) {
	res := &domain.Resource{ID: 1, Kind: domain.KindVehicle, Status: domain.StatusAvailable, BaseRate: 80}

	var createdBooking *domain.Booking
	resourceRepo := &mockResourceRepo{
		getByIDForUpdateFn: func(ctx context.Context, tenantID string, id int64) (*domain.Resource, error) {
			return res, nil
		},
		updateStatusFn: func(ctx context.Context, tenantID string, id int64, status domain.ResourceStatus) error {
			return nil
		},
	}
	bookingRepo := &mockBookingRepo{
		listActiveByResourceFn: func(ctx context.Context, tenantID string, resourceID int64) ([]*domain.Booking, error) {
			return nil, nil
		},
		createFn: func(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
			createdBooking = b
			return b, nil
		},
	}

	uc := NewUseCase(resourceRepo, bookingRepo, fakeTxManager{}, fixedMinDuration, nopLogger{})

	// 2h15m rounds to 2.5 hours, 2.5 * 80 = 200
	_, err := uc.Execute(context.Background(), &Request{
		TenantID:   "tenant-1",
		ResourceID: 1,
		StartAt:    ts(t, "2026-03-10T10:00:00Z"),
		EndAt:      ts(t, "2026-03-10T12:15:00Z"),
	})
	require.NoError(t, err)
	require.Equal(t, 200.0, createdBooking.Amount)
}

func TestExecuteRejectsOverlap(t *testing.T) {
	res := &domain.Resource{ID: 1, Kind: domain.KindRoom, Status: domain.StatusReserved}
	existing := []*domain.Booking{{
		ID:      7,
		Status:  domain.BookingConfirmed,
		StartAt: ts(t, "2026-03-10T10:00:00Z"),
		EndAt:   ts(t, "2026-03-10T12:00:00Z"),
	}}

	resourceRepo := &mockResourceRepo{
		getByIDForUpdateFn: func(ctx context.Context, tenantID string, id int64) (*domain.Resource, error) {
			return res, nil
		},
		updateStatusFn: func(ctx context.Context, tenantID string, id int64, status domain.ResourceStatus) error {
			t.Fatal("resource status must not change on overlap")
			return nil
		},
	}
	bookingRepo := &mockBookingRepo{
		listActiveByResourceFn: func(ctx context.Context, tenantID string, resourceID int64) ([]*domain.Booking, error) {
			return existing, nil
		},
		createFn: func(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
			t.Fatal("booking must not be created on overlap")
			return nil, nil
		},
	}

	uc := NewUseCase(resourceRepo, bookingRepo, fakeTxManager{}, fixedMinDuration, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		TenantID:   "tenant-1",
		ResourceID: 1,
		StartAt:    ts(t, "2026-03-10T11:00:00Z"),
		EndAt:      ts(t, "2026-03-10T13:00:00Z"),
	})
	require.ErrorIs(t, err, ErrOverlap)
}

func TestExecuteAllowsBackToBack(t *testing.T) {
	res := &domain.Resource{ID: 1, Kind: domain.KindRoom, Status: domain.StatusReserved}
	existing := []*domain.Booking{{
		ID:      7,
		Status:  domain.BookingConfirmed,
		StartAt: ts(t, "2026-03-10T10:00:00Z"),
		EndAt:   ts(t, "2026-03-10T12:00:00Z"),
	}}

	resourceRepo := &mockResourceRepo{
		getByIDForUpdateFn: func(ctx context.Context, tenantID string, id int64) (*domain.Resource, error) {
			return res, nil
		},
		updateStatusFn: func(ctx context.Context, tenantID string, id int64, status domain.ResourceStatus) error {
			return nil
		},
	}
	bookingRepo := &mockBookingRepo{
		listActiveByResourceFn: func(ctx context.Context, tenantID string, resourceID int64) ([]*domain.Booking, error) {
			return existing, nil
		},
		createFn: func(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
			return b, nil
		},
	}

	uc := NewUseCase(resourceRepo, bookingRepo, fakeTxManager{}, fixedMinDuration, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		TenantID:   "tenant-1",
		ResourceID: 1,
		StartAt:    ts(t, "2026-03-10T12:00:00Z"),
		EndAt:      ts(t, "2026-03-10T14:00:00Z"),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Booking)
}

func TestExecuteRejectsOutOfOrderResource(t *testing.T) {
	res := &domain.Resource{
		ID:         1,
		Kind:       domain.KindRoom,
		Status:     domain.StatusOutOfOrder,
		OutOfOrder: domain.OutOfOrderRecord{Active: true},
	}

	resourceRepo := &mockResourceRepo{
		getByIDForUpdateFn: func(ctx context.Context, tenantID string, id int64) (*domain.Resource, error) {
			return res, nil
		},
		updateStatusFn: func(ctx context.Context, tenantID string, id int64, status domain.ResourceStatus) error {
			return nil
		},
	}
	bookingRepo := &mockBookingRepo{
		listActiveByResourceFn: func(ctx context.Context, tenantID string, resourceID int64) ([]*domain.Booking, error) {
			return nil, nil
		},
		createFn: func(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
			t.Fatal("booking must not be created for an out-of-order resource")
			return nil, nil
		},
	}

	uc := NewUseCase(resourceRepo, bookingRepo, fakeTxManager{}, fixedMinDuration, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		TenantID:   "tenant-1",
		ResourceID: 1,
		StartAt:    ts(t, "2026-03-10T10:00:00Z"),
		EndAt:      ts(t, "2026-03-10T12:00:00Z"),
	})
	require.ErrorIs(t, err, ErrOutOfOrder)
}

func TestExecuteValidation(t *testing.T) {
	uc := NewUseCase(&mockResourceRepo{}, &mockBookingRepo{}, fakeTxManager{}, fixedMinDuration, nopLogger{})

	cases := []struct {
		name string
		req  *Request
	}{
		{"missing tenant", &Request{ResourceID: 1, StartAt: ts(t, "2026-03-10T10:00:00Z"), EndAt: ts(t, "2026-03-10T12:00:00Z")}},
		{"non-positive resource id", &Request{TenantID: "t", ResourceID: 0, StartAt: ts(t, "2026-03-10T10:00:00Z"), EndAt: ts(t, "2026-03-10T12:00:00Z")}},
		{"zero times", &Request{TenantID: "t", ResourceID: 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tc.req)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
