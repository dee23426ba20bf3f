package mark_out_of_order

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
	setOutOfOrderFn    func(ctx context.Context, tenantID string, id int64, ticket string, reason *string, eta *time.Time) error
}

var _ ResourceRepository = (*mockResourceRepo)(nil)

func (m *mockResourceRepo) GetByIDForUpdate(ctx context.Context, tenantID string, id int64) (*domain.Resource, error) {
	return m.getByIDForUpdateFn(ctx, tenantID, id)
}

func (m *mockResourceRepo) SetOutOfOrder(ctx context.Context, tenantID string, id int64, ticket string, reason *string, eta *time.Time) error {
	return m.setOutOfOrderFn(ctx, tenantID, id, ticket, reason, eta)
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestExecuteMarksOutOfOrderFromAnyStatus(t *testing.T) {
	for _, status := range []domain.ResourceStatus{
		domain.StatusAvailable, domain.StatusReserved, domain.StatusOccupied, domain.StatusCleaning,
	} {
		res := &domain.Resource{ID: 1, Status: status}

		var assignedTicket string
		uc := NewUseCase(
			&mockResourceRepo{
				getByIDForUpdateFn: func(ctx context.Context, tenantID string, id int64) (*domain.Resource, error) {
					return res, nil
				},
				setOutOfOrderFn: func(ctx context.Context, tenantID string, id int64, ticket string, reason *string, eta *time.Time) error {
					assignedTicket = ticket
					return nil
				},
			},
			fakeTxManager{},
			nopLogger{},
		)

		resp, err := uc.Execute(context.Background(), &Request{
			TenantID:   "tenant-1",
			ResourceID: 1,
			Reason:     ptr.Ptr("broken AC"),
		})
		require.NoError(t, err, "status=%s", status)
		require.Equal(t, domain.StatusOutOfOrder, resp.Resource.Status)
		require.True(t, resp.Resource.OutOfOrder.Active)
		require.NotEmpty(t, assignedTicket)
		require.Equal(t, assignedTicket, *resp.Resource.OutOfOrder.Ticket)
	}
}

func TestExecuteIdempotentRepeatKeepsTicket(t *testing.T) {
	ticket := "existing-ticket"
	res := &domain.Resource{
		ID:         1,
		Status:     domain.StatusOutOfOrder,
		OutOfOrder: domain.OutOfOrderRecord{Active: true, Ticket: &ticket},
	}

	uc := NewUseCase(
		&mockResourceRepo{
			getByIDForUpdateFn: func(ctx context.Context, tenantID string, id int64) (*domain.Resource, error) {
				return res, nil
			},
			setOutOfOrderFn: func(ctx context.Context, tenantID string, id int64, ticket string, reason *string, eta *time.Time) error {
				t.Fatal("repeated mark must not write a new ticket")
				return nil
			},
		},
		fakeTxManager{},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{TenantID: "tenant-1", ResourceID: 1})
	require.NoError(t, err)
	require.True(t, resp.Resource.OutOfOrder.Active)
	require.Equal(t, "existing-ticket", *resp.Resource.OutOfOrder.Ticket)
}

func TestExecuteValidation(t *testing.T) {
	uc := NewUseCase(&mockResourceRepo{}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ResourceID: 1})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{TenantID: "tenant-1", ResourceID: 0})
	require.ErrorIs(t, err, ErrInvalidInput)
}
