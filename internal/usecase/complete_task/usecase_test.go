package complete_task

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/opsdesk/OPS-ResourceService/internal/domain"
)

type mockResourceRepo struct {
	getByIDForUpdateFn   func(ctx context.Context, tenantID string, id int64) (*domain.Resource, error)
	updateStatusFn       func(ctx context.Context, tenantID string, id int64, status domain.ResourceStatus) error
	updateHousekeepingFn func(ctx context.Context, tenantID string, id int64, hk domain.HousekeepingStatus) error
}

var _ ResourceRepository = (*mockResourceRepo)(nil)

func (m *mockResourceRepo) GetByIDForUpdate(ctx context.Context, tenantID string, id int64) (*domain.Resource, error) {
	return m.getByIDForUpdateFn(ctx, tenantID, id)
}

func (m *mockResourceRepo) UpdateStatus(ctx context.Context, tenantID string, id int64, status domain.ResourceStatus) error {
	return m.updateStatusFn(ctx, tenantID, id, status)
}

func (m *mockResourceRepo) UpdateHousekeeping(ctx context.Context, tenantID string, id int64, hk domain.HousekeepingStatus) error {
	return m.updateHousekeepingFn(ctx, tenantID, id, hk)
}

type mockBookingRepo struct {
	listActiveByResourceFn func(ctx context.Context, tenantID string, resourceID int64) ([]*domain.Booking, error)
}

var _ BookingRepository = (*mockBookingRepo)(nil)

func (m *mockBookingRepo) ListActiveByResource(ctx context.Context, tenantID string, resourceID int64) ([]*domain.Booking, error) {
	return m.listActiveByResourceFn(ctx, tenantID, resourceID)
}

type mockTaskRepo struct {
	getByIDFn  func(ctx context.Context, tenantID string, id int64) (*domain.HousekeepingTask, error)
	completeFn func(ctx context.Context, tenantID string, id int64) error
}

var _ TaskRepository = (*mockTaskRepo)(nil)

func (m *mockTaskRepo) GetByID(ctx context.Context, tenantID string, id int64) (*domain.HousekeepingTask, error) {
	return m.getByIDFn(ctx, tenantID, id)
}

func (m *mockTaskRepo) Complete(ctx context.Context, tenantID string, id int64) error {
	return m.completeFn(ctx, tenantID, id)
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newUseCase(res *domain.Resource, task *domain.HousekeepingTask, active []*domain.Booking) (*UseCase, *domain.ResourceStatus, *domain.HousekeepingStatus) {
	var newStatus domain.ResourceStatus
	var hkStatus domain.HousekeepingStatus

	uc := NewUseCase(
		&mockResourceRepo{
			getByIDForUpdateFn: func(ctx context.Context, tenantID string, id int64) (*domain.Resource, error) {
				return res, nil
			},
			updateStatusFn: func(ctx context.Context, tenantID string, id int64, status domain.ResourceStatus) error {
				newStatus = status
				return nil
			},
			updateHousekeepingFn: func(ctx context.Context, tenantID string, id int64, hk domain.HousekeepingStatus) error {
				hkStatus = hk
				return nil
			},
		},
		&mockBookingRepo{
			listActiveByResourceFn: func(ctx context.Context, tenantID string, resourceID int64) ([]*domain.Booking, error) {
				return active, nil
			},
		},
		&mockTaskRepo{
			getByIDFn: func(ctx context.Context, tenantID string, id int64) (*domain.HousekeepingTask, error) {
				return task, nil
			},
			completeFn: func(ctx context.Context, tenantID string, id int64) error {
				return nil
			},
		},
		fakeTxManager{},
		nopLogger{},
	)

	return uc, &newStatus, &hkStatus
}

func TestExecuteCompletesTaskAndFreesResource(t *testing.T) {
	res := &domain.Resource{ID: 1, Status: domain.StatusCleaning, HousekeepingStatus: domain.HousekeepingCleaning}
	task := &domain.HousekeepingTask{ID: 3, ResourceID: 1, Status: domain.TaskInProgress}

	uc, newStatus, hkStatus := newUseCase(res, task, nil)

	resp, err := uc.Execute(context.Background(), &Request{TenantID: "tenant-1", TaskID: 3})
	require.NoError(t, err)
	require.False(t, resp.AlreadyDone)
	require.Equal(t, domain.TaskDone, resp.Task.Status)
	require.Equal(t, domain.StatusAvailable, resp.Resource.Status)
	require.Equal(t, domain.StatusAvailable, *newStatus)
	require.Equal(t, domain.HousekeepingClean, *hkStatus)
}

func TestExecuteReturnsToReservedWhenConfirmedRemain(t *testing.T) {
	res := &domain.Resource{ID: 1, Status: domain.StatusCleaning, HousekeepingStatus: domain.HousekeepingCleaning}
	task := &domain.HousekeepingTask{ID: 3, ResourceID: 1, Status: domain.TaskInProgress}
	active := []*domain.Booking{{ID: 6, ResourceID: 1, Status: domain.BookingConfirmed}}

	uc, _, _ := newUseCase(res, task, active)

	resp, err := uc.Execute(context.Background(), &Request{TenantID: "tenant-1", TaskID: 3})
	require.NoError(t, err)
	require.Equal(t, domain.StatusReserved, resp.Resource.Status)
}

func TestExecuteOutOfOrderResourceKeepsStatus(t *testing.T) {
	res := &domain.Resource{
		ID:                 1,
		Status:             domain.StatusOutOfOrder,
		HousekeepingStatus: domain.HousekeepingCleaning,
		OutOfOrder:         domain.OutOfOrderRecord{Active: true},
	}
	task := &domain.HousekeepingTask{ID: 3, ResourceID: 1, Status: domain.TaskInProgress}

	uc, _, hkStatus := newUseCase(res, task, nil)

	resp, err := uc.Execute(context.Background(), &Request{TenantID: "tenant-1", TaskID: 3})
	require.NoError(t, err)
	require.Equal(t, domain.StatusOutOfOrder, resp.Resource.Status)
	require.Equal(t, domain.HousekeepingClean, *hkStatus)
	require.Equal(t, domain.TaskDone, resp.Task.Status)
}

func TestExecuteIdempotentRepeat(t *testing.T) {
	done := time.Now()
	res := &domain.Resource{ID: 1, Status: domain.StatusAvailable, HousekeepingStatus: domain.HousekeepingClean}
	task := &domain.HousekeepingTask{ID: 3, ResourceID: 1, Status: domain.TaskDone, CompletedAt: &done}

	uc := NewUseCase(
		&mockResourceRepo{
			getByIDForUpdateFn: func(ctx context.Context, tenantID string, id int64) (*domain.Resource, error) {
				return res, nil
			},
			updateStatusFn: func(ctx context.Context, tenantID string, id int64, status domain.ResourceStatus) error {
				t.Fatal("resource status must not change on repeated completion")
				return nil
			},
			updateHousekeepingFn: func(ctx context.Context, tenantID string, id int64, hk domain.HousekeepingStatus) error {
				t.Fatal("housekeeping must not change on repeated completion")
				return nil
			},
		},
		&mockBookingRepo{
			listActiveByResourceFn: func(ctx context.Context, tenantID string, resourceID int64) ([]*domain.Booking, error) {
				return nil, nil
			},
		},
		&mockTaskRepo{
			getByIDFn: func(ctx context.Context, tenantID string, id int64) (*domain.HousekeepingTask, error) {
				return task, nil
			},
			completeFn: func(ctx context.Context, tenantID string, id int64) error {
				t.Fatal("task must not be completed twice")
				return nil
			},
		},
		fakeTxManager{},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{TenantID: "tenant-1", TaskID: 3})
	require.NoError(t, err)
	require.True(t, resp.AlreadyDone)
	require.Equal(t, domain.TaskDone, resp.Task.Status)
}
