package create_task

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opsdesk/OPS-ResourceService/internal/domain"
	taskRepo "github.com/opsdesk/OPS-ResourceService/internal/infra/storage/task"
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
	createFn                  func(ctx context.Context, t *domain.HousekeepingTask) (*domain.HousekeepingTask, error)
	getInProgressByResourceFn func(ctx context.Context, tenantID string, resourceID int64) (*domain.HousekeepingTask, error)
}

var _ TaskRepository = (*mockTaskRepo)(nil)

func (m *mockTaskRepo) Create(ctx context.Context, t *domain.HousekeepingTask) (*domain.HousekeepingTask, error) {
	return m.createFn(ctx, t)
}

func (m *mockTaskRepo) GetInProgressByResource(ctx context.Context, tenantID string, resourceID int64) (*domain.HousekeepingTask, error) {
	return m.getInProgressByResourceFn(ctx, tenantID, resourceID)
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestExecuteCreatesTaskAndMovesToCleaning(t *testing.T) {
	res := &domain.Resource{ID: 1, Status: domain.StatusReserved, HousekeepingStatus: domain.HousekeepingDirty}
	active := []*domain.Booking{{ID: 6, Status: domain.BookingConfirmed}}

	var newStatus domain.ResourceStatus
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
				return nil
			},
		},
		&mockBookingRepo{
			listActiveByResourceFn: func(ctx context.Context, tenantID string, resourceID int64) ([]*domain.Booking, error) {
				return active, nil
			},
		},
		&mockTaskRepo{
			getInProgressByResourceFn: func(ctx context.Context, tenantID string, resourceID int64) (*domain.HousekeepingTask, error) {
				return nil, taskRepo.ErrTaskNotFound
			},
			createFn: func(ctx context.Context, task *domain.HousekeepingTask) (*domain.HousekeepingTask, error) {
				task.ID = 9
				return task, nil
			},
		},
		fakeTxManager{},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{TenantID: "tenant-1", ResourceID: 1})
	require.NoError(t, err)
	require.False(t, resp.Existing)
	require.Equal(t, int64(9), resp.Task.ID)
	// Незавершенная уборка важнее подтвержденных бронирований
	require.Equal(t, domain.StatusCleaning, resp.ResourceStatus)
	require.Equal(t, domain.StatusCleaning, newStatus)
}

func TestExecuteOccupiedResourceStaysOccupied(t *testing.T) {
	res := &domain.Resource{ID: 1, Status: domain.StatusOccupied, HousekeepingStatus: domain.HousekeepingClean}
	active := []*domain.Booking{{ID: 6, Status: domain.BookingCheckedIn}}

	uc := NewUseCase(
		&mockResourceRepo{
			getByIDForUpdateFn: func(ctx context.Context, tenantID string, id int64) (*domain.Resource, error) {
				return res, nil
			},
			updateStatusFn: func(ctx context.Context, tenantID string, id int64, status domain.ResourceStatus) error {
				t.Fatal("occupied resource must keep its status")
				return nil
			},
			updateHousekeepingFn: func(ctx context.Context, tenantID string, id int64, hk domain.HousekeepingStatus) error {
				return nil
			},
		},
		&mockBookingRepo{
			listActiveByResourceFn: func(ctx context.Context, tenantID string, resourceID int64) ([]*domain.Booking, error) {
				return active, nil
			},
		},
		&mockTaskRepo{
			getInProgressByResourceFn: func(ctx context.Context, tenantID string, resourceID int64) (*domain.HousekeepingTask, error) {
				return nil, taskRepo.ErrTaskNotFound
			},
			createFn: func(ctx context.Context, task *domain.HousekeepingTask) (*domain.HousekeepingTask, error) {
				return task, nil
			},
		},
		fakeTxManager{},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{TenantID: "tenant-1", ResourceID: 1})
	require.NoError(t, err)
	require.Equal(t, domain.StatusOccupied, resp.ResourceStatus)
}

func TestExecuteReturnsExistingTask(t *testing.T) {
	res := &domain.Resource{ID: 1, Status: domain.StatusCleaning, HousekeepingStatus: domain.HousekeepingCleaning}
	existing := &domain.HousekeepingTask{ID: 3, ResourceID: 1, Status: domain.TaskInProgress}

	uc := NewUseCase(
		&mockResourceRepo{
			getByIDForUpdateFn: func(ctx context.Context, tenantID string, id int64) (*domain.Resource, error) {
				return res, nil
			},
			updateStatusFn: func(ctx context.Context, tenantID string, id int64, status domain.ResourceStatus) error {
				t.Fatal("status must not change when a task already exists")
				return nil
			},
			updateHousekeepingFn: func(ctx context.Context, tenantID string, id int64, hk domain.HousekeepingStatus) error {
				t.Fatal("housekeeping must not change when a task already exists")
				return nil
			},
		},
		&mockBookingRepo{
			listActiveByResourceFn: func(ctx context.Context, tenantID string, resourceID int64) ([]*domain.Booking, error) {
				return nil, nil
			},
		},
		&mockTaskRepo{
			getInProgressByResourceFn: func(ctx context.Context, tenantID string, resourceID int64) (*domain.HousekeepingTask, error) {
				return existing, nil
			},
			createFn: func(ctx context.Context, task *domain.HousekeepingTask) (*domain.HousekeepingTask, error) {
				t.Fatal("new task must not be created when one is in progress")
				return nil, nil
			},
		},
		fakeTxManager{},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{TenantID: "tenant-1", ResourceID: 1})
	require.NoError(t, err)
	require.True(t, resp.Existing)
	require.Equal(t, int64(3), resp.Task.ID)
}
