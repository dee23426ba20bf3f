package task

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/opsdesk/OPS-ResourceService/internal/domain"
	"github.com/opsdesk/OPS-ResourceService/pkg/dbmetrics"
	"github.com/opsdesk/OPS-ResourceService/pkg/psqlbuilder"
)

const pqUniqueViolation = "23505"

var taskColumns = []string{
	"id",
	"tenant_id",
	"resource_id",
	"status",
	"created_at",
	"completed_at",
}

// Repository репозиторий задач уборки
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория задач уборки
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает задачу уборки in_progress.
// Вторая незавершенная задача по тому же ресурсу упирается в частичный
// уникальный индекс и возвращает ErrTaskAlreadyInProgress - вызывающая
// сторона в этом случае отдает существующую задачу.
func (r *Repository) Create(ctx context.Context, t *domain.HousekeepingTask) (*domain.HousekeepingTask, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("housekeeping_tasks").
		Columns("tenant_id", "resource_id", "status").
		Values(t.TenantID, t.ResourceID, domain.TaskInProgress).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&t.ID, &createdAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == pqUniqueViolation {
			return nil, ErrTaskAlreadyInProgress
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	t.Status = domain.TaskInProgress
	t.CreatedAt = createdAt.Time

	return t, nil
}

// GetByID получает задачу по ID
func (r *Repository) GetByID(ctx context.Context, tenantID string, id int64) (*domain.HousekeepingTask, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(taskColumns...).
		From("housekeeping_tasks").
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	t, err := scanTask(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan task: %v", ErrScanRow, err)
	}

	return t, nil
}

// GetInProgressByResource получает незавершенную задачу ресурса, если она есть
func (r *Repository) GetInProgressByResource(ctx context.Context, tenantID string, resourceID int64) (*domain.HousekeepingTask, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(taskColumns...).
		From("housekeeping_tasks").
		Where(squirrel.Eq{
			"tenant_id":   tenantID,
			"resource_id": resourceID,
			"status":      domain.TaskInProgress,
		}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetInProgressByResource - build select query: %v", ErrBuildQuery, err)
	}

	t, err := scanTask(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetInProgressByResource - scan task: %v", ErrScanRow, err)
	}

	return t, nil
}

// ListWithFilter получает задачи с фильтрацией по ресурсу и статусу
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.TasksFilter) ([]*domain.HousekeepingTask, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(taskColumns...).
		From("housekeeping_tasks").
		Where(squirrel.Eq{"tenant_id": filter.TenantID}).
		OrderBy("created_at DESC")

	if filter.ResourceID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"resource_id": *filter.ResourceID})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	tasks := make([]*domain.HousekeepingTask, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListWithFilter - scan row: %v", ErrScanRow, err)
		}
		tasks = append(tasks, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - rows error: %v", ErrScanRow, err)
	}

	return tasks, nil
}

// Complete переводит задачу в done с отметкой времени завершения
func (r *Repository) Complete(ctx context.Context, tenantID string, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("housekeeping_tasks").
		Set("status", domain.TaskDone).
		Set("completed_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Complete - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Complete - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Complete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTaskNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTask(row rowScanner) (*domain.HousekeepingTask, error) {
	var t domain.HousekeepingTask
	var createdAt sql.NullTime

	err := row.Scan(
		&t.ID,
		&t.TenantID,
		&t.ResourceID,
		&t.Status,
		&createdAt,
		&t.CompletedAt,
	)
	if err != nil {
		return nil, err
	}

	t.CreatedAt = createdAt.Time

	return &t, nil
}
