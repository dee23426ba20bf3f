package resource

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/opsdesk/OPS-ResourceService/internal/domain"
	"github.com/opsdesk/OPS-ResourceService/pkg/dbmetrics"
	"github.com/opsdesk/OPS-ResourceService/pkg/psqlbuilder"
)

const pqUniqueViolation = "23505"

var resourceColumns = []string{
	"id",
	"tenant_id",
	"kind",
	"name",
	"status",
	"housekeeping_status",
	"out_of_order",
	"out_of_order_ticket",
	"out_of_order_reason",
	"out_of_order_eta",
	"base_rate",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с реестром ресурсов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория ресурсов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый ресурс.
// Имя уникально в пределах арендатора, конфликт возвращает ErrResourceExists.
func (r *Repository) Create(ctx context.Context, res *domain.Resource) (*domain.Resource, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("resources").
		Columns("tenant_id", "kind", "name", "status", "housekeeping_status", "base_rate").
		Values(res.TenantID, res.Kind, res.Name, res.Status, res.HousekeepingStatus, res.BaseRate).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&res.ID, &createdAt, &updatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == pqUniqueViolation {
			return nil, ErrResourceExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// GetByID получает ресурс по ID
func (r *Repository) GetByID(ctx context.Context, tenantID string, id int64) (*domain.Resource, error) {
	return r.getByID(ctx, tenantID, id, false)
}

// GetByIDForUpdate получает ресурс по ID с блокировкой строки (FOR UPDATE).
// Вызывается только внутри транзакции: блокировка строки ресурса
// сериализует все мутирующие операции по одному ресурсу,
// операции над разными ресурсами идут параллельно.
func (r *Repository) GetByIDForUpdate(ctx context.Context, tenantID string, id int64) (*domain.Resource, error) {
	return r.getByID(ctx, tenantID, id, true)
}

func (r *Repository) getByID(ctx context.Context, tenantID string, id int64, forUpdate bool) (*domain.Resource, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(resourceColumns...).
		From("resources").
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID})

	if forUpdate && dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanResource(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrResourceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getByID - scan resource: %v", ErrScanRow, err)
	}

	return res, nil
}

// List получает все ресурсы арендатора, опционально фильтруя по типу
func (r *Repository) List(ctx context.Context, tenantID string, kind *domain.ResourceKind) ([]*domain.Resource, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(resourceColumns...).
		From("resources").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("name ASC")

	if kind != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"kind": *kind})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	resources := make([]*domain.Resource, 0)
	for rows.Next() {
		res, err := scanResource(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		resources = append(resources, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return resources, nil
}

// UpdateStatus обновляет статус жизненного цикла ресурса
func (r *Repository) UpdateStatus(ctx context.Context, tenantID string, id int64, status domain.ResourceStatus) error {
	return r.update(ctx, tenantID, id, "UpdateStatus", map[string]interface{}{
		"status": status,
	})
}

// UpdateHousekeeping обновляет статус уборки ресурса
func (r *Repository) UpdateHousekeeping(ctx context.Context, tenantID string, id int64, hk domain.HousekeepingStatus) error {
	return r.update(ctx, tenantID, id, "UpdateHousekeeping", map[string]interface{}{
		"housekeeping_status": hk,
	})
}

// SetOutOfOrder помечает ресурс выведенным из эксплуатации
func (r *Repository) SetOutOfOrder(ctx context.Context, tenantID string, id int64, ticket string, reason *string, eta *time.Time) error {
	return r.update(ctx, tenantID, id, "SetOutOfOrder", map[string]interface{}{
		"out_of_order":        true,
		"out_of_order_ticket": ticket,
		"out_of_order_reason": reason,
		"out_of_order_eta":    eta,
		"status":              domain.StatusOutOfOrder,
	})
}

// ClearOutOfOrder возвращает ресурс в эксплуатацию с указанным статусом
func (r *Repository) ClearOutOfOrder(ctx context.Context, tenantID string, id int64, status domain.ResourceStatus) error {
	return r.update(ctx, tenantID, id, "ClearOutOfOrder", map[string]interface{}{
		"out_of_order":        false,
		"out_of_order_ticket": nil,
		"out_of_order_reason": nil,
		"out_of_order_eta":    nil,
		"status":              status,
	})
}

func (r *Repository) update(ctx context.Context, tenantID string, id int64, op string, fields map[string]interface{}) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("resources").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID})

	for column, value := range fields {
		updateBuilder = updateBuilder.Set(column, value)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrResourceNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanResource(row rowScanner) (*domain.Resource, error) {
	var res domain.Resource
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.TenantID,
		&res.Kind,
		&res.Name,
		&res.Status,
		&res.HousekeepingStatus,
		&res.OutOfOrder.Active,
		&res.OutOfOrder.Ticket,
		&res.OutOfOrder.Reason,
		&res.OutOfOrder.ETA,
		&res.BaseRate,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}
