package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/opsdesk/OPS-ResourceService/internal/domain"
	"github.com/opsdesk/OPS-ResourceService/pkg/dbmetrics"
	"github.com/opsdesk/OPS-ResourceService/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"tenant_id",
	"resource_id",
	"start_at",
	"end_at",
	"purpose",
	"booked_by",
	"amount",
	"status",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий журнала бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Вызывается только из сериализованной единицы работы (см. usecase
// create_booking): проверка доступности и вставка выполняются в одной
// транзакции под блокировкой строки ресурса.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns("tenant_id", "resource_id", "start_at", "end_at", "purpose", "booked_by", "amount", "status").
		Values(b.TenantID, b.ResourceID, b.StartAt, b.EndAt, b.Purpose, b.BookedBy, b.Amount, b.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&b.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, tenantID string, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return b, nil
}

// ListActiveByResource получает активные (confirmed/checked_in) бронирования
// ресурса в порядке начала. Это рабочий набор проверки пересечений.
func (r *Repository) ListActiveByResource(ctx context.Context, tenantID string, resourceID int64) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	activeStatuses := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		activeStatuses[i] = string(s)
	}

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{
			"tenant_id":   tenantID,
			"resource_id": resourceID,
			"status":      activeStatuses,
		}).
		OrderBy("start_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByResource - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByResource - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// ListWithFilter получает бронирования с гибкой фильтрацией
// по ресурсу, периоду (по start_at) и статусу
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"tenant_id": filter.TenantID}).
		OrderBy("start_at DESC")

	if filter.ResourceID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"resource_id": *filter.ResourceID})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"start_at": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"start_at": *filter.EndDate})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if filter.OnlyActive {
		activeStatuses := make([]string, len(domain.ActiveStatuses))
		for i, s := range domain.ActiveStatuses {
			activeStatuses[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": activeStatuses})
	}
	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(filter.Limit)
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

	return scanBookings(rows)
}

// ListUpcoming получает активные бронирования, начинающиеся или
// заканчивающиеся в окне [now, now+window)
func (r *Repository) ListUpcoming(ctx context.Context, tenantID string, now time.Time, window time.Duration) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	until := now.Add(window)
	activeStatuses := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		activeStatuses[i] = string(s)
	}

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"tenant_id": tenantID, "status": activeStatuses}).
		Where(squirrel.Or{
			squirrel.And{squirrel.GtOrEq{"start_at": now}, squirrel.Lt{"start_at": until}},
			squirrel.And{squirrel.GtOrEq{"end_at": now}, squirrel.Lt{"end_at": until}},
		}).
		OrderBy("start_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListUpcoming - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListUpcoming - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// SumAmountForPeriod суммирует amount по ненулевым бронированиям,
// начинающимся в [from, to). Отмененные бронирования не учитываются.
func (r *Repository) SumAmountForPeriod(ctx context.Context, tenantID string, from, to time.Time) (float64, int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(SUM(amount), 0)", "COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		Where(squirrel.NotEq{"status": domain.BookingCancelled}).
		Where(squirrel.GtOrEq{"start_at": from}).
		Where(squirrel.Lt{"start_at": to}).
		ToSql()
	if err != nil {
		return 0, 0, fmt.Errorf("%w: SumAmountForPeriod - build select query: %v", ErrBuildQuery, err)
	}

	var total float64
	var count int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&total, &count)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: SumAmountForPeriod - scan totals: %v", ErrScanRow, err)
	}

	return total, count, nil
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, tenantID string, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.exec(ctx, executor, "UpdateStatus", query, args)
}

// UpdateInterval обновляет интервал и сумму бронирования
func (r *Repository) UpdateInterval(ctx context.Context, tenantID string, id int64, startAt, endAt time.Time, amount float64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("start_at", startAt).
		Set("end_at", endAt).
		Set("amount", amount).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateInterval - build update query: %v", ErrBuildQuery, err)
	}

	return r.exec(ctx, executor, "UpdateInterval", query, args)
}

// Cancel отменяет бронирование с указанием причины
func (r *Repository) Cancel(ctx context.Context, tenantID string, id int64, reason *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.BookingCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	return r.exec(ctx, executor, "Cancel", query, args)
}

func (r *Repository) exec(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.TenantID,
		&b.ResourceID,
		&b.StartAt,
		&b.EndAt,
		&b.Purpose,
		&b.BookedBy,
		&b.Amount,
		&b.Status,
		&b.CancellationReason,
		&b.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
