package dbmetrics

import (
	"context"
	"database/sql"
	"time"
)

// DBExecutor минимальный интерфейс выполнения запросов.
// Его реализуют *sql.DB, *sql.Tx, *dbmetrics.DB и *dbmetrics.Tx,
// поэтому репозитории не зависят от того, включены метрики или нет.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// TxExecutor исполнитель запросов внутри открытой транзакции
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

type txCtxKey struct{}

// WithTx кладет активную транзакцию в контекст.
// Репозитории достают её через GetExecutor и выполняют запросы в рамках
// той же транзакции, не зная о менеджере транзакций.
func WithTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txCtxKey{}, tx)
}

// GetExecutor возвращает транзакцию из контекста, если она там есть,
// иначе переданный по умолчанию исполнитель
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(txCtxKey{}).(TxExecutor); ok {
		return tx
	}
	return fallback
}

// IsInTransaction сообщает, выполняется ли запрос внутри транзакции
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txCtxKey{}).(TxExecutor)
	return ok
}

// MetricsCollector интерфейс сборщика метрик (реализуется pkg/metrics)
type MetricsCollector interface {
	ObserveDBQuery(operation, status string, duration time.Duration)
}

// PoolStatsSetter приемник статистики connection pool (реализуется pkg/metrics)
type PoolStatsSetter interface {
	SetPoolStats(open, inUse, idle int)
}

// DB обертка над *sql.DB, записывающая метрики каждого запроса
type DB struct {
	db      *sql.DB
	metrics MetricsCollector
}

// Wrap оборачивает *sql.DB сборщиком метрик
func Wrap(db *sql.DB, m MetricsCollector) *DB {
	return &DB{db: db, metrics: m}
}

// WrapWithDefault оборачивает БД метриками и запускает сбор статистики
// пула соединений с дефолтным интервалом (15s) до закрытия stopCh
func WrapWithDefault(db *sql.DB, m MetricsCollector, serviceName string, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, m)
	if setter, ok := m.(PoolStatsSetter); ok {
		go collectPoolStats(db, setter, 15*time.Second, stopCh)
	}
	return wrapped
}

func collectPoolStats(db *sql.DB, setter PoolStatsSetter, interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			stats := db.Stats()
			setter.SetPoolStats(stats.OpenConnections, stats.InUse, stats.Idle)
		}
	}
}

func (d *DB) observe(operation string, err error, started time.Time) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	d.metrics.ObserveDBQuery(operation, status, time.Since(started))
}

// ExecContext выполняет запрос с записью метрик
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	started := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.observe("exec", err, started)
	return res, err
}

// QueryContext выполняет запрос с записью метрик
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	started := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.observe("query", err, started)
	return rows, err
}

// QueryRowContext выполняет запрос с записью метрик
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	started := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.observe("query_row", nil, started)
	return row
}

// BeginTx открывает транзакцию, запросы внутри которой тоже попадают в метрики
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	started := time.Now()
	tx, err := d.db.BeginTx(ctx, opts)
	d.observe("begin_tx", err, started)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx, metrics: d.metrics}, nil
}

// Tx обертка над *sql.Tx с метриками
type Tx struct {
	tx      *sql.Tx
	metrics MetricsCollector
}

func (t *Tx) observe(operation string, err error, started time.Time) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	t.metrics.ObserveDBQuery(operation, status, time.Since(started))
}

// ExecContext выполняет запрос в транзакции с записью метрик
func (t *Tx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	started := time.Now()
	res, err := t.tx.ExecContext(ctx, query, args...)
	t.observe("tx_exec", err, started)
	return res, err
}

// QueryContext выполняет запрос в транзакции с записью метрик
func (t *Tx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	started := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.observe("tx_query", err, started)
	return rows, err
}

// QueryRowContext выполняет запрос в транзакции с записью метрик
func (t *Tx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	started := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.observe("tx_query_row", nil, started)
	return row
}

// Commit фиксирует транзакцию
func (t *Tx) Commit() error {
	started := time.Now()
	err := t.tx.Commit()
	t.observe("tx_commit", err, started)
	return err
}

// Rollback откатывает транзакцию
func (t *Tx) Rollback() error {
	started := time.Now()
	err := t.tx.Rollback()
	t.observe("tx_rollback", err, started)
	return err
}
