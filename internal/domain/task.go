package domain

import "time"

// TaskStatus статус задачи уборки
type TaskStatus string

const (
	TaskInProgress TaskStatus = "in_progress"
	TaskDone       TaskStatus = "done"
)

// HousekeepingTask задача уборки, создаваемая при выезде или вручную.
// Инвариант: в любой момент времени у ресурса не более одной задачи
// in_progress (поддерживается сериализацией записи и частичным
// уникальным индексом в БД).
type HousekeepingTask struct {
	ID          int64
	TenantID    string
	ResourceID  int64
	Status      TaskStatus
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// IsDone возвращает true, если задача уже завершена
func (t *HousekeepingTask) IsDone() bool {
	return t.Status == TaskDone
}

// TasksFilter фильтр для выборки задач уборки
type TasksFilter struct {
	TenantID   string
	ResourceID *int64
	Status     *TaskStatus
}
