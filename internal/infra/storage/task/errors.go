package task

import "errors"

var (
	// ErrTaskNotFound возвращается, когда задача уборки не найдена
	ErrTaskNotFound = errors.New("task.repository: housekeeping task not found")

	// ErrTaskAlreadyInProgress возвращается при попытке создать вторую
	// незавершенную задачу для ресурса (нарушение частичного уникального индекса)
	ErrTaskAlreadyInProgress = errors.New("task.repository: resource already has a task in progress")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("task.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("task.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("task.repository: failed to scan row")
)
