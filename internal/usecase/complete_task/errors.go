package complete_task

import "errors"

var (
	// ErrTaskNotFound возвращается, когда задача уборки не найдена
	ErrTaskNotFound = errors.New("complete_task: task not found")

	// ErrResourceNotFound возвращается, когда ресурс задачи не найден
	ErrResourceNotFound = errors.New("complete_task: resource not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("complete_task: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("complete_task: internal error")
)
