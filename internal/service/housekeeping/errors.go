package housekeeping

import "errors"

var (
	// ErrTaskNotFound возвращается, когда задача уборки не найдена
	ErrTaskNotFound = errors.New("task not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
