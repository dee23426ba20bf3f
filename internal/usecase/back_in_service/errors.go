package back_in_service

import "errors"

var (
	// ErrResourceNotFound возвращается, когда ресурс не найден
	ErrResourceNotFound = errors.New("back_in_service: resource not found")

	// ErrNotOutOfOrder возвращается, когда ресурс не выведен из эксплуатации
	ErrNotOutOfOrder = errors.New("back_in_service: resource is not out of order")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("back_in_service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("back_in_service: internal error")
)
