package create_booking

import "errors"

var (
	// ErrResourceNotFound возвращается, когда ресурс не найден
	ErrResourceNotFound = errors.New("create_booking: resource not found")

	// ErrInvalidInterval возвращается при некорректном интервале
	// (end <= start или длительность меньше минимальной)
	ErrInvalidInterval = errors.New("create_booking: invalid interval")

	// ErrOutOfOrder возвращается, когда ресурс выведен из эксплуатации
	ErrOutOfOrder = errors.New("create_booking: resource is out of order")

	// ErrOverlap возвращается при пересечении с существующим бронированием
	ErrOverlap = errors.New("create_booking: interval overlaps an existing booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
