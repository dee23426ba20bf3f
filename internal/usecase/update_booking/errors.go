package update_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrResourceNotFound возвращается, когда ресурс бронирования не найден
	ErrResourceNotFound = errors.New("update_booking: resource not found")

	// ErrCannotUpdate возвращается, когда бронирование нельзя изменить
	// (заселено, завершено или отменено)
	ErrCannotUpdate = errors.New("update_booking: booking cannot be updated")

	// ErrInvalidInterval возвращается при некорректном интервале
	ErrInvalidInterval = errors.New("update_booking: invalid booking interval")

	// ErrOverlap возвращается при пересечении с другим бронированием
	ErrOverlap = errors.New("update_booking: interval overlaps with another booking")

	// ErrOutOfOrder возвращается, когда ресурс выведен из эксплуатации
	ErrOutOfOrder = errors.New("update_booking: resource is out of order")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
)
