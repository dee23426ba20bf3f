package cancel_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("cancel_booking: booking not found")

	// ErrResourceNotFound возвращается, когда ресурс бронирования не найден
	ErrResourceNotFound = errors.New("cancel_booking: resource not found")

	// ErrCannotCancel возвращается, когда бронирование нельзя отменить
	// (заселено, завершено или уже отменено)
	ErrCannotCancel = errors.New("cancel_booking: booking cannot be cancelled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_booking: internal error")
)
