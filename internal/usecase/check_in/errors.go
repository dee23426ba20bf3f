package check_in

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("check_in: booking not found")

	// ErrResourceNotFound возвращается, когда ресурс бронирования не найден
	ErrResourceNotFound = errors.New("check_in: resource not found")

	// ErrNotConfirmed возвращается, когда бронирование нельзя заселить
	// (отменено или уже завершено)
	ErrNotConfirmed = errors.New("check_in: booking is not confirmed")

	// ErrOutsideWindow возвращается, когда текущий момент вне интервала бронирования
	ErrOutsideWindow = errors.New("check_in: current time is outside the booking interval")

	// ErrResourceOutOfOrder возвращается, когда ресурс выведен из эксплуатации
	ErrResourceOutOfOrder = errors.New("check_in: resource is out of order")

	// ErrIllegalTransition возвращается при недопустимом переходе жизненного цикла
	ErrIllegalTransition = errors.New("check_in: illegal lifecycle transition")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_in: internal error")
)
