package check_out

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("check_out: booking not found")

	// ErrResourceNotFound возвращается, когда ресурс бронирования не найден
	ErrResourceNotFound = errors.New("check_out: resource not found")

	// ErrNotCheckedIn возвращается, когда бронирование не в статусе checked_in
	ErrNotCheckedIn = errors.New("check_out: booking is not checked in")

	// ErrIllegalTransition возвращается при недопустимом переходе жизненного цикла
	ErrIllegalTransition = errors.New("check_out: illegal lifecycle transition")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_out: internal error")
)
