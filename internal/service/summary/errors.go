package summary

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrUnknownPeriod возвращается при неизвестном периоде свертки
	ErrUnknownPeriod = errors.New("unknown rollup period")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
