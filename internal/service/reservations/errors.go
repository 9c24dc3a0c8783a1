package reservations

import "errors"

var (
	// ErrEntryNotFound возвращается, когда запись агенды не найдена
	ErrEntryNotFound = errors.New("reservation not found")

	// ErrReservationPaid возвращается при попытке освободить оплаченную резервацию
	ErrReservationPaid = errors.New("reservation is paid and cannot be modified")

	// ErrPastDate возвращается для записи прошедшего дня
	ErrPastDate = errors.New("reservation date is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
