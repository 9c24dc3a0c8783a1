package mark_paid

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("mark_paid: invalid input data")

	// ErrEntryNotFound возвращается, когда живая запись агенды не найдена
	ErrEntryNotFound = errors.New("mark_paid: entry not found")

	// ErrNotReservation возвращается для блокировки: у неё нет оплаты
	ErrNotReservation = errors.New("mark_paid: entry is not a reservation")

	// ErrPastDate возвращается для записи прошедшего дня
	ErrPastDate = errors.New("mark_paid: date is in the past")

	// ErrConfirmationRequired возвращается, когда отметка не сегодня не подтверждена
	ErrConfirmationRequired = errors.New("mark_paid: confirmation required")

	// ErrReservationPaid возвращается, когда резервация уже оплачена
	ErrReservationPaid = errors.New("mark_paid: reservation already paid")

	// ErrPriceUndetermined возвращается, когда итог резервации не определён
	ErrPriceUndetermined = errors.New("mark_paid: price undetermined")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("mark_paid: internal error")
)
