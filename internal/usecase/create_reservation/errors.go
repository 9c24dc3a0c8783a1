package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrCourtNotFound возвращается, когда корт не найден или неактивен
	ErrCourtNotFound = errors.New("create_reservation: court not found")

	// ErrSlotNotFound возвращается, когда слот не найден или неактивен
	ErrSlotNotFound = errors.New("create_reservation: time slot not found")

	// ErrPastDate возвращается при попытке записи на прошедшую дату
	ErrPastDate = errors.New("create_reservation: date is in the past")

	// ErrSlotUnavailable возвращается, когда слот закрыт исключением расписания
	ErrSlotUnavailable = errors.New("create_reservation: slot unavailable on this date")

	// ErrInvalidDeposit возвращается, когда абон отрицательный или больше цены
	ErrInvalidDeposit = errors.New("create_reservation: invalid deposit")

	// ErrSlotTaken возвращается, когда ячейку успели занять
	ErrSlotTaken = errors.New("create_reservation: slot already taken")

	// ErrReservationPaid возвращается при попытке перезаписать оплаченную резервацию
	ErrReservationPaid = errors.New("create_reservation: reservation is paid")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
