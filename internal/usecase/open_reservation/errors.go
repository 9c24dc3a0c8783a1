package open_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("open_reservation: invalid input data")

	// ErrEntryNotFound возвращается, когда запись агенды не найдена
	ErrEntryNotFound = errors.New("open_reservation: entry not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("open_reservation: internal error")
)
