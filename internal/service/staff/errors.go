package staff

import "errors"

var (
	// ErrStaffNotFound возвращается, когда сотрудник не найден на площадке
	ErrStaffNotFound = errors.New("staff member not found")

	// ErrNotAtLunch возвращается, если сотрудник сейчас не на обеде
	ErrNotAtLunch = errors.New("staff member is not at lunch")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
