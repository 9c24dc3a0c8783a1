package haircuts

import "errors"

var (
	// ErrHaircutNotFound возвращается, когда стрижка не найдена на площадке
	ErrHaircutNotFound = errors.New("haircut not found")

	// ErrStaffNotFound возвращается, когда сотрудник не найден на площадке
	ErrStaffNotFound = errors.New("staff member not found")

	// ErrStaffNotWorking возвращается, если сотрудник на обеде или не работает сегодня
	ErrStaffNotWorking = errors.New("staff member is not taking clients")

	// ErrPastDate возвращается при попытке изменить стрижку прошлого дня
	ErrPastDate = errors.New("haircut belongs to a past day")

	// ErrPINMismatch возвращается, когда PIN не совпал с PIN площадки
	ErrPINMismatch = errors.New("pin mismatch")

	// ErrTooManyAttempts возвращается, когда площадка исчерпала попытки ввода PIN
	ErrTooManyAttempts = errors.New("too many pin attempts")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
