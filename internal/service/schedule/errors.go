package schedule

import "errors"

var (
	// ErrOverrideNotFound возвращается, когда на дату нет исключения
	ErrOverrideNotFound = errors.New("schedule override not found")

	// ErrOverrideExists возвращается при попытке создать второе исключение на ту же дату
	ErrOverrideExists = errors.New("schedule override already exists for this date")

	// ErrPastDate возвращается при попытке создать или удалить исключение прошедшей даты
	ErrPastDate = errors.New("date is in the past")

	// ErrConfirmationRequired возвращается, если действие требует явного подтверждения
	ErrConfirmationRequired = errors.New("confirmation required")

	// ErrInvalidSpecialHours возвращается при некорректном окне специального расписания
	ErrInvalidSpecialHours = errors.New("invalid special hours")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
