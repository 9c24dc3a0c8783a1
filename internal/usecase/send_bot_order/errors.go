package send_bot_order

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("send_bot_order: invalid input data")

	// ErrTemplateNotFound возвращается, когда шаблон не найден или неактивен
	ErrTemplateNotFound = errors.New("send_bot_order: template not found")

	// ErrMissingVariable возвращается, когда обязательная переменная не заполнена
	ErrMissingVariable = errors.New("send_bot_order: missing required variable")

	// ErrUnresolvedPlaceholder возвращается, когда в шаблоне остался неизвестный {{token}}
	ErrUnresolvedPlaceholder = errors.New("send_bot_order: unresolved placeholder")

	// ErrSessionNotFound возвращается, когда сессия gate не найдена или истекла
	ErrSessionNotFound = errors.New("send_bot_order: gate session not found")

	// ErrPINMismatch возвращается, когда PIN не совпал
	ErrPINMismatch = errors.New("send_bot_order: pin mismatch")

	// ErrTooManyAttempts возвращается, когда исчерпаны попытки ввода PIN
	ErrTooManyAttempts = errors.New("send_bot_order: too many pin attempts")

	// ErrBusy возвращается, пока заказ отправляется
	ErrBusy = errors.New("send_bot_order: submission in progress")

	// ErrInvalidStep возвращается, когда шаг недопустим в текущем состоянии gate
	ErrInvalidStep = errors.New("send_bot_order: invalid step")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("send_bot_order: internal error")
)
