package gate

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена, истекла или принадлежит другой площадке
	ErrSessionNotFound = errors.New("gate: session not found")

	// ErrInvalidTransition возвращается, когда действие недопустимо в текущем состоянии
	ErrInvalidTransition = errors.New("gate: invalid transition")

	// ErrBusy возвращается, пока заказ отправляется
	ErrBusy = errors.New("gate: order submission in progress")

	// ErrPINMismatch возвращается, когда PIN не совпал с PIN площадки
	ErrPINMismatch = errors.New("gate: pin mismatch")

	// ErrTooManyAttempts возвращается, когда площадка исчерпала попытки ввода PIN
	ErrTooManyAttempts = errors.New("gate: too many pin attempts")
)
