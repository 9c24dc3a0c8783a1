package payment

import "errors"

var (
	// ErrPaymentNotFound возвращается, когда у записи агенды нет оплаты
	ErrPaymentNotFound = errors.New("payment.repository: payment not found")

	// ErrStore возвращается при ошибке внешнего хранилища
	ErrStore = errors.New("payment.repository: store error")
)
