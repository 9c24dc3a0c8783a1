package cronograma

import "errors"

var (
	// ErrOverrideNotFound возвращается, когда на дату нет исключения
	ErrOverrideNotFound = errors.New("cronograma.repository: override not found")

	// ErrStore возвращается при ошибке внешнего хранилища
	ErrStore = errors.New("cronograma.repository: store error")
)
