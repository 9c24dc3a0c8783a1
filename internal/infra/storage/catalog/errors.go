package catalog

import "errors"

var (
	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("catalog.repository: venue not found")

	// ErrPriceRuleNotFound возвращается, когда правило цены не найдено
	ErrPriceRuleNotFound = errors.New("catalog.repository: price rule not found")

	// ErrStore возвращается при ошибке внешнего хранилища
	ErrStore = errors.New("catalog.repository: store error")

	// ErrInvalidRow возвращается, когда строка хранилища не преобразуется в доменную модель
	ErrInvalidRow = errors.New("catalog.repository: invalid row")
)
