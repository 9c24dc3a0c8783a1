package pricing

import "errors"

var (
	// ErrRuleNotFound возвращается, когда правило цены не найдено
	ErrRuleNotFound = errors.New("price rule not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrOverlappingRules возвращается, когда новое правило пересекается с существующим
	ErrOverlappingRules = errors.New("price rule overlaps an existing rule")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
