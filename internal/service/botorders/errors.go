package botorders

import "errors"

var (
	// ErrTemplateNotFound возвращается, когда шаблон не найден или неактивен
	ErrTemplateNotFound = errors.New("template not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
