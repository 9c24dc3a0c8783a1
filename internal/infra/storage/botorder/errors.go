package botorder

import "errors"

var (
	// ErrTemplateNotFound возвращается, когда шаблон не найден или неактивен
	ErrTemplateNotFound = errors.New("botorder.repository: template not found")

	// ErrInvalidVariables возвращается, когда описание переменных шаблона не читается
	ErrInvalidVariables = errors.New("botorder.repository: invalid template variables")

	// ErrStore возвращается при ошибке внешнего хранилища
	ErrStore = errors.New("botorder.repository: store error")
)
