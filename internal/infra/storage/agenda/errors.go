package agenda

import "errors"

var (
	// ErrEntryNotFound возвращается, когда запись агенды не найдена
	ErrEntryNotFound = errors.New("agenda.repository: entry not found")

	// ErrSlotTaken возвращается, когда ячейка уже занята другой записью
	ErrSlotTaken = errors.New("agenda.repository: slot already taken")

	// ErrArchiveReadOnly возвращается при попытке изменить архив
	ErrArchiveReadOnly = errors.New("agenda.repository: archive is read-only")

	// ErrStore возвращается при ошибке внешнего хранилища
	ErrStore = errors.New("agenda.repository: store error")
)
