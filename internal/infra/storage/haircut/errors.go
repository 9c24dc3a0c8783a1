package haircut

import "errors"

var (
	// ErrHaircutNotFound возвращается, когда стрижка не найдена на площадке
	ErrHaircutNotFound = errors.New("haircut.repository: haircut not found")

	// ErrStore возвращается при ошибке внешнего хранилища
	ErrStore = errors.New("haircut.repository: store error")
)
