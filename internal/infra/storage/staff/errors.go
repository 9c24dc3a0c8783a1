package staff

import "errors"

var (
	// ErrStaffNotFound возвращается, когда сотрудник не найден на площадке
	ErrStaffNotFound = errors.New("staff.repository: staff member not found")

	// ErrStore возвращается при ошибке внешнего хранилища
	ErrStore = errors.New("staff.repository: store error")
)
