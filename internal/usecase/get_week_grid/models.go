package get_week_grid

import (
	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	"github.com/m04kA/SMC-VenueConsole/pkg/types"
)

// Request модель запроса недельной сетки
type Request struct {
	VenueID string     // ID площадки из сессии
	Date    types.Date // Любая дата недели; пустая: текущая неделя
}

// Response недельная сетка
type Response struct {
	Grid *domain.Grid
}
