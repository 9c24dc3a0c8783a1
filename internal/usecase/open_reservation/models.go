package open_reservation

import (
	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	"github.com/m04kA/SMC-VenueConsole/pkg/types"
)

// Request модель запроса на открытие записи агенды
type Request struct {
	VenueID  string     // ID площадки из сессии
	AgendaID string     // ID записи агенды
	Date     types.Date // Дата ячейки, выбирает живую агенду или архив
}

// Response запись с проекцией оплаты
type Response struct {
	Entry     domain.ScheduleEntry
	Ledger    domain.Ledger
	CourtName string
	Time      types.TimeString
	ReadOnly  bool // Архивная запись или оплаченная резервация
	IsToday   bool // Отметка оплаты не сегодня требует подтверждения
}
