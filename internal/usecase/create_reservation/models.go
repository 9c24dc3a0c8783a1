package create_reservation

import (
	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	"github.com/m04kA/SMC-VenueConsole/pkg/types"
)

// Request модель запроса на резервацию или блокировку ячейки
type Request struct {
	VenueID       string     // ID площадки из сессии
	Date          types.Date // Дата ячейки
	CourtID       string     // ID корта
	SlotID        string     // ID базового слота
	Block         bool       // true: блокировка без клиента
	CustomerName  string     // Имя клиента (обязательно для резервации)
	CustomerPhone string     // Телефон клиента (опционально)
	Deposit       int64      // Абон (только для резервации)
}

// Response результат записи
type Response struct {
	Entry   domain.ScheduleEntry
	Payment *domain.PaymentRecord // nil для блокировки
	Price   *int64                // Цена слота; nil: не определена
}
