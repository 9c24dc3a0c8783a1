package mark_paid

import "github.com/m04kA/SMC-VenueConsole/internal/domain"

// ConfirmationPrompt текст подтверждения для отметки оплаты не в день резервации
const ConfirmationPrompt = "Esta reserva no es de hoy. Marcarla como pagada es irreversible. ¿Deseas continuar?"

// Request модель запроса на отметку оплаты
type Request struct {
	VenueID   string // ID площадки из сессии
	AgendaID  string // ID живой записи агенды
	Confirmed bool   // Подтверждение необратимой операции
}

// Response проекция оплаты после закрытия
type Response struct {
	AgendaID string
	Ledger   domain.Ledger
}
