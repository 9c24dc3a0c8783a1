package send_bot_order

import (
	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	"github.com/m04kA/SMC-VenueConsole/internal/service/gate"
)

// Step действие пользователя в диалоге шаблона
type Step string

const (
	StepExecute Step = "execute" // Кнопка "выполнить"
	StepConfirm Step = "confirm" // Ответ на второй промпт
	StepPIN     Step = "pin"     // Ввод PIN площадки
	StepCancel  Step = "cancel"  // Закрытие диалога
)

// SecondConfirmPrompt текст второго подтверждения
const SecondConfirmPrompt = "Esta orden es de alta importancia. ¿Confirmas el envío?"

// PINPrompt текст запроса PIN
const PINPrompt = "Orden crítica: ingresa el PIN del recinto para continuar."

// Request модель запроса шага отправки заказа боту
type Request struct {
	Venue      domain.Venue            // Площадка из сессии
	TemplateID string                  // ID шаблона
	SessionID  string                  // ID сессии gate; пустой открывает новую
	Step       Step                    // Действие
	Yes        bool                    // Ответ на второй промпт
	PIN        string                  // PIN для критичных заказов
	Values     map[string]domain.Value // Значения формы
}

// Response состояние диалога после шага
type Response struct {
	Session gate.Session
	Prompt  string           // Текст промпта, если gate ждёт ответа
	Message string           // Сообщение после подстановки
	Order   *domain.BotOrder // Заказ, если отправка прошла
}
