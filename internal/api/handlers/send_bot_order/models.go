package send_bot_order

import (
	"time"

	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	"github.com/m04kA/SMC-VenueConsole/internal/service/gate"
	sendBotOrder "github.com/m04kA/SMC-VenueConsole/internal/usecase/send_bot_order"
)

// SendBotOrderRequest HTTP request model
// Первый шаг идёт без sessionId, следующие передают ID из ответа
type SendBotOrderRequest struct {
	SessionID string                  `json:"sessionId,omitempty"`
	Step      string                  `json:"step"`
	Yes       bool                    `json:"yes,omitempty"`
	PIN       string                  `json:"pin,omitempty"`
	Values    map[string]domain.Value `json:"values,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP request в use case request
func (r *SendBotOrderRequest) ToUseCaseRequest(venue domain.Venue, templateID string) *sendBotOrder.Request {
	return &sendBotOrder.Request{
		Venue:      venue,
		TemplateID: templateID,
		SessionID:  r.SessionID,
		Step:       sendBotOrder.Step(r.Step),
		Yes:        r.Yes,
		PIN:        r.PIN,
		Values:     r.Values,
	}
}

// SendBotOrderResponse HTTP response model
type SendBotOrderResponse struct {
	Session gate.Session `json:"session"`
	Prompt  string       `json:"prompt,omitempty"`
	Message string       `json:"message,omitempty"`
	Order   *Order       `json:"order,omitempty"`
}

// Order созданный заказ бота
type Order struct {
	ID        string    `json:"id"`
	OrderType string    `json:"orderType"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *sendBotOrder.Response) *SendBotOrderResponse {
	out := &SendBotOrderResponse{
		Session: resp.Session,
		Prompt:  resp.Prompt,
		Message: resp.Message,
	}
	if resp.Order != nil {
		out.Order = &Order{
			ID:        resp.Order.ID,
			OrderType: resp.Order.OrderType,
			Message:   resp.Order.Message,
			Status:    string(resp.Order.Status),
			CreatedAt: resp.Order.CreatedAt,
		}
	}
	return out
}
