package send_bot_order

import (
	"context"

	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	"github.com/m04kA/SMC-VenueConsole/internal/service/gate"
)

// TemplateRepository шаблоны заказов
type TemplateRepository interface {
	GetTemplate(ctx context.Context, id string) (*domain.BotOrderTemplate, error)
}

// OrderRepository заказы бота
type OrderRepository interface {
	CreateOrder(ctx context.Context, order domain.BotOrder) (*domain.BotOrder, error)
}

// CatalogRepository корты площадки для переменных типа cancha
type CatalogRepository interface {
	ListCourts(ctx context.Context, venueID string) ([]domain.Court, error)
}

// GateService сессии confirmation gate
type GateService interface {
	Open(venueID, templateID string, importance domain.Importance, category domain.Category) gate.Session
	Get(venueID, id string) (gate.Session, error)
	Execute(venueID, id string) (gate.Session, error)
	Confirm(venueID, id string, yes bool) (gate.Session, error)
	SubmitPIN(venue domain.Venue, id, pin string) (gate.Session, error)
	Complete(venueID, id string, sendErr error) (gate.Session, error)
	Cancel(venueID, id string) (gate.Session, error)
}

// Metrics счётчик отправленных заказов
type Metrics interface {
	ObserveBotOrder(importance string, err error)
}

// IDGenerator генератор временных ID заказов (для тестирования)
type IDGenerator interface {
	NewID() string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
