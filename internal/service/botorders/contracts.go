package botorders

import (
	"context"

	"github.com/m04kA/SMC-VenueConsole/internal/domain"
)

// BotOrderRepository интерфейс репозитория шаблонов и заказов бота
type BotOrderRepository interface {
	ListTemplates(ctx context.Context) ([]domain.BotOrderTemplate, error)
	GetTemplate(ctx context.Context, id string) (*domain.BotOrderTemplate, error)
	ListOrders(ctx context.Context, venueID string, limit int) ([]domain.BotOrder, error)
}

// CatalogRepository корты площадки для полей выбора корта
type CatalogRepository interface {
	ListCourts(ctx context.Context, venueID string) ([]domain.Court, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
