package list_bot_templates

import (
	"context"

	"github.com/m04kA/SMC-VenueConsole/internal/service/botorders/models"
)

type BotOrderService interface {
	ListTemplates(ctx context.Context) (*models.TemplateListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
