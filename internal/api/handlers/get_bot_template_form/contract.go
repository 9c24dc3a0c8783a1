package get_bot_template_form

import (
	"context"

	"github.com/m04kA/SMC-VenueConsole/internal/service/botorders/models"
)

type BotOrderService interface {
	GetForm(ctx context.Context, venueID, templateID string) (*models.FormResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
