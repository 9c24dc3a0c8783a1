package get_bot_orders

import (
	"context"

	"github.com/m04kA/SMC-VenueConsole/internal/service/botorders/models"
)

type BotOrderService interface {
	Board(ctx context.Context, venueID string) (*models.BoardResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
