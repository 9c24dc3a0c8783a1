package send_bot_order

import (
	"context"

	sendBotOrder "github.com/m04kA/SMC-VenueConsole/internal/usecase/send_bot_order"
)

type SendBotOrderUseCase interface {
	Execute(ctx context.Context, req *sendBotOrder.Request) (*sendBotOrder.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
