package open_reservation

import (
	"context"

	openReservation "github.com/m04kA/SMC-VenueConsole/internal/usecase/open_reservation"
)

type OpenReservationUseCase interface {
	Execute(ctx context.Context, req *openReservation.Request) (*openReservation.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
