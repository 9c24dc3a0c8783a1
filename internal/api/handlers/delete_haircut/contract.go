package delete_haircut

import (
	"context"

	"github.com/m04kA/SMC-VenueConsole/internal/domain"
)

type HaircutService interface {
	Delete(ctx context.Context, venue domain.Venue, haircutID, pin string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
