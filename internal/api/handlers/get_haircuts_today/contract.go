package get_haircuts_today

import (
	"context"

	"github.com/m04kA/SMC-VenueConsole/internal/service/haircuts/models"
)

type HaircutService interface {
	Today(ctx context.Context, venueID string) (*models.DayResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
