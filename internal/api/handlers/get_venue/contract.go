package get_venue

import (
	"context"

	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	"github.com/m04kA/SMC-VenueConsole/internal/service/venues/models"
)

type VenueService interface {
	GetProfile(ctx context.Context, venue domain.Venue) (*models.VenueResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
