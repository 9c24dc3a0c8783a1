package get_public_availability

import (
	"context"

	"github.com/m04kA/SMC-VenueConsole/internal/service/venues/models"
)

type VenueService interface {
	PublicAvailability(ctx context.Context, slug string) (*models.PublicAvailabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
