package release_reservation

import (
	"context"

	"github.com/m04kA/SMC-VenueConsole/internal/service/reservations/models"
)

type ReservationService interface {
	Release(ctx context.Context, req *models.ReleaseRequest) (*models.ReleaseResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
