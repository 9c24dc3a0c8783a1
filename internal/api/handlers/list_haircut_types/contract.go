package list_haircut_types

import (
	"context"

	"github.com/m04kA/SMC-VenueConsole/internal/service/haircuts/models"
)

type HaircutService interface {
	ListTypes(ctx context.Context, venueID string) (*models.TypeListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
