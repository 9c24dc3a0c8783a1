package update_haircut

import (
	"context"

	"github.com/m04kA/SMC-VenueConsole/internal/service/haircuts/models"
)

type HaircutService interface {
	Update(ctx context.Context, req *models.UpdateRequest) (*models.HaircutResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
