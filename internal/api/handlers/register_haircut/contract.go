package register_haircut

import (
	"context"

	"github.com/m04kA/SMC-VenueConsole/internal/service/haircuts/models"
)

type HaircutService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.HaircutResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
