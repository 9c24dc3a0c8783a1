package get_accounting

import (
	"context"

	"github.com/m04kA/SMC-VenueConsole/internal/service/haircuts/models"
)

type HaircutService interface {
	Report(ctx context.Context, req *models.ReportRequest) (*models.ReportResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
