package create_schedule_override

import (
	"context"

	"github.com/m04kA/SMC-VenueConsole/internal/service/schedule/models"
)

type ScheduleService interface {
	CreateClosed(ctx context.Context, req *models.CreateClosedRequest) (*models.DayResponse, error)
	CreateSpecialHours(ctx context.Context, req *models.CreateSpecialHoursRequest) (*models.DayResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
