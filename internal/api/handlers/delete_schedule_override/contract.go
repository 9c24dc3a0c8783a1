package delete_schedule_override

import (
	"context"

	"github.com/m04kA/SMC-VenueConsole/internal/service/schedule/models"
)

type ScheduleService interface {
	Delete(ctx context.Context, req *models.DeleteRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
