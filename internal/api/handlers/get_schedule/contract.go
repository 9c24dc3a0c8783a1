package get_schedule

import (
	"context"

	"github.com/m04kA/SMC-VenueConsole/internal/service/schedule/models"
	"github.com/m04kA/SMC-VenueConsole/pkg/types"
)

type ScheduleService interface {
	GetDay(ctx context.Context, venueID string, date types.Date) (*models.DayResponse, error)
	ListRange(ctx context.Context, venueID string, from, to types.Date) (*models.DayListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
