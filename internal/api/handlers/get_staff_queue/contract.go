package get_staff_queue

import (
	"context"

	"github.com/m04kA/SMC-VenueConsole/internal/service/staff/models"
)

type StaffService interface {
	Queue(ctx context.Context, venueID string) (*models.QueueResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
