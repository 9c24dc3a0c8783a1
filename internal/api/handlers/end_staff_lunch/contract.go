package end_staff_lunch

import (
	"context"

	"github.com/m04kA/SMC-VenueConsole/internal/service/staff/models"
)

type StaffService interface {
	EndLunch(ctx context.Context, venueID, staffID string) (*models.StaffResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
