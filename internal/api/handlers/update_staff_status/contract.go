package update_staff_status

import (
	"context"

	"github.com/m04kA/SMC-VenueConsole/internal/service/staff/models"
)

type StaffService interface {
	UpdateStatus(ctx context.Context, req *models.UpdateStatusRequest) (*models.StaffResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
