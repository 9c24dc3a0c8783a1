package get_receipt

import (
	"context"

	"github.com/m04kA/SMC-VenueConsole/internal/service/reservations/models"
)

type ReservationService interface {
	GetReceipt(ctx context.Context, venueID, agendaID string) (*models.ReceiptResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
