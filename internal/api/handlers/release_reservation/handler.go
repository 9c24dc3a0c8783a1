package release_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueConsole/internal/api/handlers"
	"github.com/m04kA/SMC-VenueConsole/internal/api/middleware"
	"github.com/m04kA/SMC-VenueConsole/internal/service/reservations"
	"github.com/m04kA/SMC-VenueConsole/internal/service/reservations/models"
)

const (
	msgInvalidInput    = "solicitud inválida"
	msgEntryNotFound   = "reserva no encontrada"
	msgReservationPaid = "la reserva está pagada y no puede modificarse"
	msgPastDate        = "no se pueden modificar reservas de fechas pasadas"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/reservations/{agendaId}
// Освобождает ячейку: удаляет оплату и запись агенды
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venue, ok := middleware.VenueFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	agendaID := mux.Vars(r)["agendaId"]

	result, err := h.service.Release(r.Context(), &models.ReleaseRequest{
		VenueID:  venue.ID,
		AgendaID: agendaID,
	})
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("DELETE /reservations/{agendaId} - Invalid input: agenda_id=%s", agendaID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, reservations.ErrEntryNotFound):
			h.logger.Warn("DELETE /reservations/{agendaId} - Entry not found: venue_id=%s, agenda_id=%s", venue.ID, agendaID)
			handlers.RespondNotFound(w, msgEntryNotFound)

		case errors.Is(err, reservations.ErrReservationPaid):
			h.logger.Warn("DELETE /reservations/{agendaId} - Paid reservation: agenda_id=%s", agendaID)
			handlers.RespondConflict(w, msgReservationPaid)

		case errors.Is(err, reservations.ErrPastDate):
			h.logger.Warn("DELETE /reservations/{agendaId} - Past date: agenda_id=%s", agendaID)
			handlers.RespondUnprocessable(w, msgPastDate)

		case errors.Is(err, reservations.ErrInternal):
			h.logger.Error("DELETE /reservations/{agendaId} - Store error: agenda_id=%s, error=%v", agendaID, err)
			handlers.RespondBadGateway(w)

		default:
			h.logger.Error("DELETE /reservations/{agendaId} - Failed to release: agenda_id=%s, error=%v", agendaID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /reservations/{agendaId} - Cell released: venue_id=%s, agenda_id=%s, payment_deleted=%t",
		venue.ID, agendaID, result.PaymentDeleted)
	handlers.RespondJSON(w, http.StatusOK, result)
}
