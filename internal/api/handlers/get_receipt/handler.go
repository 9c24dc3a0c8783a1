package get_receipt

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueConsole/internal/api/handlers"
	"github.com/m04kA/SMC-VenueConsole/internal/api/middleware"
	"github.com/m04kA/SMC-VenueConsole/internal/service/reservations"
)

const (
	msgInvalidInput    = "solicitud inválida"
	msgReceiptNotFound = "comprobante no encontrado"
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

// Handle GET /api/v1/receipts/{agendaId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venue, ok := middleware.VenueFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	agendaID := mux.Vars(r)["agendaId"]

	receipt, err := h.service.GetReceipt(r.Context(), venue.ID, agendaID)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /receipts/{agendaId} - Invalid input: agenda_id=%s", agendaID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, reservations.ErrEntryNotFound):
			h.logger.Warn("GET /receipts/{agendaId} - Receipt not found: venue_id=%s, agenda_id=%s", venue.ID, agendaID)
			handlers.RespondNotFound(w, msgReceiptNotFound)

		case errors.Is(err, reservations.ErrInternal):
			h.logger.Error("GET /receipts/{agendaId} - Store error: agenda_id=%s, error=%v", agendaID, err)
			handlers.RespondBadGateway(w)

		default:
			h.logger.Error("GET /receipts/{agendaId} - Failed to get receipt: agenda_id=%s, error=%v", agendaID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /receipts/{agendaId} - Receipt returned: agenda_id=%s", agendaID)
	handlers.RespondJSON(w, http.StatusOK, receipt)
}
