package mark_paid

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueConsole/internal/api/handlers"
	"github.com/m04kA/SMC-VenueConsole/internal/api/middleware"
	markPaid "github.com/m04kA/SMC-VenueConsole/internal/usecase/mark_paid"
)

const (
	msgInvalidRequest    = "cuerpo de la solicitud inválido"
	msgInvalidInput      = "solicitud inválida"
	msgEntryNotFound     = "reserva no encontrada"
	msgNotReservation    = "un bloqueo no tiene pagos"
	msgAlreadyPaid       = "la reserva ya está pagada"
	msgPastDate          = "no se pueden modificar reservas de fechas pasadas"
	msgPriceUndetermined = "no se pudo determinar el precio de la reserva"
)

type Handler struct {
	useCase MarkPaidUseCase
	logger  Logger
}

func NewHandler(useCase MarkPaidUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/{agendaId}/pay
// Тело опционально: {"confirmed": true} после промпта 428
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venue, ok := middleware.VenueFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	agendaID := mux.Vars(r)["agendaId"]

	var req MarkPaidRequest
	if r.ContentLength != 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("POST /reservations/{agendaId}/pay - Invalid request body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &markPaid.Request{
		VenueID:   venue.ID,
		AgendaID:  agendaID,
		Confirmed: req.Confirmed,
	})
	if err != nil {
		switch {
		case errors.Is(err, markPaid.ErrInvalidInput):
			h.logger.Warn("POST /reservations/{agendaId}/pay - Invalid input: agenda_id=%s, error=%v", agendaID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, markPaid.ErrEntryNotFound):
			h.logger.Warn("POST /reservations/{agendaId}/pay - Entry not found: venue_id=%s, agenda_id=%s", venue.ID, agendaID)
			handlers.RespondNotFound(w, msgEntryNotFound)

		case errors.Is(err, markPaid.ErrNotReservation):
			h.logger.Warn("POST /reservations/{agendaId}/pay - Entry is a block: agenda_id=%s", agendaID)
			handlers.RespondUnprocessable(w, msgNotReservation)

		case errors.Is(err, markPaid.ErrPastDate):
			h.logger.Warn("POST /reservations/{agendaId}/pay - Past date: agenda_id=%s", agendaID)
			handlers.RespondUnprocessable(w, msgPastDate)

		case errors.Is(err, markPaid.ErrConfirmationRequired):
			h.logger.Info("POST /reservations/{agendaId}/pay - Confirmation required: agenda_id=%s", agendaID)
			handlers.RespondConfirmationRequired(w, markPaid.ConfirmationPrompt)

		case errors.Is(err, markPaid.ErrReservationPaid):
			h.logger.Warn("POST /reservations/{agendaId}/pay - Already paid: agenda_id=%s", agendaID)
			handlers.RespondConflict(w, msgAlreadyPaid)

		case errors.Is(err, markPaid.ErrPriceUndetermined):
			h.logger.Warn("POST /reservations/{agendaId}/pay - Price undetermined: agenda_id=%s", agendaID)
			handlers.RespondUnprocessable(w, msgPriceUndetermined)

		case errors.Is(err, markPaid.ErrInternal):
			h.logger.Error("POST /reservations/{agendaId}/pay - Store error: agenda_id=%s, error=%v", agendaID, err)
			handlers.RespondBadGateway(w)

		default:
			h.logger.Error("POST /reservations/{agendaId}/pay - Failed to mark paid: agenda_id=%s, error=%v", agendaID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/{agendaId}/pay - Reservation paid: venue_id=%s, agenda_id=%s, total=%d", venue.ID, agendaID, result.Ledger.Total)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
