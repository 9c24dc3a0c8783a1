package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueConsole/internal/api/handlers"
	"github.com/m04kA/SMC-VenueConsole/internal/api/middleware"
	createReservation "github.com/m04kA/SMC-VenueConsole/internal/usecase/create_reservation"
)

const (
	msgInvalidRequest  = "cuerpo de la solicitud inválido"
	msgInvalidInput    = "datos de la reserva inválidos"
	msgCourtNotFound   = "cancha no encontrada"
	msgSlotNotFound    = "horario no encontrado"
	msgPastDate        = "no se puede reservar en una fecha pasada"
	msgSlotUnavailable = "el recinto no atiende en este horario"
	msgInvalidDeposit  = "el abono no puede ser negativo ni mayor al precio"
	msgSlotTaken       = "este horario acaba de ser tomado, actualiza"
	msgReservationPaid = "la reserva está pagada y no puede modificarse"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venue, ok := middleware.VenueFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(venue.ID))
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: venue_id=%s, error=%v", venue.ID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createReservation.ErrCourtNotFound):
			h.logger.Warn("POST /reservations - Court not found: venue_id=%s, court_id=%s", venue.ID, req.CourtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, createReservation.ErrSlotNotFound):
			h.logger.Warn("POST /reservations - Slot not found: venue_id=%s, slot_id=%s", venue.ID, req.SlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, createReservation.ErrPastDate):
			h.logger.Warn("POST /reservations - Past date: venue_id=%s, date=%s", venue.ID, req.Date)
			handlers.RespondUnprocessable(w, msgPastDate)

		case errors.Is(err, createReservation.ErrSlotUnavailable):
			h.logger.Warn("POST /reservations - Slot unavailable: venue_id=%s, date=%s, slot_id=%s", venue.ID, req.Date, req.SlotID)
			handlers.RespondUnprocessable(w, msgSlotUnavailable)

		case errors.Is(err, createReservation.ErrInvalidDeposit):
			h.logger.Warn("POST /reservations - Invalid deposit: venue_id=%s, deposit=%d", venue.ID, req.Deposit)
			handlers.RespondUnprocessable(w, msgInvalidDeposit)

		case errors.Is(err, createReservation.ErrSlotTaken):
			h.logger.Warn("POST /reservations - Slot taken: venue_id=%s, date=%s, court_id=%s, slot_id=%s", venue.ID, req.Date, req.CourtID, req.SlotID)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createReservation.ErrReservationPaid):
			h.logger.Warn("POST /reservations - Paid reservation: venue_id=%s, date=%s, court_id=%s, slot_id=%s", venue.ID, req.Date, req.CourtID, req.SlotID)
			handlers.RespondConflict(w, msgReservationPaid)

		case errors.Is(err, createReservation.ErrInternal):
			h.logger.Error("POST /reservations - Store error: venue_id=%s, error=%v", venue.ID, err)
			handlers.RespondBadGateway(w)

		default:
			h.logger.Error("POST /reservations - Failed to write entry: venue_id=%s, error=%v", venue.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Entry written: venue_id=%s, agenda_id=%s, status=%s", venue.ID, result.Entry.ID, result.Entry.Status)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
