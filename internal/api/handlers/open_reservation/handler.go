package open_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueConsole/internal/api/handlers"
	"github.com/m04kA/SMC-VenueConsole/internal/api/middleware"
	openReservation "github.com/m04kA/SMC-VenueConsole/internal/usecase/open_reservation"
	"github.com/m04kA/SMC-VenueConsole/pkg/types"
)

const (
	msgInvalidDate   = "fecha inválida, se espera AAAA-MM-DD"
	msgInvalidInput  = "solicitud inválida"
	msgEntryNotFound = "reserva no encontrada"
)

type Handler struct {
	useCase OpenReservationUseCase
	logger  Logger
}

func NewHandler(useCase OpenReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations/{agendaId}?date=YYYY-MM-DD
// Дата ячейки выбирает живую агенду или архив
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venue, ok := middleware.VenueFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	agendaID := mux.Vars(r)["agendaId"]
	date, err := types.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /reservations/{agendaId} - Invalid date: agenda_id=%s, error=%v", agendaID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &openReservation.Request{
		VenueID:  venue.ID,
		AgendaID: agendaID,
		Date:     date,
	})
	if err != nil {
		switch {
		case errors.Is(err, openReservation.ErrInvalidInput):
			h.logger.Warn("GET /reservations/{agendaId} - Invalid input: agenda_id=%s, error=%v", agendaID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, openReservation.ErrEntryNotFound):
			h.logger.Warn("GET /reservations/{agendaId} - Entry not found: venue_id=%s, agenda_id=%s", venue.ID, agendaID)
			handlers.RespondNotFound(w, msgEntryNotFound)

		case errors.Is(err, openReservation.ErrInternal):
			h.logger.Error("GET /reservations/{agendaId} - Store error: agenda_id=%s, error=%v", agendaID, err)
			handlers.RespondBadGateway(w)

		default:
			h.logger.Error("GET /reservations/{agendaId} - Failed to open entry: agenda_id=%s, error=%v", agendaID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations/{agendaId} - Entry opened: agenda_id=%s, source=%s", agendaID, result.Entry.Source)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
