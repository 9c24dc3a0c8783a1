package create_schedule_override

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueConsole/internal/api/handlers"
	"github.com/m04kA/SMC-VenueConsole/internal/api/middleware"
	"github.com/m04kA/SMC-VenueConsole/internal/service/schedule"
	"github.com/m04kA/SMC-VenueConsole/internal/service/schedule/models"
)

const (
	msgInvalidRequest      = "cuerpo de la solicitud inválido"
	msgInvalidKind         = "tipo de cronograma inválido: closed o special_hours"
	msgInvalidInput        = "datos del cronograma inválidos"
	msgInvalidSpecialHours = "horario especial inválido: la apertura debe ser anterior al cierre"
	msgPastDate            = "no se puede modificar el cronograma de una fecha pasada"
	msgOverrideExists      = "ya existe un cronograma para este día, elimínalo primero"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venue, ok := middleware.VenueFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	var req CreateOverrideRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	var (
		day *models.DayResponse
		err error
	)
	switch req.Kind {
	case kindClosed:
		day, err = h.service.CreateClosed(r.Context(), req.ToClosedRequest(venue.ID))
	case kindSpecialHours:
		day, err = h.service.CreateSpecialHours(r.Context(), req.ToSpecialHoursRequest(venue.ID))
	default:
		h.logger.Warn("POST /schedule - Invalid kind: %q", req.Kind)
		handlers.RespondBadRequest(w, msgInvalidKind)
		return
	}
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /schedule - Invalid input: venue_id=%s, error=%v", venue.ID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, schedule.ErrInvalidSpecialHours):
			h.logger.Warn("POST /schedule - Invalid special hours: venue_id=%s, open=%s, close=%s", venue.ID, req.Open, req.Close)
			handlers.RespondBadRequest(w, msgInvalidSpecialHours)

		case errors.Is(err, schedule.ErrPastDate):
			h.logger.Warn("POST /schedule - Past date: venue_id=%s, date=%s", venue.ID, req.Date)
			handlers.RespondUnprocessable(w, msgPastDate)

		case errors.Is(err, schedule.ErrConfirmationRequired):
			h.logger.Info("POST /schedule - Confirmation required: venue_id=%s, date=%s", venue.ID, req.Date)
			handlers.RespondConfirmationRequired(w, models.SpecialHoursPrompt)

		case errors.Is(err, schedule.ErrOverrideExists):
			h.logger.Warn("POST /schedule - Override exists: venue_id=%s, date=%s", venue.ID, req.Date)
			handlers.RespondConflict(w, msgOverrideExists)

		case errors.Is(err, schedule.ErrInternal):
			h.logger.Error("POST /schedule - Store error: venue_id=%s, error=%v", venue.ID, err)
			handlers.RespondBadGateway(w)

		default:
			h.logger.Error("POST /schedule - Failed to set override: venue_id=%s, error=%v", venue.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedule - Override set: venue_id=%s, date=%s, kind=%s", venue.ID, day.Date, day.Kind)
	handlers.RespondJSON(w, http.StatusCreated, day)
}
