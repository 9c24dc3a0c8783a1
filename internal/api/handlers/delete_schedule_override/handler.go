package delete_schedule_override

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueConsole/internal/api/handlers"
	"github.com/m04kA/SMC-VenueConsole/internal/api/middleware"
	"github.com/m04kA/SMC-VenueConsole/internal/service/schedule"
	"github.com/m04kA/SMC-VenueConsole/internal/service/schedule/models"
	"github.com/m04kA/SMC-VenueConsole/pkg/types"
)

const (
	msgInvalidDate    = "fecha inválida, se espera AAAA-MM-DD"
	msgInvalidRequest = "cuerpo de la solicitud inválido"
	msgNotFound       = "no hay cronograma para este día"
	msgPastDate       = "no se puede modificar el cronograma de una fecha pasada"
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

// Handle DELETE /api/v1/schedule/{date}
// Тело опционально: {"confirmed": true} после промпта 428
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venue, ok := middleware.VenueFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	date, err := types.ParseDate(mux.Vars(r)["date"])
	if err != nil {
		h.logger.Warn("DELETE /schedule/{date} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var req DeleteOverrideRequest
	if r.ContentLength != 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("DELETE /schedule/{date} - Invalid request body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)
			return
		}
	}

	err = h.service.Delete(r.Context(), &models.DeleteRequest{
		VenueID:   venue.ID,
		Date:      date,
		Confirmed: req.Confirmed,
	})
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("DELETE /schedule/{date} - Invalid input: date=%s", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, schedule.ErrPastDate):
			h.logger.Warn("DELETE /schedule/{date} - Past date: venue_id=%s, date=%s", venue.ID, date)
			handlers.RespondUnprocessable(w, msgPastDate)

		case errors.Is(err, schedule.ErrConfirmationRequired):
			h.logger.Info("DELETE /schedule/{date} - Confirmation required: venue_id=%s, date=%s", venue.ID, date)
			handlers.RespondConfirmationRequired(w, models.DeletePrompt)

		case errors.Is(err, schedule.ErrOverrideNotFound):
			h.logger.Warn("DELETE /schedule/{date} - Override not found: venue_id=%s, date=%s", venue.ID, date)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, schedule.ErrInternal):
			h.logger.Error("DELETE /schedule/{date} - Store error: venue_id=%s, error=%v", venue.ID, err)
			handlers.RespondBadGateway(w)

		default:
			h.logger.Error("DELETE /schedule/{date} - Failed to delete override: venue_id=%s, error=%v", venue.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /schedule/{date} - Override deleted: venue_id=%s, date=%s", venue.ID, date)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
