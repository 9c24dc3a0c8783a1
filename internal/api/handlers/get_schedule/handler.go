package get_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueConsole/internal/api/handlers"
	"github.com/m04kA/SMC-VenueConsole/internal/api/middleware"
	"github.com/m04kA/SMC-VenueConsole/internal/service/schedule"
	"github.com/m04kA/SMC-VenueConsole/pkg/types"
)

const (
	msgInvalidDate   = "fecha inválida, se espera AAAA-MM-DD"
	msgInvalidPeriod = "período inválido: máximo 62 días"
	msgMissingParams = "se requiere date o from y to"
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

// Handle GET /api/v1/schedule
// Query params: date (один день) или from, to (период)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venue, ok := middleware.VenueFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	query := r.URL.Query()
	switch {
	case query.Get("date") != "":
		date, err := types.ParseDate(query.Get("date"))
		if err != nil {
			h.logger.Warn("GET /schedule - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		day, err := h.service.GetDay(r.Context(), venue.ID, date)
		if err != nil {
			h.respondError(w, venue.ID, err)
			return
		}
		h.logger.Info("GET /schedule - Day returned: venue_id=%s, date=%s, kind=%s", venue.ID, date, day.Kind)
		handlers.RespondJSON(w, http.StatusOK, day)

	case query.Get("from") != "" && query.Get("to") != "":
		from, err := types.ParseDate(query.Get("from"))
		if err != nil {
			h.logger.Warn("GET /schedule - Invalid from: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		to, err := types.ParseDate(query.Get("to"))
		if err != nil {
			h.logger.Warn("GET /schedule - Invalid to: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		days, err := h.service.ListRange(r.Context(), venue.ID, from, to)
		if err != nil {
			h.respondError(w, venue.ID, err)
			return
		}
		h.logger.Info("GET /schedule - Range returned: venue_id=%s, from=%s, to=%s, overrides=%d", venue.ID, from, to, len(days.Days))
		handlers.RespondJSON(w, http.StatusOK, days)

	default:
		h.logger.Warn("GET /schedule - Missing query params")
		handlers.RespondBadRequest(w, msgMissingParams)
	}
}

func (h *Handler) respondError(w http.ResponseWriter, venueID string, err error) {
	switch {
	case errors.Is(err, schedule.ErrInvalidInput):
		h.logger.Warn("GET /schedule - Invalid input: venue_id=%s, error=%v", venueID, err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)

	case errors.Is(err, schedule.ErrInternal):
		h.logger.Error("GET /schedule - Store error: venue_id=%s, error=%v", venueID, err)
		handlers.RespondBadGateway(w)

	default:
		h.logger.Error("GET /schedule - Failed to get schedule: venue_id=%s, error=%v", venueID, err)
		handlers.RespondInternalError(w)
	}
}
