package get_haircuts_today

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueConsole/internal/api/handlers"
	"github.com/m04kA/SMC-VenueConsole/internal/api/middleware"
	"github.com/m04kA/SMC-VenueConsole/internal/service/haircuts"
)

type Handler struct {
	service HaircutService
	logger  Logger
}

func NewHandler(service HaircutService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/haircuts/today
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venue, ok := middleware.VenueFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	day, err := h.service.Today(r.Context(), venue.ID)
	if err != nil {
		if errors.Is(err, haircuts.ErrInternal) {
			h.logger.Error("GET /haircuts/today - Store error: venue_id=%s, error=%v", venue.ID, err)
			handlers.RespondBadGateway(w)
			return
		}
		h.logger.Error("GET /haircuts/today - Failed to list haircuts: venue_id=%s, error=%v", venue.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /haircuts/today - Haircuts listed: venue_id=%s, count=%d", venue.ID, day.Totals.Count)
	handlers.RespondJSON(w, http.StatusOK, day)
}
