package get_venue

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueConsole/internal/api/handlers"
	"github.com/m04kA/SMC-VenueConsole/internal/api/middleware"
	"github.com/m04kA/SMC-VenueConsole/internal/service/venues"
)

type Handler struct {
	service VenueService
	logger  Logger
}

func NewHandler(service VenueService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/venue
// Площадка текущего владельца с кортами и слотами
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venue, ok := middleware.VenueFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	profile, err := h.service.GetProfile(r.Context(), venue)
	if err != nil {
		if errors.Is(err, venues.ErrInternal) {
			h.logger.Error("GET /venue - Store error: venue_id=%s, error=%v", venue.ID, err)
			handlers.RespondBadGateway(w)
			return
		}
		h.logger.Error("GET /venue - Failed to get venue: venue_id=%s, error=%v", venue.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /venue - Venue returned: venue_id=%s", venue.ID)
	handlers.RespondJSON(w, http.StatusOK, profile)
}
