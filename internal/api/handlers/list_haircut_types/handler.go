package list_haircut_types

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

// Handle GET /api/v1/haircuts/types
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venue, ok := middleware.VenueFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	list, err := h.service.ListTypes(r.Context(), venue.ID)
	if err != nil {
		if errors.Is(err, haircuts.ErrInternal) {
			h.logger.Error("GET /haircuts/types - Store error: venue_id=%s, error=%v", venue.ID, err)
			handlers.RespondBadGateway(w)
			return
		}
		h.logger.Error("GET /haircuts/types - Failed to list types: venue_id=%s, error=%v", venue.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /haircuts/types - Types listed: venue_id=%s, count=%d", venue.ID, len(list.Types))
	handlers.RespondJSON(w, http.StatusOK, list)
}
