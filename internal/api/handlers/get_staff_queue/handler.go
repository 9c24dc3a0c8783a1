package get_staff_queue

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueConsole/internal/api/handlers"
	"github.com/m04kA/SMC-VenueConsole/internal/api/middleware"
	"github.com/m04kA/SMC-VenueConsole/internal/service/staff"
)

type Handler struct {
	service StaffService
	logger  Logger
}

func NewHandler(service StaffService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/staff/queue
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venue, ok := middleware.VenueFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	queue, err := h.service.Queue(r.Context(), venue.ID)
	if err != nil {
		if errors.Is(err, staff.ErrInternal) {
			h.logger.Error("GET /staff/queue - Store error: venue_id=%s, error=%v", venue.ID, err)
			handlers.RespondBadGateway(w)
			return
		}
		h.logger.Error("GET /staff/queue - Failed to build queue: venue_id=%s, error=%v", venue.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /staff/queue - Queue built: venue_id=%s, in_queue=%d", venue.ID, len(queue.Queue))
	handlers.RespondJSON(w, http.StatusOK, queue)
}
