package end_staff_lunch

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueConsole/internal/api/handlers"
	"github.com/m04kA/SMC-VenueConsole/internal/api/middleware"
	"github.com/m04kA/SMC-VenueConsole/internal/service/staff"
)

const (
	msgInvalidInput = "solicitud inválida"
	msgNotFound     = "miembro del equipo no encontrado"
	msgNotAtLunch   = "el barbero no está en colación"
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

// Handle POST /api/v1/staff/{staffId}/end-lunch
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venue, ok := middleware.VenueFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	staffID := mux.Vars(r)["staffId"]

	member, err := h.service.EndLunch(r.Context(), venue.ID, staffID)
	if err != nil {
		switch {
		case errors.Is(err, staff.ErrInvalidInput):
			h.logger.Warn("POST /staff/{staffId}/end-lunch - Invalid input: staff_id=%s", staffID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, staff.ErrStaffNotFound):
			h.logger.Warn("POST /staff/{staffId}/end-lunch - Staff not found: venue_id=%s, staff_id=%s", venue.ID, staffID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, staff.ErrNotAtLunch):
			h.logger.Warn("POST /staff/{staffId}/end-lunch - Not at lunch: staff_id=%s", staffID)
			handlers.RespondConflict(w, msgNotAtLunch)

		case errors.Is(err, staff.ErrInternal):
			h.logger.Error("POST /staff/{staffId}/end-lunch - Store error: staff_id=%s, error=%v", staffID, err)
			handlers.RespondBadGateway(w)

		default:
			h.logger.Error("POST /staff/{staffId}/end-lunch - Failed to end lunch: staff_id=%s, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /staff/{staffId}/end-lunch - Lunch ended: venue_id=%s, staff_id=%s", venue.ID, staffID)
	handlers.RespondJSON(w, http.StatusOK, member)
}
