package update_staff_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueConsole/internal/api/handlers"
	"github.com/m04kA/SMC-VenueConsole/internal/api/middleware"
	"github.com/m04kA/SMC-VenueConsole/internal/service/staff"
)

const (
	msgInvalidRequest = "cuerpo de la solicitud inválido"
	msgInvalidStatus  = "estado inválido: revisa el estado y los horarios"
	msgNotFound       = "miembro del equipo no encontrado"
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

// Handle PUT /api/v1/staff/{staffId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venue, ok := middleware.VenueFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	staffID := mux.Vars(r)["staffId"]

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /staff/{staffId}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	member, err := h.service.UpdateStatus(r.Context(), req.ToServiceRequest(venue.ID, staffID))
	if err != nil {
		switch {
		case errors.Is(err, staff.ErrInvalidInput):
			h.logger.Warn("PUT /staff/{staffId}/status - Invalid status: staff_id=%s, error=%v", staffID, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, staff.ErrStaffNotFound):
			h.logger.Warn("PUT /staff/{staffId}/status - Staff not found: venue_id=%s, staff_id=%s", venue.ID, staffID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, staff.ErrInternal):
			h.logger.Error("PUT /staff/{staffId}/status - Store error: staff_id=%s, error=%v", staffID, err)
			handlers.RespondBadGateway(w)

		default:
			h.logger.Error("PUT /staff/{staffId}/status - Failed to update status: staff_id=%s, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /staff/{staffId}/status - Status updated: venue_id=%s, staff_id=%s, state=%s", venue.ID, staffID, member.State)
	handlers.RespondJSON(w, http.StatusOK, member)
}
