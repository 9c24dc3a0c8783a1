package update_haircut

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueConsole/internal/api/handlers"
	"github.com/m04kA/SMC-VenueConsole/internal/api/middleware"
	"github.com/m04kA/SMC-VenueConsole/internal/service/haircuts"
)

const (
	msgInvalidRequest = "cuerpo de la solicitud inválido"
	msgInvalidInput   = "corte inválido: revisa el tipo y el precio"
	msgNotFound       = "corte no encontrado"
	msgStaffNotFound  = "barbero no encontrado"
	msgPastDate       = "solo se pueden modificar los cortes de hoy"
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

// Handle PUT /api/v1/haircuts/{haircutId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venue, ok := middleware.VenueFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	haircutID := mux.Vars(r)["haircutId"]

	var req UpdateHaircutRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /haircuts/{haircutId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	cut, err := h.service.Update(r.Context(), req.ToServiceRequest(venue.ID, haircutID))
	if err != nil {
		switch {
		case errors.Is(err, haircuts.ErrInvalidInput):
			h.logger.Warn("PUT /haircuts/{haircutId} - Invalid input: haircut_id=%s, error=%v", haircutID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, haircuts.ErrHaircutNotFound):
			h.logger.Warn("PUT /haircuts/{haircutId} - Haircut not found: venue_id=%s, haircut_id=%s", venue.ID, haircutID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, haircuts.ErrStaffNotFound):
			h.logger.Warn("PUT /haircuts/{haircutId} - Staff not found: staff_id=%s", req.StaffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, haircuts.ErrPastDate):
			h.logger.Warn("PUT /haircuts/{haircutId} - Past day: haircut_id=%s", haircutID)
			handlers.RespondUnprocessable(w, msgPastDate)

		case errors.Is(err, haircuts.ErrInternal):
			h.logger.Error("PUT /haircuts/{haircutId} - Store error: haircut_id=%s, error=%v", haircutID, err)
			handlers.RespondBadGateway(w)

		default:
			h.logger.Error("PUT /haircuts/{haircutId} - Failed to update haircut: haircut_id=%s, error=%v", haircutID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /haircuts/{haircutId} - Haircut updated: venue_id=%s, haircut_id=%s", venue.ID, haircutID)
	handlers.RespondJSON(w, http.StatusOK, cut)
}
