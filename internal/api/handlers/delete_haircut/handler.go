package delete_haircut

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueConsole/internal/api/handlers"
	"github.com/m04kA/SMC-VenueConsole/internal/api/middleware"
	"github.com/m04kA/SMC-VenueConsole/internal/service/haircuts"
)

const (
	msgInvalidRequest  = "cuerpo de la solicitud inválido"
	msgInvalidInput    = "se requiere el PIN"
	msgNotFound        = "corte no encontrado"
	msgPINMismatch     = "PIN incorrecto"
	msgTooManyAttempts = "demasiados intentos de PIN, espera un momento"
	msgPastDate        = "solo se pueden eliminar los cortes de hoy"
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

// Handle DELETE /api/v1/haircuts/{haircutId}
// Body: {"pin": "..."}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venue, ok := middleware.VenueFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	haircutID := mux.Vars(r)["haircutId"]

	var req DeleteHaircutRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("DELETE /haircuts/{haircutId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	err := h.service.Delete(r.Context(), venue, haircutID, req.PIN)
	if err != nil {
		switch {
		case errors.Is(err, haircuts.ErrInvalidInput):
			h.logger.Warn("DELETE /haircuts/{haircutId} - Invalid input: haircut_id=%s", haircutID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, haircuts.ErrPINMismatch):
			h.logger.Warn("DELETE /haircuts/{haircutId} - PIN mismatch: venue_id=%s", venue.ID)
			handlers.RespondPINError(w, msgPINMismatch)

		case errors.Is(err, haircuts.ErrTooManyAttempts):
			h.logger.Warn("DELETE /haircuts/{haircutId} - Too many PIN attempts: venue_id=%s", venue.ID)
			handlers.RespondTooManyRequests(w, msgTooManyAttempts)

		case errors.Is(err, haircuts.ErrHaircutNotFound):
			h.logger.Warn("DELETE /haircuts/{haircutId} - Haircut not found: venue_id=%s, haircut_id=%s", venue.ID, haircutID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, haircuts.ErrPastDate):
			h.logger.Warn("DELETE /haircuts/{haircutId} - Past day: haircut_id=%s", haircutID)
			handlers.RespondUnprocessable(w, msgPastDate)

		case errors.Is(err, haircuts.ErrInternal):
			h.logger.Error("DELETE /haircuts/{haircutId} - Store error: haircut_id=%s, error=%v", haircutID, err)
			handlers.RespondBadGateway(w)

		default:
			h.logger.Error("DELETE /haircuts/{haircutId} - Failed to delete haircut: haircut_id=%s, error=%v", haircutID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /haircuts/{haircutId} - Haircut deleted: venue_id=%s, haircut_id=%s", venue.ID, haircutID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
