package register_haircut

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueConsole/internal/api/handlers"
	"github.com/m04kA/SMC-VenueConsole/internal/api/middleware"
	"github.com/m04kA/SMC-VenueConsole/internal/service/haircuts"
)

const (
	msgInvalidRequest = "cuerpo de la solicitud inválido"
	msgInvalidInput   = "corte inválido: revisa el tipo y el precio"
	msgStaffNotFound  = "barbero no encontrado"
	msgNotWorking     = "el barbero no está disponible o está en colación"
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

// Handle POST /api/v1/haircuts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venue, ok := middleware.VenueFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	var req RegisterHaircutRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /haircuts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	cut, err := h.service.Register(r.Context(), req.ToServiceRequest(venue.ID))
	if err != nil {
		switch {
		case errors.Is(err, haircuts.ErrInvalidInput):
			h.logger.Warn("POST /haircuts - Invalid input: staff_id=%s, error=%v", req.StaffID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, haircuts.ErrStaffNotFound):
			h.logger.Warn("POST /haircuts - Staff not found: venue_id=%s, staff_id=%s", venue.ID, req.StaffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, haircuts.ErrStaffNotWorking):
			h.logger.Warn("POST /haircuts - Staff not working: staff_id=%s", req.StaffID)
			handlers.RespondConflict(w, msgNotWorking)

		case errors.Is(err, haircuts.ErrInternal):
			h.logger.Error("POST /haircuts - Store error: staff_id=%s, error=%v", req.StaffID, err)
			handlers.RespondBadGateway(w)

		default:
			h.logger.Error("POST /haircuts - Failed to register haircut: staff_id=%s, error=%v", req.StaffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /haircuts - Haircut registered: venue_id=%s, haircut_id=%s, price=%d", venue.ID, cut.ID, cut.Price)
	handlers.RespondJSON(w, http.StatusCreated, cut)
}
