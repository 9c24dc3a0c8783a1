package get_bot_template_form

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueConsole/internal/api/handlers"
	"github.com/m04kA/SMC-VenueConsole/internal/api/middleware"
	"github.com/m04kA/SMC-VenueConsole/internal/service/botorders"
)

const msgNotFound = "plantilla no encontrada"

type Handler struct {
	service BotOrderService
	logger  Logger
}

func NewHandler(service BotOrderService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bot/templates/{templateId}/form
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venue, ok := middleware.VenueFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	templateID := mux.Vars(r)["templateId"]

	form, err := h.service.GetForm(r.Context(), venue.ID, templateID)
	if err != nil {
		switch {
		case errors.Is(err, botorders.ErrTemplateNotFound):
			h.logger.Warn("GET /bot/templates/{templateId}/form - Template not found: template_id=%s", templateID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, botorders.ErrInternal):
			h.logger.Error("GET /bot/templates/{templateId}/form - Store error: template_id=%s, error=%v", templateID, err)
			handlers.RespondBadGateway(w)

		default:
			h.logger.Error("GET /bot/templates/{templateId}/form - Failed to build form: template_id=%s, error=%v", templateID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bot/templates/{templateId}/form - Form returned: venue_id=%s, template_id=%s, fields=%d",
		venue.ID, templateID, len(form.Fields))
	handlers.RespondJSON(w, http.StatusOK, form)
}
