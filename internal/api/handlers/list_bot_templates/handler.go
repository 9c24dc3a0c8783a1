package list_bot_templates

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueConsole/internal/api/handlers"
	"github.com/m04kA/SMC-VenueConsole/internal/service/botorders"
)

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

// Handle GET /api/v1/bot/templates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListTemplates(r.Context())
	if err != nil {
		if errors.Is(err, botorders.ErrInternal) {
			h.logger.Error("GET /bot/templates - Store error: %v", err)
			handlers.RespondBadGateway(w)
			return
		}
		h.logger.Error("GET /bot/templates - Failed to list templates: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bot/templates - Templates listed: categories=%d", len(list.Categories))
	handlers.RespondJSON(w, http.StatusOK, list)
}
