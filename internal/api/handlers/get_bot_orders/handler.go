package get_bot_orders

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueConsole/internal/api/handlers"
	"github.com/m04kA/SMC-VenueConsole/internal/api/middleware"
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

// Handle GET /api/v1/bot/orders
// Заказы площадки: выполняются, активны, история
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venue, ok := middleware.VenueFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	board, err := h.service.Board(r.Context(), venue.ID)
	if err != nil {
		if errors.Is(err, botorders.ErrInternal) {
			h.logger.Error("GET /bot/orders - Store error: venue_id=%s, error=%v", venue.ID, err)
			handlers.RespondBadGateway(w)
			return
		}
		h.logger.Error("GET /bot/orders - Failed to get board: venue_id=%s, error=%v", venue.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bot/orders - Board returned: venue_id=%s", venue.ID)
	handlers.RespondJSON(w, http.StatusOK, board)
}
