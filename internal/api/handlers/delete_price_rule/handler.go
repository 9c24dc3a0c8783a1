package delete_price_rule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueConsole/internal/api/handlers"
	"github.com/m04kA/SMC-VenueConsole/internal/api/middleware"
	"github.com/m04kA/SMC-VenueConsole/internal/service/pricing"
)

const (
	msgInvalidInput = "solicitud inválida"
	msgNotFound     = "regla de precio no encontrada"
)

type Handler struct {
	service PricingService
	logger  Logger
}

func NewHandler(service PricingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/prices/{ruleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venue, ok := middleware.VenueFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	ruleID := mux.Vars(r)["ruleId"]

	err := h.service.DeleteRule(r.Context(), venue.ID, ruleID)
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrInvalidInput):
			h.logger.Warn("DELETE /prices/{ruleId} - Invalid input: rule_id=%s", ruleID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, pricing.ErrRuleNotFound):
			h.logger.Warn("DELETE /prices/{ruleId} - Rule not found: venue_id=%s, rule_id=%s", venue.ID, ruleID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, pricing.ErrInternal):
			h.logger.Error("DELETE /prices/{ruleId} - Store error: rule_id=%s, error=%v", ruleID, err)
			handlers.RespondBadGateway(w)

		default:
			h.logger.Error("DELETE /prices/{ruleId} - Failed to delete rule: rule_id=%s, error=%v", ruleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /prices/{ruleId} - Rule deleted: venue_id=%s, rule_id=%s", venue.ID, ruleID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
