package create_price_rule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueConsole/internal/api/handlers"
	"github.com/m04kA/SMC-VenueConsole/internal/api/middleware"
	"github.com/m04kA/SMC-VenueConsole/internal/service/pricing"
)

const (
	msgInvalidRequest = "cuerpo de la solicitud inválido"
	msgInvalidRule    = "regla de precio inválida: revisa horario, días y precio"
	msgOverlap        = "la regla se superpone con otra regla existente"
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

// Handle POST /api/v1/prices
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venue, ok := middleware.VenueFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	var req CreatePriceRuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /prices - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	rule, err := h.service.CreateRule(r.Context(), req.ToServiceRequest(venue.ID))
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrInvalidInput):
			h.logger.Warn("POST /prices - Invalid rule: venue_id=%s, error=%v", venue.ID, err)
			handlers.RespondBadRequest(w, msgInvalidRule)

		case errors.Is(err, pricing.ErrOverlappingRules):
			h.logger.Warn("POST /prices - Overlapping rule: venue_id=%s, start=%s, end=%s", venue.ID, req.Start, req.End)
			handlers.RespondConflict(w, msgOverlap)

		case errors.Is(err, pricing.ErrInternal):
			h.logger.Error("POST /prices - Store error: venue_id=%s, error=%v", venue.ID, err)
			handlers.RespondBadGateway(w)

		default:
			h.logger.Error("POST /prices - Failed to create rule: venue_id=%s, error=%v", venue.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /prices - Rule created: venue_id=%s, rule_id=%s", venue.ID, rule.ID)
	handlers.RespondJSON(w, http.StatusCreated, rule)
}
