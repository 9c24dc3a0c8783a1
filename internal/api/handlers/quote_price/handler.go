package quote_price

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueConsole/internal/api/handlers"
	"github.com/m04kA/SMC-VenueConsole/internal/api/middleware"
	"github.com/m04kA/SMC-VenueConsole/internal/service/pricing"
	"github.com/m04kA/SMC-VenueConsole/internal/service/pricing/models"
	"github.com/m04kA/SMC-VenueConsole/pkg/types"
)

const (
	msgInvalidDate  = "fecha inválida, se espera AAAA-MM-DD"
	msgInvalidInput = "fecha u hora inválida"
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

// Handle GET /api/v1/prices/quote?date=YYYY-MM-DD&time=HH:MM
// price = null, если ни одно правило не подходит
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venue, ok := middleware.VenueFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	query := r.URL.Query()
	date, err := types.ParseDate(query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /prices/quote - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	quote, err := h.service.Quote(r.Context(), &models.QuoteRequest{
		VenueID: venue.ID,
		Date:    date,
		Time:    query.Get("time"),
	})
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrInvalidInput):
			h.logger.Warn("GET /prices/quote - Invalid input: venue_id=%s, error=%v", venue.ID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, pricing.ErrInternal):
			h.logger.Error("GET /prices/quote - Store error: venue_id=%s, error=%v", venue.ID, err)
			handlers.RespondBadGateway(w)

		default:
			h.logger.Error("GET /prices/quote - Failed to quote: venue_id=%s, error=%v", venue.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /prices/quote - Quoted: venue_id=%s, date=%s, time=%s", venue.ID, quote.Date, quote.Time)
	handlers.RespondJSON(w, http.StatusOK, quote)
}
