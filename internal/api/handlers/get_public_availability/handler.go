package get_public_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueConsole/internal/api/handlers"
	"github.com/m04kA/SMC-VenueConsole/internal/service/venues"
)

const (
	msgInvalidSlug = "identificador de recinto inválido"
	msgNotFound    = "recinto no encontrado"
)

type Handler struct {
	service VenueService
	logger  Logger
}

func NewHandler(service VenueService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/public/venues/{slug}
// Публичный эндпоинт без авторизации, имена клиентов не отдаются
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	availability, err := h.service.PublicAvailability(r.Context(), slug)
	if err != nil {
		switch {
		case errors.Is(err, venues.ErrInvalidInput):
			h.logger.Warn("GET /public/venues/{slug} - Invalid slug: %q", slug)
			handlers.RespondBadRequest(w, msgInvalidSlug)

		case errors.Is(err, venues.ErrVenueNotFound):
			h.logger.Warn("GET /public/venues/{slug} - Venue not found: slug=%s", slug)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, venues.ErrInternal):
			h.logger.Error("GET /public/venues/{slug} - Store error: slug=%s, error=%v", slug, err)
			handlers.RespondBadGateway(w)

		default:
			h.logger.Error("GET /public/venues/{slug} - Failed to get availability: slug=%s, error=%v", slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /public/venues/{slug} - Availability returned: slug=%s, slots=%d", slug, len(availability.Slots))
	handlers.RespondJSON(w, http.StatusOK, availability)
}
