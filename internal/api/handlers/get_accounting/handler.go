package get_accounting

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueConsole/internal/api/handlers"
	"github.com/m04kA/SMC-VenueConsole/internal/api/middleware"
	"github.com/m04kA/SMC-VenueConsole/internal/service/haircuts"
	"github.com/m04kA/SMC-VenueConsole/internal/service/haircuts/models"
	"github.com/m04kA/SMC-VenueConsole/pkg/types"
)

const (
	msgInvalidDate   = "fecha inválida, se espera AAAA-MM-DD"
	msgInvalidPeriod = "período inválido, se espera dia o mes"
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

// Handle GET /api/v1/accounting
// Query params: date (optional, YYYY-MM-DD), period (dia|mes, default dia), staffId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venue, ok := middleware.VenueFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	query := r.URL.Query()
	req := &models.ReportRequest{
		VenueID: venue.ID,
		Period:  query.Get("period"),
		StaffID: query.Get("staffId"),
	}
	if raw := query.Get("date"); raw != "" {
		date, err := types.ParseDate(raw)
		if err != nil {
			h.logger.Warn("GET /accounting - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = date
	}

	report, err := h.service.Report(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, haircuts.ErrInvalidInput):
			h.logger.Warn("GET /accounting - Invalid input: period=%s, error=%v", req.Period, err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		case errors.Is(err, haircuts.ErrInternal):
			h.logger.Error("GET /accounting - Store error: venue_id=%s, error=%v", venue.ID, err)
			handlers.RespondBadGateway(w)

		default:
			h.logger.Error("GET /accounting - Failed to build report: venue_id=%s, error=%v", venue.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /accounting - Report built: venue_id=%s, period=%s, from=%s, count=%d",
		venue.ID, report.Period, report.From, report.Totals.Count)
	handlers.RespondJSON(w, http.StatusOK, report)
}
