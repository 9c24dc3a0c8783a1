package get_week_grid

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueConsole/internal/api/handlers"
	"github.com/m04kA/SMC-VenueConsole/internal/api/middleware"
	getWeekGrid "github.com/m04kA/SMC-VenueConsole/internal/usecase/get_week_grid"
	"github.com/m04kA/SMC-VenueConsole/pkg/types"
)

const (
	msgInvalidDate  = "fecha inválida, se espera AAAA-MM-DD"
	msgInvalidInput = "no se pudo construir la grilla"
)

type Handler struct {
	useCase GetWeekGridUseCase
	logger  Logger
}

func NewHandler(useCase GetWeekGridUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/grid
// Query params: date (optional, YYYY-MM-DD): любая дата недели
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venue, ok := middleware.VenueFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	req := &getWeekGrid.Request{VenueID: venue.ID}
	if raw := r.URL.Query().Get("date"); raw != "" {
		date, err := types.ParseDate(raw)
		if err != nil {
			h.logger.Warn("GET /grid - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = date
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getWeekGrid.ErrInvalidInput):
			h.logger.Warn("GET /grid - Invalid input: venue_id=%s, error=%v", venue.ID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getWeekGrid.ErrInternal):
			h.logger.Error("GET /grid - Store error: venue_id=%s, error=%v", venue.ID, err)
			handlers.RespondBadGateway(w)

		default:
			h.logger.Error("GET /grid - Failed to build grid: venue_id=%s, error=%v", venue.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /grid - Grid built: venue_id=%s, week=%s", venue.ID, result.Grid.WeekStart)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
