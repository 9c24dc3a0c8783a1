package get_week_grid

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueConsole/internal/api/middleware"
	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	getWeekGrid "github.com/m04kA/SMC-VenueConsole/internal/usecase/get_week_grid"
	"github.com/m04kA/SMC-VenueConsole/pkg/logger"
	"github.com/m04kA/SMC-VenueConsole/pkg/types"
)

type fakeUseCase struct {
	got  *getWeekGrid.Request
	grid *domain.Grid
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getWeekGrid.Request) (*getWeekGrid.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &getWeekGrid.Response{Grid: f.grid}, nil
}

func newRequest(target string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	return req.WithContext(middleware.WithVenue(req.Context(), domain.Venue{ID: "v1"}))
}

func testGrid(t *testing.T) *domain.Grid {
	t.Helper()
	monday := types.NewDate(2025, time.March, 10)
	grid, err := domain.BuildGrid(domain.GridInput{
		VenueID:   "v1",
		WeekStart: monday,
		Today:     monday,
		Courts:    []domain.Court{{ID: "c1", VenueID: "v1", Name: "Cancha 1", Active: true}},
		Slots:     []domain.TimeSlot{{ID: "s19", VenueID: "v1", Time: "19:00:00", Active: true}},
		Overrides: []domain.DayOverride{{VenueID: "v1", Date: monday.AddDays(2), Kind: domain.OverrideClosed}},
		Live: []domain.ScheduleEntry{{
			ID: "a1", VenueID: "v1", Date: monday, CourtID: "c1", SlotID: "s19",
			Status: domain.EntryReserved, CustomerName: "Ana",
		}},
	})
	require.NoError(t, err)
	return grid
}

func TestHandler_Grid(t *testing.T) {
	uc := &fakeUseCase{grid: testGrid(t)}
	h := NewHandler(uc, logger.Nop())

	rec := httptest.NewRecorder()
	h.Handle(rec, newRequest("/api/v1/grid?date=2025-03-13"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "v1", uc.got.VenueID)
	assert.Equal(t, "2025-03-13", uc.got.Date.String())

	var resp GridResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Days, 7)
	assert.Equal(t, "normal", resp.Days[0].Override)
	assert.Equal(t, "closed", resp.Days[2].Override)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, "19:00", resp.Slots[0].Time)
	require.Len(t, resp.Cells, 7)

	var reserved *Cell
	for i := range resp.Cells {
		if resp.Cells[i].AgendaID == "a1" {
			reserved = &resp.Cells[i]
		}
	}
	require.NotNil(t, reserved)
	assert.Equal(t, "reserved", reserved.State)
	assert.Equal(t, "Ana", reserved.CustomerName)
}

func TestHandler_DefaultsToCurrentWeek(t *testing.T) {
	uc := &fakeUseCase{grid: testGrid(t)}
	h := NewHandler(uc, logger.Nop())

	rec := httptest.NewRecorder()
	h.Handle(rec, newRequest("/api/v1/grid"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, uc.got.Date.IsZero())
}

func TestHandler_Errors(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, logger.Nop())
	rec := httptest.NewRecorder()
	h.Handle(rec, newRequest("/api/v1/grid?date=13-03-2025"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	h = NewHandler(&fakeUseCase{err: getWeekGrid.ErrInternal}, logger.Nop())
	rec = httptest.NewRecorder()
	h.Handle(rec, newRequest("/api/v1/grid"))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
