package create_schedule_override

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueConsole/internal/api/handlers"
	"github.com/m04kA/SMC-VenueConsole/internal/api/middleware"
	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	"github.com/m04kA/SMC-VenueConsole/internal/service/schedule"
	"github.com/m04kA/SMC-VenueConsole/internal/service/schedule/models"
	"github.com/m04kA/SMC-VenueConsole/pkg/logger"
)

type fakeService struct {
	closed  *models.CreateClosedRequest
	special *models.CreateSpecialHoursRequest
	err     error
}

func (f *fakeService) CreateClosed(_ context.Context, req *models.CreateClosedRequest) (*models.DayResponse, error) {
	f.closed = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.DayResponse{Date: req.Date, Kind: "closed"}, nil
}

func (f *fakeService) CreateSpecialHours(_ context.Context, req *models.CreateSpecialHoursRequest) (*models.DayResponse, error) {
	f.special = req
	if !req.Confirmed {
		return nil, schedule.ErrConfirmationRequired
	}
	return &models.DayResponse{Date: req.Date, Kind: "special_hours", Open: req.Open, Close: req.Close}, nil
}

func newRequest(payload string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/schedule", strings.NewReader(payload))
	return req.WithContext(middleware.WithVenue(req.Context(), domain.Venue{ID: "v1"}))
}

func TestHandler_Closed(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, logger.Nop())

	rec := httptest.NewRecorder()
	h.Handle(rec, newRequest(`{"date":"2025-03-14","kind":"closed","reason":"Mantención"}`))

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, svc.closed)
	assert.Equal(t, "v1", svc.closed.VenueID)
	assert.Equal(t, "Mantención", svc.closed.Reason)
	assert.Nil(t, svc.special)
}

func TestHandler_SpecialHoursNeedsConfirmation(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, logger.Nop())

	rec := httptest.NewRecorder()
	h.Handle(rec, newRequest(`{"date":"2025-03-14","kind":"special_hours","open":"14","close":"20:00"}`))

	require.Equal(t, http.StatusPreconditionRequired, rec.Code)
	var prompt handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &prompt))
	assert.Equal(t, models.SpecialHoursPrompt, prompt.Prompt)

	rec = httptest.NewRecorder()
	h.Handle(rec, newRequest(`{"date":"2025-03-14","kind":"special_hours","open":"14","close":"20:00","confirmed":true}`))
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "14", svc.special.Open)
}

func TestHandler_Errors(t *testing.T) {
	h := NewHandler(&fakeService{}, logger.Nop())
	rec := httptest.NewRecorder()
	h.Handle(rec, newRequest(`{"date":"2025-03-14","kind":"holiday"}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	tests := []struct {
		err        error
		wantStatus int
	}{
		{err: schedule.ErrPastDate, wantStatus: http.StatusUnprocessableEntity},
		{err: schedule.ErrOverrideExists, wantStatus: http.StatusConflict},
		{err: schedule.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{err: schedule.ErrInternal, wantStatus: http.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			h := NewHandler(&fakeService{err: tt.err}, logger.Nop())
			rec := httptest.NewRecorder()
			h.Handle(rec, newRequest(`{"date":"2025-03-14","kind":"closed"}`))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
