package delete_haircut

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-VenueConsole/internal/api/middleware"
	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	"github.com/m04kA/SMC-VenueConsole/internal/service/haircuts"
	"github.com/m04kA/SMC-VenueConsole/pkg/logger"
)

type fakeService struct {
	err   error
	venue domain.Venue
	pin   string
}

func (f *fakeService) Delete(_ context.Context, venue domain.Venue, _, pin string) error {
	f.venue, f.pin = venue, pin
	return f.err
}

func newRequest(payload string) *http.Request {
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/haircuts/c1", strings.NewReader(payload))
	req = mux.SetURLVars(req, map[string]string{"haircutId": "c1"})
	return req.WithContext(middleware.WithVenue(req.Context(), domain.Venue{ID: "v1", PINCode: "4321"}))
}

func TestHandler_Delete(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, logger.Nop())

	rec := httptest.NewRecorder()
	h.Handle(rec, newRequest(`{"pin":"4321"}`))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "v1", svc.venue.ID)
	assert.Equal(t, "4321", svc.pin)
}

func TestHandler_Delete_Errors(t *testing.T) {
	tests := []struct {
		name       string
		payload    string
		err        error
		wantStatus int
		wantPIN    bool
	}{
		{name: "bad body", payload: `{"pin":1}`, wantStatus: http.StatusBadRequest},
		{name: "pin mismatch", payload: `{"pin":"0000"}`, err: haircuts.ErrPINMismatch, wantStatus: http.StatusForbidden, wantPIN: true},
		{name: "rate limited", payload: `{"pin":"0000"}`, err: haircuts.ErrTooManyAttempts, wantStatus: http.StatusTooManyRequests},
		{name: "not found", payload: `{"pin":"4321"}`, err: haircuts.ErrHaircutNotFound, wantStatus: http.StatusNotFound},
		{name: "past day", payload: `{"pin":"4321"}`, err: haircuts.ErrPastDate, wantStatus: http.StatusUnprocessableEntity},
		{name: "store", payload: `{"pin":"4321"}`, err: haircuts.ErrInternal, wantStatus: http.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeService{err: tt.err}, logger.Nop())

			rec := httptest.NewRecorder()
			h.Handle(rec, newRequest(tt.payload))
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantPIN {
				assert.Contains(t, rec.Body.String(), `"pinError":true`)
			}
		})
	}
}
