package release_reservation

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueConsole/internal/api/middleware"
	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	"github.com/m04kA/SMC-VenueConsole/internal/service/reservations"
	"github.com/m04kA/SMC-VenueConsole/internal/service/reservations/models"
	"github.com/m04kA/SMC-VenueConsole/pkg/logger"
)

type fakeService struct {
	got *models.ReleaseRequest
	err error
}

func (f *fakeService) Release(_ context.Context, req *models.ReleaseRequest) (*models.ReleaseResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.ReleaseResponse{AgendaID: req.AgendaID, PaymentDeleted: true}, nil
}

func newRequest() *http.Request {
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/reservations/a1", nil)
	req = mux.SetURLVars(req, map[string]string{"agendaId": "a1"})
	return req.WithContext(middleware.WithVenue(req.Context(), domain.Venue{ID: "v1"}))
}

func TestHandler_Release(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, logger.Nop())

	rec := httptest.NewRecorder()
	h.Handle(rec, newRequest())

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "v1", svc.got.VenueID)
	assert.Equal(t, "a1", svc.got.AgendaID)

	var resp models.ReleaseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.PaymentDeleted)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "not found", err: reservations.ErrEntryNotFound, wantStatus: http.StatusNotFound},
		{name: "paid", err: reservations.ErrReservationPaid, wantStatus: http.StatusConflict},
		{name: "past date", err: reservations.ErrPastDate, wantStatus: http.StatusUnprocessableEntity},
		{name: "store", err: reservations.ErrInternal, wantStatus: http.StatusBadGateway},
		{name: "unknown", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeService{err: tt.err}, logger.Nop())
			rec := httptest.NewRecorder()
			h.Handle(rec, newRequest())
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
