package mark_paid

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueConsole/internal/api/handlers"
	"github.com/m04kA/SMC-VenueConsole/internal/api/middleware"
	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	markPaid "github.com/m04kA/SMC-VenueConsole/internal/usecase/mark_paid"
	"github.com/m04kA/SMC-VenueConsole/pkg/logger"
)

// fakeUseCase требует подтверждения, пока confirmed не передан
type fakeUseCase struct {
	got *markPaid.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *markPaid.Request) (*markPaid.Response, error) {
	f.got = req
	if !req.Confirmed {
		return nil, markPaid.ErrConfirmationRequired
	}
	return &markPaid.Response{
		AgendaID: req.AgendaID,
		Ledger:   domain.Ledger{Total: 25000, Deposit: 25000, Balance: 0, Status: domain.LedgerPaid, PriceKnown: true},
	}, nil
}

func newRequest(payload string) *http.Request {
	var req *http.Request
	if payload == "" {
		req = httptest.NewRequest(http.MethodPost, "/api/v1/reservations/a1/pay", nil)
	} else {
		req = httptest.NewRequest(http.MethodPost, "/api/v1/reservations/a1/pay", strings.NewReader(payload))
	}
	req = mux.SetURLVars(req, map[string]string{"agendaId": "a1"})
	return req.WithContext(middleware.WithVenue(req.Context(), domain.Venue{ID: "v1"}))
}

func TestHandler_ConfirmationFlow(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, logger.Nop())

	// без тела: промпт подтверждения
	rec := httptest.NewRecorder()
	h.Handle(rec, newRequest(""))

	require.Equal(t, http.StatusPreconditionRequired, rec.Code)
	var prompt handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &prompt))
	assert.Equal(t, markPaid.ConfirmationPrompt, prompt.Prompt)
	assert.Equal(t, "a1", uc.got.AgendaID)
	assert.Equal(t, "v1", uc.got.VenueID)

	// повтор с подтверждением
	rec = httptest.NewRecorder()
	h.Handle(rec, newRequest(`{"confirmed":true}`))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp MarkPaidResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "a1", resp.AgendaID)
	assert.Equal(t, "paid", resp.Ledger.Status)
	assert.Equal(t, int64(0), resp.Ledger.Balance)
}

type errUseCase struct{ err error }

func (f errUseCase) Execute(context.Context, *markPaid.Request) (*markPaid.Response, error) {
	return nil, f.err
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
	}{
		{err: markPaid.ErrEntryNotFound, wantStatus: http.StatusNotFound},
		{err: markPaid.ErrNotReservation, wantStatus: http.StatusUnprocessableEntity},
		{err: markPaid.ErrPastDate, wantStatus: http.StatusUnprocessableEntity},
		{err: markPaid.ErrReservationPaid, wantStatus: http.StatusConflict},
		{err: markPaid.ErrPriceUndetermined, wantStatus: http.StatusUnprocessableEntity},
		{err: markPaid.ErrInternal, wantStatus: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			h := NewHandler(errUseCase{err: tt.err}, logger.Nop())
			rec := httptest.NewRecorder()
			h.Handle(rec, newRequest(`{"confirmed":true}`))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
