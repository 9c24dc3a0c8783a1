package get_public_availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueConsole/internal/service/venues"
	"github.com/m04kA/SMC-VenueConsole/internal/service/venues/models"
	"github.com/m04kA/SMC-VenueConsole/pkg/logger"
)

type fakeService struct{}

func (fakeService) PublicAvailability(_ context.Context, slug string) (*models.PublicAvailabilityResponse, error) {
	switch slug {
	case "club-norte":
		return &models.PublicAvailabilityResponse{VenueName: "Club Norte"}, nil
	case "caido":
		return nil, venues.ErrInternal
	default:
		return nil, venues.ErrVenueNotFound
	}
}

func serve(slug string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/public/venues/{slug}", NewHandler(fakeService{}, logger.Nop()).Handle)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/public/venues/"+slug, nil))
	return rec
}

func TestHandler_Public(t *testing.T) {
	rec := serve("club-norte")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.PublicAvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Club Norte", resp.VenueName)

	assert.Equal(t, http.StatusNotFound, serve("desconocido").Code)
	assert.Equal(t, http.StatusBadGateway, serve("caido").Code)
}
