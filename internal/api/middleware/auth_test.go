package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	"github.com/m04kA/SMC-VenueConsole/pkg/logger"
)

const secret = "test-secret"

var errNoVenue = errors.New("venue not found")

type fakeVenues struct{ err error }

func (f fakeVenues) ResolveOwnerVenue(_ context.Context, ownerID string) (*domain.Venue, error) {
	if f.err != nil {
		return nil, f.err
	}
	if ownerID != "owner-1" {
		return nil, errNoVenue
	}
	return &domain.Venue{ID: "v1", OwnerID: ownerID}, nil
}

func sign(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func newRouter(venues VenueResolver) *mux.Router {
	r := mux.NewRouter()
	r.Use(Auth(AuthConfig{Secret: secret}, venues, errNoVenue, logger.Nop()))
	r.HandleFunc("/venue", func(w http.ResponseWriter, r *http.Request) {
		venue, ok := VenueFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(venue.ID))
	})
	return r
}

func TestAuth(t *testing.T) {
	valid := jwt.RegisteredClaims{Subject: "owner-1", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}

	tests := []struct {
		name       string
		header     string
		venues     VenueResolver
		wantStatus int
		wantBody   string
	}{
		{
			name:       "valid token",
			header:     "Bearer " + sign(t, jwt.SigningMethodHS256, []byte(secret), valid),
			venues:     fakeVenues{},
			wantStatus: http.StatusOK,
			wantBody:   "v1",
		},
		{
			name:       "missing header",
			venues:     fakeVenues{},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong secret",
			header:     "Bearer " + sign(t, jwt.SigningMethodHS256, []byte("other"), valid),
			venues:     fakeVenues{},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "expired",
			header: "Bearer " + sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.RegisteredClaims{
				Subject: "owner-1", ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			}),
			venues:     fakeVenues{},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "other algorithm",
			header:     "Bearer " + sign(t, jwt.SigningMethodHS512, []byte(secret), valid),
			venues:     fakeVenues{},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "owner without venue",
			header: "Bearer " + sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.RegisteredClaims{
				Subject: "owner-2", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			}),
			venues:     fakeVenues{},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "store down",
			header:     "Bearer " + sign(t, jwt.SigningMethodHS256, []byte(secret), valid),
			venues:     fakeVenues{err: errors.New("timeout")},
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/venue", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			newRouter(tt.venues).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}
