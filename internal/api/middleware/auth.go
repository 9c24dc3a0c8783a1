package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueConsole/internal/api/handlers"
	"github.com/m04kA/SMC-VenueConsole/internal/domain"
)

type contextKey string

const venueKey contextKey = "venue"

const msgNoVenue = "el usuario no tiene un recinto asociado"

// VenueResolver находит площадку владельца сессии
type VenueResolver interface {
	ResolveOwnerVenue(ctx context.Context, ownerID string) (*domain.Venue, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AuthConfig параметры проверки JWT сессии
type AuthConfig struct {
	Secret string
	Issuer string
}

// Auth проверяет Bearer JWT (HS256) и кладёт площадку владельца (sub) в контекст
// notFound: ошибка резолвера, означающая "у пользователя нет площадки"
func Auth(cfg AuthConfig, venues VenueResolver, notFound error, logger Logger) mux.MiddlewareFunc {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	parser := jwt.NewParser(opts...)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			tokenString, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(tokenString) == "" {
				logger.Warn("Auth: missing bearer token for %s %s", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w)
				return
			}

			claims := &jwt.RegisteredClaims{}
			token, err := parser.ParseWithClaims(strings.TrimSpace(tokenString), claims, func(*jwt.Token) (interface{}, error) {
				return []byte(cfg.Secret), nil
			})
			if err != nil || !token.Valid || claims.Subject == "" {
				logger.Warn("Auth: invalid token for %s %s: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w)
				return
			}

			venue, err := venues.ResolveOwnerVenue(r.Context(), claims.Subject)
			if err != nil {
				if errors.Is(err, notFound) {
					logger.Warn("Auth: user=%s has no venue", claims.Subject)
					handlers.RespondForbidden(w, msgNoVenue)
					return
				}
				logger.Error("Auth: failed to resolve venue for user=%s: %v", claims.Subject, err)
				handlers.RespondBadGateway(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithVenue(r.Context(), *venue)))
		})
	}
}

// WithVenue кладёт площадку в контекст
func WithVenue(ctx context.Context, venue domain.Venue) context.Context {
	return context.WithValue(ctx, venueKey, venue)
}

// VenueFromContext возвращает площадку текущей сессии
func VenueFromContext(ctx context.Context) (domain.Venue, bool) {
	venue, ok := ctx.Value(venueKey).(domain.Venue)
	return venue, ok
}
