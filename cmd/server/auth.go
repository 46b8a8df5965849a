package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-controller-kit/internal/logger"
	"github.com/MKhiriev/go-controller-kit/models"
	"github.com/MKhiriev/go-controller-kit/routing"
)

// demoSigningKey is the HMAC key for the demo tokens. A real deployment
// would load this from configuration.
var demoSigningKey = []byte("controller-kit-demo-key")

var (
	ErrEmptyAuthorizationHeader   = errors.New("empty `Authorization` header")
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
)

// requireToken is the external authorization collaborator. The routing core
// only carries the auth-required flag as route metadata; this middleware
// consults it via [routing.IsAuthRequired] and, when set, validates the
// request's bearer token before letting the handler run.
func requireToken(signingKey []byte) routing.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !routing.IsAuthRequired(r) {
				next.ServeHTTP(w, r)
				return
			}

			log := logger.FromRequest(r)

			tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
			if err != nil {
				log.Err(err).Send()
				writeUnauthorized(w)
				return
			}

			if _, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return signingKey, nil
			}); err != nil {
				log.Err(err).Msg("error parsing token")
				writeUnauthorized(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" header value of the form "<scheme> <token>".
func getTokenFromAuthHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	parts := strings.Fields(authHeader)
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	return parts[1], nil
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: http.StatusText(http.StatusUnauthorized)})
}
