package routing

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-controller-kit/internal/logger"
)

// logRequests is the built-in request-logging middleware. It records one
// structured entry per request with method, URI, status, duration, and body
// size, using the request-scoped logger attached by the trace-ID middleware.
func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		log.Info().
			Str("uri", uri).
			Str("method", method).
			Int("status", lw.statusOrOK()).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()
	})
}
