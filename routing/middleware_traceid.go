package routing

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-controller-kit/internal/logger"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID attaches a request-scoped child of base to the request context,
// tagged with a trace ID taken from the X-Trace-ID header or freshly
// generated. It runs ahead of the fixed built-ins so every later diagnostic
// for the request carries the trace ID.
func withTraceID(base *logger.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			var traceID string
			if traceIDFromRequestHeader := r.Header.Get(traceIDHeader); traceIDFromRequestHeader != "" {
				traceID = traceIDFromRequestHeader
			} else {
				traceID = uuid.NewString()
			}

			l := base.GetChildLogger()
			l.UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Str("trace_id", traceID)
			})
			r = r.WithContext(l.WithContext(ctx))

			w.Header().Set(traceIDHeader, traceID)
			next.ServeHTTP(w, r)
		})
	}
}
