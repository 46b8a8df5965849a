package routing

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-controller-kit/internal/logger"
	"github.com/MKhiriev/go-controller-kit/models"
)

// HandlerFunc is the signature every bound handler method must have.
//
// The returned value becomes the response body on success: []byte is written
// raw, string as plain text, anything else is JSON-encoded; a nil value
// yields an empty 200 response. A handler may also write the response itself
// through w, in which case the returned value is ignored. A non-nil error is
// classified against [ErrNotFound] and [ErrBadRequest] and mapped to a
// uniform JSON error response.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) (any, error)

var errorStatusMap = map[error]int{
	ErrNotFound:   http.StatusNotFound,
	ErrBadRequest: http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorMessages are the only failure texts ever sent to clients. Diagnostic
// detail stays in server-side logs.
var errorMessages = map[int]string{
	http.StatusNotFound:            "Not Found",
	http.StatusBadRequest:          "Malformed request",
	http.StatusInternalServerError: "Internal Server Error",
}

// wrapHandler normalizes the outcome of one handler invocation into exactly
// one HTTP response. name identifies the originating handler in diagnostics
// (e.g. "*api.StatusController.Status").
//
// A panic inside the handler is recovered and treated as an unclassified
// failure: the client receives the 500 response and the server keeps serving.
func wrapHandler(name string, h HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lw := &responseWriter{ResponseWriter: w}

		defer func() {
			if rec := recover(); rec != nil {
				logger.FromRequest(r).Error().
					Str("handler", name).
					Any("panic", rec).
					Msg("handler panicked")
				writeFailure(lw, http.StatusInternalServerError)
			}
		}()

		value, err := h(lw, r)
		if err != nil {
			logger.FromRequest(r).Err(err).
				Str("handler", name).
				Msg("handler failed")
			writeFailure(lw, statusFromError(err))
			return
		}

		if lw.wroteHeader {
			return // handler already produced the response
		}

		if err := writeValue(lw, value); err != nil {
			logger.FromRequest(r).Err(err).
				Str("handler", name).
				Msg("error encoding handler result")
			writeFailure(lw, http.StatusInternalServerError)
		}
	})
}

// writeFailure sends the uniform JSON error body for status, unless the
// handler already sent a response of its own.
func writeFailure(w *responseWriter, status int) {
	if w.wroteHeader {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: errorMessages[status]})
}

// writeValue sends value as a 200 response. The value is marshalled before
// any bytes are written so an encoding failure can still become a clean 500.
func writeValue(w *responseWriter, value any) error {
	switch v := value.(type) {
	case nil:
		w.WriteHeader(http.StatusOK)
		return nil
	case []byte:
		_, err := w.Write(v)
		return err
	case string:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, err := w.Write([]byte(v))
		return err
	default:
		body, err := json.Marshal(v)
		if err != nil {
			return err
		}
		w.Header().Set("Content-Type", "application/json")
		_, err = w.Write(body)
		return err
	}
}
