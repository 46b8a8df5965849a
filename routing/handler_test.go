package routing

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-controller-kit/internal/logger"
)

// ---- Helpers ----

// injectNopLogger attaches a nop logger to the request context so wrapper
// diagnostics do not pollute test output.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

func executeWrapped(h HandlerFunc) *httptest.ResponseRecorder {
	wrapped := wrapHandler("test.Handler", h)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = injectNopLogger(req)
	rr := httptest.NewRecorder()
	wrapped.ServeHTTP(rr, req)
	return rr
}

func decodeErrorBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

// ---- Success paths ----

func TestWrapHandler_ValueIsJSONEncoded(t *testing.T) {
	rr := executeWrapped(func(w http.ResponseWriter, r *http.Request) (any, error) {
		return map[string]string{"STATUS": "OK"}, nil
	})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"STATUS":"OK"}`, rr.Body.String())
}

func TestWrapHandler_NilValueIsEmpty200(t *testing.T) {
	rr := executeWrapped(func(w http.ResponseWriter, r *http.Request) (any, error) {
		return nil, nil
	})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestWrapHandler_StringValueIsPlainText(t *testing.T) {
	rr := executeWrapped(func(w http.ResponseWriter, r *http.Request) (any, error) {
		return "OK", nil
	})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Equal(t, "OK", rr.Body.String())
}

func TestWrapHandler_ByteSliceIsWrittenRaw(t *testing.T) {
	rr := executeWrapped(func(w http.ResponseWriter, r *http.Request) (any, error) {
		return []byte("raw-bytes"), nil
	})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "raw-bytes", rr.Body.String())
}

func TestWrapHandler_HandlerWritesItself(t *testing.T) {
	rr := executeWrapped(func(w http.ResponseWriter, r *http.Request) (any, error) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("custom"))
		return map[string]string{"ignored": "yes"}, nil
	})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "custom", rr.Body.String())
}

// ---- Failure paths ----

func TestWrapHandler_FailureMapping_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "not found → 404",
			err:        ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   "Not Found",
		},
		{
			name:       "wrapped not found → 404",
			err:        fmt.Errorf("note %d: %w", 7, ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantBody:   "Not Found",
		},
		{
			name:       "bad request → 400",
			err:        ErrBadRequest,
			wantStatus: http.StatusBadRequest,
			wantBody:   "Malformed request",
		},
		{
			name:       "wrapped bad request → 400",
			err:        fmt.Errorf("field text: %w", ErrBadRequest),
			wantStatus: http.StatusBadRequest,
			wantBody:   "Malformed request",
		},
		{
			name:       "unclassified → 500",
			err:        errors.New("database exploded"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := executeWrapped(func(w http.ResponseWriter, r *http.Request) (any, error) {
				return nil, tt.err
			})

			assert.Equal(t, tt.wantStatus, rr.Code)
			body := decodeErrorBody(t, rr)
			assert.Equal(t, tt.wantBody, body["error"])

			// internal detail must never leak into the response
			assert.NotContains(t, rr.Body.String(), "database exploded")
			assert.NotContains(t, rr.Body.String(), "test.Handler")
		})
	}
}

func TestWrapHandler_PanicIsRecoveredAs500(t *testing.T) {
	rr := executeWrapped(func(w http.ResponseWriter, r *http.Request) (any, error) {
		panic("boom")
	})

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	body := decodeErrorBody(t, rr)
	assert.Equal(t, "Internal Server Error", body["error"])
}

func TestWrapHandler_UnencodableValueIs500(t *testing.T) {
	rr := executeWrapped(func(w http.ResponseWriter, r *http.Request) (any, error) {
		return make(chan int), nil // json.Marshal cannot encode a channel
	})

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	body := decodeErrorBody(t, rr)
	assert.Equal(t, "Internal Server Error", body["error"])
}

func TestWrapHandler_NoSecondResponseAfterHandlerWrote(t *testing.T) {
	rr := executeWrapped(func(w http.ResponseWriter, r *http.Request) (any, error) {
		w.WriteHeader(http.StatusAccepted)
		return nil, ErrNotFound
	})

	// the failure is logged but the already-sent response stays untouched
	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestStatusFromError_Default(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, statusFromError(errors.New("anything")))
}
