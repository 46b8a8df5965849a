package routing

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime"
	"net/http"
)

// decodeJSONBody is the built-in JSON body decoder, registered first among
// the fixed middleware. For requests that declare a JSON content type the
// body is read, decoded into the request context (retrieve it with [Body]),
// and rewound so handlers can still read r.Body themselves.
//
// A body that fails to decode leaves the context empty; whether that is a
// client error is the handler's call.
func decodeJSONBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || r.ContentLength == 0 || !hasJSONContentType(r) {
			next.ServeHTTP(w, r)
			return
		}

		raw, err := io.ReadAll(r.Body)
		_ = r.Body.Close()
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(raw))

		var decoded any
		if err := json.Unmarshal(raw, &decoded); err == nil {
			r = r.WithContext(context.WithValue(r.Context(), ctxKeyBody, decoded))
		}

		next.ServeHTTP(w, r)
	})
}

func hasJSONContentType(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	return mediaType == "application/json"
}
