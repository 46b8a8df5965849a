package routing

import (
	"context"
	"net/http"
)

// ctxKey is the private type for context values set by the built-in
// middleware and the route builder.
type ctxKey int

const (
	ctxKeyBody ctxKey = iota
	ctxKeyCookies
	ctxKeyAuthRequired
)

// Body returns the JSON request body decoded by the built-in body middleware.
// The second result is false when the request had no decodable JSON body.
func Body(r *http.Request) (any, bool) {
	v := r.Context().Value(ctxKeyBody)
	return v, v != nil
}

// Cookies returns the cookie snapshot taken by the built-in cookie
// middleware, keyed by cookie name. The map is nil when the request carried
// no cookies.
func Cookies(r *http.Request) map[string]string {
	v, _ := r.Context().Value(ctxKeyCookies).(map[string]string)
	return v
}

// IsAuthRequired reports whether the matched route was declared with the
// auth-required flag. The flag becomes visible once the per-route chain is
// entered, so it can be consulted by method-scope middleware and by the
// handler itself; collaborators that run earlier use [AuthRequiredFor].
func IsAuthRequired(r *http.Request) bool {
	v, _ := r.Context().Value(ctxKeyAuthRequired).(bool)
	return v
}

// markAuthRequired is injected by the route builder as the first element of
// a flagged route's chain.
func markAuthRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), ctxKeyAuthRequired, true)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
