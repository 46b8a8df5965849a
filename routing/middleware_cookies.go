package routing

import (
	"context"
	"net/http"
)

// decodeCookies is the built-in cookie decoder. It snapshots the request's
// cookies into the context as a name→value map, retrievable with [Cookies].
// Requests without cookies pass through untouched.
func decodeCookies(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cookies := r.Cookies(); len(cookies) > 0 {
			snapshot := make(map[string]string, len(cookies))
			for _, c := range cookies {
				snapshot[c.Name] = c.Value
			}
			r = r.WithContext(context.WithValue(r.Context(), ctxKeyCookies, snapshot))
		}

		next.ServeHTTP(w, r)
	})
}
