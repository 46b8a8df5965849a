package routing

import (
	"fmt"
	"net/http"
	"strings"
)

// Middleware is a request-processing function inserted into the chain ahead
// of a handler. It uses the standard net/http middleware shape, so chi's own
// middleware packages plug in directly.
type Middleware func(http.Handler) http.Handler

// Route is the binding attached to one handler method: the HTTP verb, the
// path relative to the controller's mount path, and the auth-required flag.
// Immutable once attached; re-annotating the same member replaces it whole.
type Route struct {
	Path         string
	Method       string
	AuthRequired bool
}

// allowedMethods is the closed set of verbs a route binding may carry.
var allowedMethods = map[string]bool{
	http.MethodGet:    true,
	http.MethodPost:   true,
	http.MethodPut:    true,
	http.MethodDelete: true,
	http.MethodPatch:  true,
}

// MountPath attaches path as the controller-level mount path: the prefix
// under which the controller's sub-router is mounted on the top-level router.
// A controller without a mount path is skipped by the composer.
func MountPath(target any, path string) {
	metadata.attach(target, "", keyMountPath, normalizePath(path))
}

// Use attaches an ordered middleware chain at controller scope, applied to
// every route on the controller. Calling Use again for the same controller
// replaces the previous chain.
func Use(target any, mw ...Middleware) {
	metadata.attach(target, "", keyMiddleware, mw)
}

// UseOn attaches an ordered middleware chain to one handler method, applied
// only to that route. Calling UseOn again for the same member replaces the
// previous chain.
func UseOn(target any, member string, mw ...Middleware) {
	metadata.attach(target, member, keyMiddleware, mw)
}

// Handle attaches a route binding to the named method of target. The method
// must be exported and have the [HandlerFunc] signature by composition time.
// httpMethod must be one of GET, POST, PUT, DELETE, or PATCH.
//
// The optional trailing boolean marks the route as requiring authorization;
// the flag is carried as metadata only, for an external authorization
// collaborator to consult via [IsAuthRequired] or [AuthRequiredFor].
func Handle(target any, member, httpMethod, path string, authRequired ...bool) {
	verb := strings.ToUpper(httpMethod)
	if !allowedMethods[verb] {
		panic(fmt.Sprintf("routing: unsupported HTTP method %q for member %q", httpMethod, member))
	}

	route := Route{
		Path:   normalizePath(path),
		Method: verb,
	}
	if len(authRequired) > 0 {
		route.AuthRequired = authRequired[0]
	}

	metadata.attach(target, member, keyRoute, route)
}

// Get attaches a GET route binding to the named method of target.
func Get(target any, member, path string, authRequired ...bool) {
	Handle(target, member, http.MethodGet, path, authRequired...)
}

// Post attaches a POST route binding to the named method of target.
func Post(target any, member, path string, authRequired ...bool) {
	Handle(target, member, http.MethodPost, path, authRequired...)
}

// Put attaches a PUT route binding to the named method of target.
func Put(target any, member, path string, authRequired ...bool) {
	Handle(target, member, http.MethodPut, path, authRequired...)
}

// Delete attaches a DELETE route binding to the named method of target.
func Delete(target any, member, path string, authRequired ...bool) {
	Handle(target, member, http.MethodDelete, path, authRequired...)
}

// Patch attaches a PATCH route binding to the named method of target.
func Patch(target any, member, path string, authRequired ...bool) {
	Handle(target, member, http.MethodPatch, path, authRequired...)
}

// AuthRequiredFor reports whether the route binding attached to the named
// member of target carries the auth-required flag. It is the static
// counterpart of [IsAuthRequired] for collaborators that run before routing.
func AuthRequiredFor(target any, member string) bool {
	raw, ok := metadata.resolve(target, member, keyRoute)
	if !ok {
		return false
	}
	return raw.(Route).AuthRequired
}

// normalizePath coerces a registered path into the form chi expects:
// non-empty and starting with a slash.
func normalizePath(path string) string {
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		return "/" + path
	}
	return path
}

// mountPathFor resolves the controller-level mount path for target.
func mountPathFor(target any) (string, bool) {
	raw, ok := metadata.resolve(target, "", keyMountPath)
	if !ok {
		return "", false
	}
	return raw.(string), true
}

// middlewareFor resolves the middleware chain attached for (target, member).
// An empty member resolves the controller-level chain. Absent is valid and
// yields an empty chain.
func middlewareFor(target any, member string) []Middleware {
	raw, ok := metadata.resolve(target, member, keyMiddleware)
	if !ok {
		return nil
	}
	return raw.([]Middleware)
}

// routeFor resolves the route binding attached for (target, member).
func routeFor(target any, member string) (Route, bool) {
	raw, ok := metadata.resolve(target, member, keyRoute)
	if !ok {
		return Route{}, false
	}
	return raw.(Route), true
}
