package routing

import (
	"fmt"
	"net/http"
	"reflect"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-controller-kit/internal/logger"
)

// boundHandler is the reflected form of [HandlerFunc]; method values obtained
// from a controller instance are asserted against it.
type boundHandler = func(http.ResponseWriter, *http.Request) (any, error)

// buildControllerRouter builds a fresh sub-router for one controller
// instance.
//
// It walks the instance's full exported method set — promoted methods from
// embedded base controllers included — and registers every method that
// resolves a route binding through the metadata registry. Method values are
// taken from the instance, so handlers and their state travel together.
// For each bound route the chain is [auth marker if flagged, method
// middleware in order..., wrapped handler].
//
// A controller with zero bindings yields a *NoRoutesError; a binding whose
// method does not match [HandlerFunc] yields a *BadHandlerError. Both are
// fatal configuration errors.
func buildControllerRouter(ctrl any, log *logger.Logger) (chi.Router, error) {
	sub := chi.NewRouter()

	v := reflect.ValueOf(ctrl)
	t := v.Type()

	bound := 0
	for i := 0; i < t.NumMethod(); i++ {
		name := t.Method(i).Name

		route, ok := routeFor(ctrl, name)
		if !ok {
			continue
		}

		handler, ok := v.Method(i).Interface().(boundHandler)
		if !ok {
			return nil, &BadHandlerError{Controller: fmt.Sprintf("%T", ctrl), Member: name}
		}

		chain := make([]func(http.Handler) http.Handler, 0, 4)
		if route.AuthRequired {
			chain = append(chain, markAuthRequired)
		}
		for _, mw := range middlewareFor(ctrl, name) {
			chain = append(chain, mw)
		}

		handlerName := fmt.Sprintf("%T.%s", ctrl, name)
		sub.With(chain...).Method(route.Method, route.Path, wrapHandler(handlerName, handler))
		bound++

		log.Debug().
			Str("handler", handlerName).
			Str("method", route.Method).
			Str("path", route.Path).
			Bool("auth_required", route.AuthRequired).
			Msg("route registered")
	}

	if bound == 0 {
		return nil, &NoRoutesError{Controller: fmt.Sprintf("%T", ctrl)}
	}

	return sub, nil
}
