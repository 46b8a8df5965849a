package routing

import (
	"context"
	"fmt"
	"net/http"
	"reflect"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-controller-kit/internal/config"
	"github.com/MKhiriev/go-controller-kit/internal/logger"
	"github.com/MKhiriev/go-controller-kit/internal/server"
)

// App is the assembled top-level router. It implements http.Handler, so a
// composed-but-not-listening app can be mounted anywhere a handler fits;
// after Initialize it also owns the listening server.
type App struct {
	name   string
	mux    *chi.Mux
	logger *logger.Logger
	server *server.Server
}

// ServeHTTP dispatches through the composed router.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.mux.ServeHTTP(w, r)
}

// Name returns the app's display name.
func (a *App) Name() string { return a.name }

// Addr returns the bound listener address, or "" when the app is not
// listening.
func (a *App) Addr() string {
	if a.server == nil {
		return ""
	}
	return a.server.Addr()
}

// Shutdown gracefully stops the listening server, if any.
func (a *App) Shutdown(ctx context.Context) error {
	if a.server == nil {
		return nil
	}
	return a.server.Shutdown(ctx)
}

// Compose assembles the top-level router without listening.
//
// The built-in middleware is registered first — trace-ID, JSON body decoding,
// cookie decoding, metrics collection, request logging, in that order — then
// every caller-supplied global middleware in the order given, then one
// sub-router per controller at its mount path, wrapped in the controller's
// own middleware chain. The Prometheus exposition endpoint is served at
// /metrics.
//
// Controller entries are either ready instances or zero-argument factory
// functions; factories are called during composition. Entries that do not
// resolve to a struct, and controllers without a mount path, are skipped
// with a warning. A controller with no route bindings aborts composition
// with *NoRoutesError.
func Compose(name string, middleware []Middleware, controllers ...any) (*App, error) {
	if name == "" {
		name = config.DefaultName
	}
	return composeWith(logger.NewLogger(name), name, middleware, controllers...)
}

// composeWith is Compose with an injected logger.
func composeWith(log *logger.Logger, name string, middleware []Middleware, controllers ...any) (*App, error) {
	mux := chi.NewRouter()

	m := newMetrics()
	mux.Use(withTraceID(log))
	mux.Use(decodeJSONBody)
	mux.Use(decodeCookies)
	mux.Use(m.collect)
	mux.Use(logRequests)
	for _, mw := range middleware {
		mux.Use(mw)
	}

	mux.Method(http.MethodGet, "/metrics", m.handler())

	for _, entry := range controllers {
		ctrl := instantiate(entry)
		if !isController(ctrl) {
			log.Warn().
				Str("entry", fmt.Sprintf("%T", entry)).
				Msg("controller entry did not resolve to a struct, skipping")
			continue
		}

		mount, ok := mountPathFor(ctrl)
		if !ok {
			log.Warn().
				Str("controller", fmt.Sprintf("%T", ctrl)).
				Msg("controller has no mount path, skipping")
			continue
		}

		sub, err := buildControllerRouter(ctrl, log)
		if err != nil {
			return nil, err
		}

		controllerMW := middlewareFor(ctrl, "")
		mux.Route(mount, func(r chi.Router) {
			for _, mw := range controllerMW {
				r.Use(mw)
			}
			r.Mount("/", sub)
		})

		log.Info().
			Str("controller", fmt.Sprintf("%T", ctrl)).
			Str("mount", mount).
			Msg("controller mounted")
	}

	return &App{name: name, mux: mux, logger: log}, nil
}

// Initialize composes the application and starts it listening.
//
// port 0 resolves through the environment (PORT, default 3000; a value that
// does not parse as an integer also falls back to 3000). An empty name falls
// back to the APP_NAME environment variable and then to the default literal.
// The returned App is already accepting connections.
func Initialize(port int, name string, middleware []Middleware, controllers ...any) (*App, error) {
	cfg, err := config.GetServerConfig()
	if err != nil {
		return nil, fmt.Errorf("error resolving server config: %w", err)
	}
	if port > 0 {
		cfg.Port = port
	}
	if name != "" {
		cfg.Name = name
	}

	app, err := Compose(cfg.Name, middleware, controllers...)
	if err != nil {
		return nil, err
	}

	srv := server.New(app.mux, fmt.Sprintf(":%d", cfg.Port), app.logger)
	if err := srv.Start(); err != nil {
		return nil, err
	}
	app.server = srv

	app.logger.Info().
		Str("name", cfg.Name).
		Int("port", cfg.Port).
		Msg("application listening")

	return app, nil
}

// instantiate resolves one controller entry: a zero-argument single-result
// factory function is called, anything else is used as given.
func instantiate(entry any) any {
	v := reflect.ValueOf(entry)
	if v.Kind() == reflect.Func && v.Type().NumIn() == 0 && v.Type().NumOut() == 1 {
		return v.Call(nil)[0].Interface()
	}
	return entry
}

// isController reports whether value is usable as a controller instance:
// a struct or a non-nil pointer to one.
func isController(value any) bool {
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	return rv.IsValid() && rv.Kind() == reflect.Struct
}
