// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package routing

import (
	"errors"
	"fmt"
)

// Sentinel errors recognized by the handler wrapper. Handlers classify their
// failures by wrapping one of these with [fmt.Errorf] (or returning it
// directly); the wrapper matches with [errors.Is]. Any other error falls into
// the internal-server-error class.
var (
	// ErrNotFound classifies a handler failure as a missing resource.
	// The wrapper responds with 404 and {"error": "Not Found"}.
	ErrNotFound = errors.New("not found")

	// ErrBadRequest classifies a handler failure as a malformed request.
	// The wrapper responds with 400 and {"error": "Malformed request"}.
	ErrBadRequest = errors.New("malformed request")
)

// NoRoutesError reports a controller that was handed to the composer but
// declares no route bindings at all. It is a configuration error raised at
// composition time: the application must not start in that state.
type NoRoutesError struct {
	// Controller is the Go type of the offending controller, e.g.
	// "*api.StatusController".
	Controller string
}

func (e *NoRoutesError) Error() string {
	return fmt.Sprintf("controller %s declares no route bindings", e.Controller)
}

// BadHandlerError reports a method that carries a route binding but does not
// have the [HandlerFunc] signature. Like [NoRoutesError] it is fatal at
// composition time.
type BadHandlerError struct {
	Controller string
	Member     string
}

func (e *BadHandlerError) Error() string {
	return fmt.Sprintf(
		"method %s.%s carries a route binding but does not match func(http.ResponseWriter, *http.Request) (any, error)",
		e.Controller, e.Member,
	)
}
