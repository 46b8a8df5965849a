// Package server wraps the standard http.Server with synchronous listener
// binding and graceful shutdown, so the composer can hand back an
// already-listening application.
package server
