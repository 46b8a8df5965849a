package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/MKhiriev/go-controller-kit/internal/logger"
)

// Server serves one http.Handler on one TCP address.
type Server struct {
	server *http.Server
	ln     net.Listener
	logger *logger.Logger
}

// New creates a Server for handler on addr (e.g. ":3000"). The socket is not
// bound until Start is called.
func New(handler http.Handler, addr string, logger *logger.Logger) *Server {
	return &Server{
		server: &http.Server{
			Addr:    addr,
			Handler: handler,
		},
		logger: logger,
	}
}

// Start binds the listening socket and begins serving in the background.
// The bind happens synchronously: a nil return means the port is held and
// requests are being accepted. Serve errors after startup (other than a
// clean shutdown) are logged, not returned.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("error binding listener on %s: %w", s.server.Addr, err)
	}
	s.ln = ln

	go func() {
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	return nil
}

// Addr returns the bound listener address. Useful when Start was called with
// port 0 and the kernel picked the port.
func (s *Server) Addr() string {
	if s.ln != nil {
		return s.ln.Addr().String()
	}
	return s.server.Addr
}

// Shutdown gracefully stops the server, waiting for in-flight requests up to
// the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down HTTP server: %w", err)
	}

	s.logger.Info().Msg("server shut down gracefully")
	return nil
}
