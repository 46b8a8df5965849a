package server

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-controller-kit/internal/logger"
)

func TestServer_StartServesAndShutsDown(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("hello"))
	})

	srv := New(handler, "127.0.0.1:0", logger.Nop())
	require.NoError(t, srv.Start())

	resp, err := http.Get("http://" + srv.Addr())
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(body))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))

	// the port is released after shutdown
	_, err = http.Get("http://" + srv.Addr())
	assert.Error(t, err)
}

func TestServer_StartFailsOnHeldPort(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	first := New(handler, "127.0.0.1:0", logger.Nop())
	require.NoError(t, first.Start())
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = first.Shutdown(ctx)
	}()

	second := New(handler, first.Addr(), logger.Nop())
	assert.Error(t, second.Start())
}

func TestServer_AddrBeforeStart(t *testing.T) {
	srv := New(http.NotFoundHandler(), "127.0.0.1:8080", logger.Nop())
	assert.Equal(t, "127.0.0.1:8080", srv.Addr())
}
