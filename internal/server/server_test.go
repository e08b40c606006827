package server

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-captioner/internal/config"
	"github.com/MKhiriev/go-captioner/internal/handler"
	"github.com/MKhiriev/go-captioner/internal/logger"
	"github.com/MKhiriev/go-captioner/internal/metrics"
	"github.com/MKhiriev/go-captioner/internal/service"
	"github.com/MKhiriev/go-captioner/internal/session"
	"github.com/MKhiriev/go-captioner/internal/utils"
	"github.com/MKhiriev/go-captioner/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type versionStub struct{}

func (versionStub) AppInfo(context.Context) models.VersionResponse {
	return models.VersionResponse{Version: "9.9.9"}
}

func testHandlers(t *testing.T, cfg config.Server) *handler.Handlers {
	t.Helper()
	sessions := session.NewRegistry(time.Hour, utils.NewUUIDGenerator())
	h, err := handler.NewHandlers(&service.Services{AppInfoService: versionStub{}}, sessions, metrics.New(), cfg, logger.Nop())
	require.NoError(t, err)
	return h
}

func TestNewServer_RequiresHTTPHandler(t *testing.T) {
	s, err := NewServer(nil, config.Server{HTTPAddress: ":0"}, logger.Nop())

	assert.ErrorIs(t, err, errNoHTTPHandler)
	assert.Nil(t, s)
}

func TestNewServer_RequiresAddress(t *testing.T) {
	h := testHandlers(t, config.Server{HTTPAddress: ":0"})

	s, err := NewServer(h, config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errNoHTTPAddress)
	assert.Nil(t, s)
}

func TestHTTPServer_ServesAndShutsDown(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", ShutdownTimeout: time.Second}
	hs := newHTTPServer(testHandlers(t, cfg).HTTP.Init(), cfg, logger.Nop())

	ln, err := hs.listen()
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- hs.serve(ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/api/version")
	require.NoError(t, err)
	var info models.VersionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&info))
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "9.9.9", info.Version)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	hs.shutdown(ctx)

	select {
	case err := <-done:
		assert.NoError(t, err, "clean shutdown is not an error")
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_RunStopsWithContext(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", ShutdownTimeout: time.Second}
	s, err := NewServer(testHandlers(t, cfg), cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestServer_RunFailsOnBadAddress(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:-1"}
	s, err := NewServer(testHandlers(t, cfg), cfg, logger.Nop())
	require.NoError(t, err)

	assert.Error(t, s.Run(context.Background()))
}

func TestNewHTTPServer_Timeouts(t *testing.T) {
	hs := newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: ":0", RequestTimeout: time.Minute}, logger.Nop())

	assert.Equal(t, time.Minute, hs.server.ReadTimeout)
	assert.Greater(t, hs.server.WriteTimeout, time.Minute)
	assert.Equal(t, readHeaderTimeout, hs.server.ReadHeaderTimeout)
}
