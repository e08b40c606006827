package handler

import (
	"github.com/MKhiriev/go-captioner/internal/config"
	"github.com/MKhiriev/go-captioner/internal/handler/http"
	"github.com/MKhiriev/go-captioner/internal/logger"
	"github.com/MKhiriev/go-captioner/internal/metrics"
	"github.com/MKhiriev/go-captioner/internal/service"
	"github.com/MKhiriev/go-captioner/internal/session"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, sessions *session.Registry, m *metrics.Metrics, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHTTPAddress
	}

	return &Handlers{
		HTTP: http.NewHandler(services, sessions, m, cfg, logger),
	}, nil
}
