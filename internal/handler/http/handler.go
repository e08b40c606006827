package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-captioner/internal/config"
	"github.com/MKhiriev/go-captioner/internal/logger"
	"github.com/MKhiriev/go-captioner/internal/metrics"
	"github.com/MKhiriev/go-captioner/internal/service"
	"github.com/MKhiriev/go-captioner/internal/session"
	"github.com/MKhiriev/go-captioner/internal/utils"
	"github.com/MKhiriev/go-captioner/models"
)

type Handler struct {
	services *service.Services
	sessions *session.Registry
	metrics  *metrics.Metrics

	requestTimeout time.Duration
	maxUploadSize  int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, sessions *session.Registry, m *metrics.Metrics, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		sessions:       sessions,
		metrics:        m,
		requestTimeout: cfg.RequestTimeout,
		maxUploadSize:  cfg.MaxUploadSize,
		logger:         logger,
	}
}

func writeMessage(w http.ResponseWriter, message string, statusCode int) {
	utils.WriteJSON(w, models.MessageResponse{Message: message}, statusCode)
}
