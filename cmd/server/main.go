package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-captioner/internal/adapter"
	"github.com/MKhiriev/go-captioner/internal/config"
	"github.com/MKhiriev/go-captioner/internal/handler"
	"github.com/MKhiriev/go-captioner/internal/logger"
	"github.com/MKhiriev/go-captioner/internal/metrics"
	"github.com/MKhiriev/go-captioner/internal/server"
	"github.com/MKhiriev/go-captioner/internal/service"
	"github.com/MKhiriev/go-captioner/internal/session"
	"github.com/MKhiriev/go-captioner/internal/store"
	"github.com/MKhiriev/go-captioner/internal/utils"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("captioner-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err := logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Str("level", cfg.App.LogLevel).Msg("invalid log level")
	}

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("caption_url", cfg.Adapter.CaptionURL).
		Str("translation_url", cfg.Adapter.TranslationURL).
		Str("base_language", cfg.Translation.BaseLanguage).
		Int("variants", cfg.Captions.Variants).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Error().Err(err).Msg("error closing storages")
		}
	}()

	providers, err := adapter.NewHTTPProviders(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating providers")
	}

	m := metrics.New()
	sessions := session.NewRegistry(cfg.Server.SessionTTL, utils.NewUUIDGenerator())
	m.RegisterSessionGauge(sessions.Len)

	services, err := service.NewServices(storages, providers, *cfg, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, sessions, m, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
