package service

import (
	"fmt"

	"github.com/MKhiriev/go-captioner/internal/adapter"
	"github.com/MKhiriev/go-captioner/internal/config"
	"github.com/MKhiriev/go-captioner/internal/crypto"
	"github.com/MKhiriev/go-captioner/internal/logger"
	"github.com/MKhiriev/go-captioner/internal/metrics"
	"github.com/MKhiriev/go-captioner/internal/store"
)

type Services struct {
	AuthService        AuthService
	CaptionService     CaptionService
	TranslationService TranslationService
	ImageService       ImageService
	CaptionFlowService CaptionFlowService
	AppInfoService     AppInfoService
}

func NewServices(storages *store.Storages, providers *adapter.Providers, cfg config.StructuredConfig, m *metrics.Metrics, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	hasher := crypto.NewArgon2Hasher(crypto.Argon2Params{
		Time:    cfg.App.PasswordHashTime,
		Memory:  cfg.App.PasswordHashMemory,
		Threads: cfg.App.PasswordHashThreads,
	})

	captionService := NewCaptionService(providers.Captions, cfg.Captions, cfg.Adapter.CaptionTimeout, m, logger)
	translationService := NewTranslationService(providers.Translations, cfg.Translation, cfg.Adapter.TranslationTimeout, m, logger)

	return &Services{
		AuthService:        NewAuthService(storages.UserRepository, hasher, cfg.App, m, logger),
		CaptionService:     captionService,
		TranslationService: translationService,
		ImageService:       NewImageService(providers.Images, cfg.Adapter.FetchTimeout, cfg.Adapter.MaxImagePixels, logger),
		CaptionFlowService: NewCaptionFlowService(
			captionService,
			translationService,
			storages.CaptionRepository,
			cfg.Translation.BaseLanguage,
			m,
			logger,
		),
		AppInfoService: appInfoService,
	}, nil
}
