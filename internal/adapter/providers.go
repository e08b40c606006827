package adapter

import (
	"fmt"

	"github.com/MKhiriev/go-captioner/internal/config"
	"github.com/MKhiriev/go-captioner/internal/logger"
)

// Providers bundles the outbound collaborators used by the service layer.
type Providers struct {
	Captions     CaptionProvider
	Translations TranslationProvider
	Images       ImageFetcher
}

// NewHTTPProviders builds the HTTP implementations of every provider.
func NewHTTPProviders(cfg config.Adapter, logger *logger.Logger) (*Providers, error) {
	captions, err := NewHTTPCaptionProvider(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating caption provider: %w", err)
	}

	translations, err := NewHTTPTranslationProvider(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating translation provider: %w", err)
	}

	return &Providers{
		Captions:     captions,
		Translations: translations,
		Images:       NewHTTPImageFetcher(cfg, logger),
	}, nil
}
