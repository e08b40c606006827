package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-captioner/internal/config"
	"github.com/MKhiriev/go-captioner/internal/logger"
	"github.com/MKhiriev/go-captioner/internal/utils"
)

const translatePath = "/translate"

type translateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
}

type httpTranslationProvider struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPTranslationProvider constructs a [TranslationProvider] for a
// LibreTranslate-compatible server at cfg.TranslationURL.
//
// Each call is bounded by cfg.TranslationTimeout and retried cfg.RetryCount
// times on transport errors. Returns an error if the URL is empty or invalid.
func NewHTTPTranslationProvider(cfg config.Adapter, logger *logger.Logger) (TranslationProvider, error) {
	baseURL, err := normalizeBaseURL(cfg.TranslationURL)
	if err != nil {
		return nil, fmt.Errorf("invalid translation provider url: %w", err)
	}

	return &httpTranslationProvider{
		client: utils.NewProviderClient(baseURL, cfg.TranslationTimeout, cfg.RetryCount),
		logger: logger,
	}, nil
}

// Translate implements [TranslationProvider]. It POSTs
// {"q","source","target","format":"text"} to POST /translate and returns the
// "translatedText" of the reply. An empty translation of a non-empty text is
// a failure.
func (p *httpTranslationProvider) Translate(ctx context.Context, text, source, target string) (string, error) {
	var result translateResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(translateRequest{Q: text, Source: source, Target: target, Format: "text"}).
		SetResult(&result).
		Post(translatePath)
	if err != nil {
		return "", fmt.Errorf("%w: translate request: %w", ErrTranslation, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", fmt.Errorf("%w: %w", ErrTranslation, err)
	}

	translated := strings.TrimSpace(result.TranslatedText)
	if translated == "" && strings.TrimSpace(text) != "" {
		return "", fmt.Errorf("%w: empty translation", ErrTranslation)
	}

	p.logger.Debug().
		Str("func", "httpTranslationProvider.Translate").
		Str("source", source).
		Str("target", target).
		Msg("translation received")

	return translated, nil
}
