package service

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/go-captioner/internal/adapter"
	"github.com/MKhiriev/go-captioner/internal/config"
	"github.com/MKhiriev/go-captioner/internal/logger"
	"github.com/MKhiriev/go-captioner/internal/metrics"
	"github.com/MKhiriev/go-captioner/models"
	"github.com/abadojack/whatlanggo"
	"golang.org/x/sync/errgroup"
)

// fallbackSourceLanguage is used when detection cannot tell the language of
// a text.
const fallbackSourceLanguage = "en"

type translationService struct {
	provider adapter.TranslationProvider

	baseLanguage string
	languages    []string
	concurrency  int
	callTimeout  time.Duration

	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewTranslationService constructs the translation fan-out. At most
// cfg.Concurrency provider calls run at once and each one is bounded by
// callTimeout.
func NewTranslationService(provider adapter.TranslationProvider, cfg config.Translation, callTimeout time.Duration, m *metrics.Metrics, logger *logger.Logger) TranslationService {
	concurrency := cfg.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	return &translationService{
		provider:     provider,
		baseLanguage: normalizeLanguage(cfg.BaseLanguage),
		languages:    normalizeTargets(cfg.Languages),
		concurrency:  concurrency,
		callTimeout:  callTimeout,
		metrics:      m,
		logger:       logger,
	}
}

// Translate implements TranslationService.
//
// Targets are trimmed, lower-cased and deduplicated in first-seen order;
// blank codes are dropped. A target equal to source is answered with text
// itself and status ok without calling the provider. A failed or timed-out
// call yields the untranslated text with status failed and does not affect
// the other languages. An empty source or "auto" detects the language of
// text.
func (s *translationService) Translate(ctx context.Context, text, source string, targets []string) []models.TranslationResult {
	log := logger.FromContext(ctx)

	source = normalizeLanguage(source)
	if source == "" || source == config.AutoDetectLanguage {
		source = detectLanguage(text)
	}

	unique := normalizeTargets(targets)
	results := make([]models.TranslationResult, len(unique))

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, target := range unique {
		if target == source {
			results[i] = models.TranslationResult{LanguageCode: target, Text: text, Status: models.TranslationOK}
			s.metrics.RecordTranslation(target, string(models.TranslationOK))
			continue
		}

		g.Go(func() error {
			callCtx, cancel := withCallTimeout(ctx, s.callTimeout)
			defer cancel()

			translated, err := s.provider.Translate(callCtx, text, source, target)
			if err != nil {
				log.Warn().Err(err).Str("source", source).Str("target", target).Msg("translation failed")
				results[i] = models.TranslationResult{LanguageCode: target, Text: text, Status: models.TranslationFailed}
				s.metrics.RecordTranslation(target, string(models.TranslationFailed))
				return nil
			}

			results[i] = models.TranslationResult{LanguageCode: target, Text: translated, Status: models.TranslationOK}
			s.metrics.RecordTranslation(target, string(models.TranslationOK))
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// Languages implements TranslationService.
func (s *translationService) Languages(ctx context.Context) models.LanguagesResponse {
	return models.LanguagesResponse{
		BaseLanguage: s.baseLanguage,
		Languages:    slices.Clone(s.languages),
	}
}

func normalizeLanguage(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

func normalizeTargets(targets []string) []string {
	unique := make([]string, 0, len(targets))
	seen := make(map[string]struct{}, len(targets))
	for _, target := range targets {
		code := normalizeLanguage(target)
		if code == "" {
			continue
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		unique = append(unique, code)
	}
	return unique
}

// detectLanguage returns the ISO 639-1 code of text, or
// fallbackSourceLanguage when no language can be told.
func detectLanguage(text string) string {
	if code := whatlanggo.DetectLang(text).Iso6391(); code != "" {
		return code
	}
	return fallbackSourceLanguage
}
