package service

import (
	"context"
	"fmt"
	"image"
	"strings"
	"time"

	"github.com/MKhiriev/go-captioner/internal/adapter"
	"github.com/MKhiriev/go-captioner/internal/config"
	"github.com/MKhiriev/go-captioner/internal/logger"
	"github.com/MKhiriev/go-captioner/internal/metrics"
	"github.com/MKhiriev/go-captioner/models"
	"golang.org/x/sync/errgroup"
)

type captionService struct {
	provider adapter.CaptionProvider

	variants    int
	concurrency int
	callTimeout time.Duration

	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewCaptionService constructs the diversification engine: one deterministic
// call plus captionsCfg.Variants noise-perturbed calls, at most
// captionsCfg.Concurrency of them in flight. Every call is bounded by
// callTimeout.
func NewCaptionService(provider adapter.CaptionProvider, captionsCfg config.Captions, callTimeout time.Duration, m *metrics.Metrics, logger *logger.Logger) CaptionService {
	concurrency := captionsCfg.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	return &captionService{
		provider:    provider,
		variants:    max(captionsCfg.Variants, 0),
		concurrency: concurrency,
		callTimeout: callTimeout,
		metrics:     m,
		logger:      logger,
	}
}

// Diversify implements CaptionService.
//
// The noise-free call must succeed, otherwise ErrGenerationFailed is
// returned. Noisy calls that fail or time out are skipped. Candidates are
// deduplicated by exact text, the base candidate first and the noisy ones in
// attempt order regardless of completion order.
//
// If ctx is done when the noisy calls finish, its error is returned so that
// no partial result reaches the session.
func (s *captionService) Diversify(ctx context.Context, img image.Image) ([]models.CaptionCandidate, error) {
	log := logger.FromContext(ctx)

	base, err := s.generate(ctx, img, false)
	if err != nil {
		log.Err(err).Msg("base caption generation failed")
		s.metrics.RecordGeneration(metrics.OutcomeFailed, 0)
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	noisy := make([]string, s.variants)

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i := range noisy {
		g.Go(func() error {
			text, err := s.generate(ctx, img, true)
			if err != nil {
				log.Warn().Err(err).Int("attempt", i).Msg("noisy caption generation failed")
				s.metrics.RecordNoisyAttempt(metrics.OutcomeFailed)
				return nil
			}
			noisy[i] = text
			return nil
		})
	}
	_ = g.Wait()

	if err = ctx.Err(); err != nil {
		s.metrics.RecordGeneration(metrics.OutcomeFailed, 0)
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	candidates := assembleCandidates(base, noisy, s.metrics)
	s.metrics.RecordGeneration(metrics.OutcomeOK, len(candidates))

	log.Debug().
		Int("variants", s.variants).
		Int("candidates", len(candidates)).
		Msg("captions diversified")

	return candidates, nil
}

func (s *captionService) generate(ctx context.Context, img image.Image, noise bool) (string, error) {
	callCtx, cancel := withCallTimeout(ctx, s.callTimeout)
	defer cancel()

	text, err := s.provider.Generate(callCtx, img, noise)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: blank caption", adapter.ErrGeneration)
	}
	return text, nil
}

// assembleCandidates keeps the first occurrence of every text. Empty
// entries mark failed attempts.
func assembleCandidates(base string, noisy []string, m *metrics.Metrics) []models.CaptionCandidate {
	seen := map[string]struct{}{base: {}}
	candidates := []models.CaptionCandidate{{Text: base, IsBase: true}}

	for _, text := range noisy {
		if text == "" {
			continue
		}
		if _, ok := seen[text]; ok {
			m.RecordNoisyAttempt(metrics.OutcomeDuplicate)
			continue
		}
		seen[text] = struct{}{}
		m.RecordNoisyAttempt(metrics.OutcomeOK)
		candidates = append(candidates, models.CaptionCandidate{Text: text})
	}

	return candidates
}
