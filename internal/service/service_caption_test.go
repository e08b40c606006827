package service

import (
	"context"
	"fmt"
	"image"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-captioner/internal/adapter"
	"github.com/MKhiriev/go-captioner/internal/config"
	"github.com/MKhiriev/go-captioner/internal/logger"
	"github.com/MKhiriev/go-captioner/internal/metrics"
	"github.com/MKhiriev/go-captioner/internal/mock"
	"github.com/MKhiriev/go-captioner/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"pgregory.net/rapid"
)

func newTestCaptionSvc(provider adapter.CaptionProvider, variants, concurrency int, timeout time.Duration) CaptionService {
	return NewCaptionService(provider, config.Captions{Variants: variants, Concurrency: concurrency}, timeout, metrics.New(), logger.Nop())
}

func TestCaptionService_Diversify_DedupKeepsOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock.NewMockCaptionProvider(ctrl)
	img := testImage()

	// Concurrency 1 runs the noisy calls strictly in attempt order.
	gomock.InOrder(
		provider.EXPECT().Generate(gomock.Any(), img, false).Return("a dog running", nil),
		provider.EXPECT().Generate(gomock.Any(), img, true).Return("a dog running", nil),
		provider.EXPECT().Generate(gomock.Any(), img, true).Return("a dog runs", nil),
		provider.EXPECT().Generate(gomock.Any(), img, true).Return("a dog running", nil),
		provider.EXPECT().Generate(gomock.Any(), img, true).Return("", adapter.ErrGeneration),
	)

	got, err := newTestCaptionSvc(provider, 4, 1, time.Second).Diversify(context.Background(), img)

	require.NoError(t, err)
	assert.Equal(t, []models.CaptionCandidate{
		{Text: "a dog running", IsBase: true},
		{Text: "a dog runs"},
	}, got)
}

func TestCaptionService_Diversify_BaseFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock.NewMockCaptionProvider(ctrl)

	provider.EXPECT().Generate(gomock.Any(), gomock.Any(), false).Return("", adapter.ErrGeneration)

	got, err := newTestCaptionSvc(provider, 4, 4, time.Second).Diversify(context.Background(), testImage())

	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrGenerationFailed)
	assert.ErrorIs(t, err, adapter.ErrGeneration)
}

func TestCaptionService_Diversify_BlankBaseIsFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock.NewMockCaptionProvider(ctrl)

	provider.EXPECT().Generate(gomock.Any(), gomock.Any(), false).Return("  ", nil)

	_, err := newTestCaptionSvc(provider, 0, 1, time.Second).Diversify(context.Background(), testImage())

	assert.ErrorIs(t, err, ErrGenerationFailed)
}

func TestCaptionService_Diversify_NoVariants(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock.NewMockCaptionProvider(ctrl)

	provider.EXPECT().Generate(gomock.Any(), gomock.Any(), false).Return("a cat", nil)

	got, err := newTestCaptionSvc(provider, 0, 4, time.Second).Diversify(context.Background(), testImage())

	require.NoError(t, err)
	assert.Equal(t, []models.CaptionCandidate{{Text: "a cat", IsBase: true}}, got)
}

func TestCaptionService_Diversify_NoisyTimeoutTolerated(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock.NewMockCaptionProvider(ctrl)

	provider.EXPECT().Generate(gomock.Any(), gomock.Any(), false).Return("a cat", nil)
	provider.EXPECT().Generate(gomock.Any(), gomock.Any(), true).DoAndReturn(
		func(ctx context.Context, _ image.Image, _ bool) (string, error) {
			<-ctx.Done()
			return "", fmt.Errorf("%w: %w", adapter.ErrGeneration, ctx.Err())
		},
	).Times(3)

	got, err := newTestCaptionSvc(provider, 3, 3, 20*time.Millisecond).Diversify(context.Background(), testImage())

	require.NoError(t, err)
	assert.Equal(t, []models.CaptionCandidate{{Text: "a cat", IsBase: true}}, got)
}

func TestCaptionService_Diversify_CanceledDuringNoisyCalls(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock.NewMockCaptionProvider(ctrl)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	provider.EXPECT().Generate(gomock.Any(), gomock.Any(), false).Return("a cat", nil)
	provider.EXPECT().Generate(gomock.Any(), gomock.Any(), true).DoAndReturn(
		func(ctx context.Context, _ image.Image, _ bool) (string, error) {
			cancel()
			return "a small cat", nil
		},
	)

	got, err := newTestCaptionSvc(provider, 1, 1, time.Second).Diversify(ctx, testImage())

	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrGenerationFailed)
	assert.ErrorIs(t, err, context.Canceled)
}

// captionFunc adapts a function to adapter.CaptionProvider.
type captionFunc func(ctx context.Context, img image.Image, noise bool) (string, error)

func (f captionFunc) Generate(ctx context.Context, img image.Image, noise bool) (string, error) {
	return f(ctx, img, noise)
}

func TestCaptionService_Diversify_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		variants := rapid.IntRange(0, 8).Draw(t, "variants")
		concurrency := rapid.IntRange(1, 4).Draw(t, "concurrency")
		base := rapid.SampledFrom([]string{"a dog", "a cat", "a bird"}).Draw(t, "base")
		pool := []string{"a dog", "a cat", "a bird", "two dogs", "", "fail"}
		outcomes := rapid.SliceOfN(rapid.SampledFrom(pool), variants, variants).Draw(t, "outcomes")

		var next atomic.Int64
		provider := captionFunc(func(_ context.Context, _ image.Image, noise bool) (string, error) {
			if !noise {
				return base, nil
			}
			switch out := outcomes[next.Add(1)-1]; out {
			case "fail":
				return "", adapter.ErrGeneration
			default:
				return out, nil
			}
		})

		got, err := newTestCaptionSvc(provider, variants, concurrency, time.Second).Diversify(context.Background(), testImage())
		if err != nil {
			t.Fatalf("diversify: %v", err)
		}

		if len(got) < 1 || len(got) > variants+1 {
			t.Fatalf("got %d candidates for %d variants", len(got), variants)
		}
		if got[0].Text != base || !got[0].IsBase {
			t.Fatalf("first candidate %+v is not the base %q", got[0], base)
		}
		seen := map[string]bool{}
		for i, c := range got {
			if seen[c.Text] {
				t.Fatalf("duplicate candidate %q", c.Text)
			}
			seen[c.Text] = true
			if i > 0 && c.IsBase {
				t.Fatalf("candidate %d marked as base", i)
			}
			if c.Text == "" {
				t.Fatalf("empty candidate at %d", i)
			}
		}
	})
}

func TestAssembleCandidates_SkipsFailedAttempts(t *testing.T) {
	got := assembleCandidates("a", []string{"", "b", "a", "", "b", "c"}, metrics.New())

	assert.Equal(t, []models.CaptionCandidate{
		{Text: "a", IsBase: true},
		{Text: "b"},
		{Text: "c"},
	}, got)
}

func TestNewCaptionService_ClampsSettings(t *testing.T) {
	svc := NewCaptionService(nil, config.Captions{Variants: -3, Concurrency: 0}, time.Second, metrics.New(), logger.Nop()).(*captionService)

	assert.Equal(t, 0, svc.variants)
	assert.Equal(t, 1, svc.concurrency)
}
