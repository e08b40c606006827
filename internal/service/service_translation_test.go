package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-captioner/internal/adapter"
	"github.com/MKhiriev/go-captioner/internal/config"
	"github.com/MKhiriev/go-captioner/internal/logger"
	"github.com/MKhiriev/go-captioner/internal/metrics"
	"github.com/MKhiriev/go-captioner/internal/mock"
	"github.com/MKhiriev/go-captioner/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"pgregory.net/rapid"
)

func newTestTranslationSvc(provider adapter.TranslationProvider, timeout time.Duration) TranslationService {
	cfg := config.Translation{
		BaseLanguage: "en",
		Languages:    []string{"en", "FR", " de ", "fr"},
		Concurrency:  4,
	}
	return NewTranslationService(provider, cfg, timeout, metrics.New(), logger.Nop())
}

func TestTranslationService_Translate_FanOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock.NewMockTranslationProvider(ctrl)

	provider.EXPECT().Translate(gomock.Any(), "a dog running", "en", "fr").Return("un chien qui court", nil)
	provider.EXPECT().Translate(gomock.Any(), "a dog running", "en", "xx").Return("", adapter.ErrTranslation)

	got := newTestTranslationSvc(provider, time.Second).
		Translate(context.Background(), "a dog running", "en", []string{"en", "fr", "xx", "FR", " "})

	assert.Equal(t, []models.TranslationResult{
		{LanguageCode: "en", Text: "a dog running", Status: models.TranslationOK},
		{LanguageCode: "fr", Text: "un chien qui court", Status: models.TranslationOK},
		{LanguageCode: "xx", Text: "a dog running", Status: models.TranslationFailed},
	}, got)
}

func TestTranslationService_Translate_NoTargets(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock.NewMockTranslationProvider(ctrl)

	got := newTestTranslationSvc(provider, time.Second).Translate(context.Background(), "text", "en", nil)

	assert.Empty(t, got)
}

func TestTranslationService_Translate_TimeoutIsPerLanguage(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock.NewMockTranslationProvider(ctrl)

	provider.EXPECT().Translate(gomock.Any(), "hello", "en", "ja").DoAndReturn(
		func(ctx context.Context, _, _, _ string) (string, error) {
			<-ctx.Done()
			return "", fmt.Errorf("%w: %w", adapter.ErrTranslation, ctx.Err())
		},
	)
	provider.EXPECT().Translate(gomock.Any(), "hello", "en", "de").Return("hallo", nil)

	got := newTestTranslationSvc(provider, 20*time.Millisecond).
		Translate(context.Background(), "hello", "en", []string{"ja", "de"})

	assert.Equal(t, []models.TranslationResult{
		{LanguageCode: "ja", Text: "hello", Status: models.TranslationFailed},
		{LanguageCode: "de", Text: "hallo", Status: models.TranslationOK},
	}, got)
}

func TestTranslationService_Translate_AutoDetectsSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock.NewMockTranslationProvider(ctrl)

	text := "Le chien court dans le jardin avec les enfants pendant que leurs parents regardent."
	provider.EXPECT().Translate(gomock.Any(), text, "fr", "en").Return("The dog runs in the garden.", nil)

	got := newTestTranslationSvc(provider, time.Second).
		Translate(context.Background(), text, config.AutoDetectLanguage, []string{"fr", "en"})

	assert.Equal(t, models.TranslationResult{LanguageCode: "fr", Text: text, Status: models.TranslationOK}, got[0])
	assert.Equal(t, models.TranslationResult{LanguageCode: "en", Text: "The dog runs in the garden.", Status: models.TranslationOK}, got[1])
}

func TestDetectLanguage_FallsBack(t *testing.T) {
	assert.Equal(t, fallbackSourceLanguage, detectLanguage(""))
	assert.Equal(t, fallbackSourceLanguage, detectLanguage("12345 !!!"))
}

func TestTranslationService_Languages(t *testing.T) {
	svc := newTestTranslationSvc(nil, time.Second)

	got := svc.Languages(context.Background())
	assert.Equal(t, models.LanguagesResponse{BaseLanguage: "en", Languages: []string{"en", "fr", "de"}}, got)

	got.Languages[0] = "mutated"
	assert.Equal(t, "en", svc.Languages(context.Background()).Languages[0])
}

// translationFunc adapts a function to adapter.TranslationProvider.
type translationFunc func(ctx context.Context, text, source, target string) (string, error)

func (f translationFunc) Translate(ctx context.Context, text, source, target string) (string, error) {
	return f(ctx, text, source, target)
}

func TestTranslationService_Translate_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		targets := rapid.SliceOfN(rapid.SampledFrom([]string{"en", "fr", "de", "xx", "ja", "zh-cn"}), 0, 12).Draw(t, "targets")
		failing := rapid.SampledFrom([]string{"xx", "ja", "none"}).Draw(t, "failing")

		provider := translationFunc(func(_ context.Context, text, source, target string) (string, error) {
			if target == source {
				return "", fmt.Errorf("provider called for the source language %q", target)
			}
			if target == failing {
				return "", adapter.ErrTranslation
			}
			return target + ":" + text, nil
		})

		got := newTestTranslationSvc(provider, time.Second).Translate(context.Background(), "a cat", "en", targets)

		want := normalizeTargets(targets)
		if len(got) != len(want) {
			t.Fatalf("got %d results for %d unique targets", len(got), len(want))
		}
		for i, res := range got {
			if res.LanguageCode != want[i] {
				t.Fatalf("result %d is %q, want %q", i, res.LanguageCode, want[i])
			}
			switch {
			case res.LanguageCode == "en":
				if res.Status != models.TranslationOK || res.Text != "a cat" {
					t.Fatalf("source language result %+v", res)
				}
			case res.LanguageCode == failing:
				if res.Status != models.TranslationFailed || res.Text != "a cat" {
					t.Fatalf("failed result %+v", res)
				}
			default:
				if res.Status != models.TranslationOK || res.Text != res.LanguageCode+":a cat" {
					t.Fatalf("translated result %+v", res)
				}
			}
		}
	})
}
