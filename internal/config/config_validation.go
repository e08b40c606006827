// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
)

// validate checks that the final merged [StructuredConfig] can be used at
// startup. All violated groups are reported at once.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 {
		errs = append(errs, fmt.Errorf("%w: token sign key and positive token duration are required", ErrInvalidAppConfigs))
	}
	if cfg.App.PasswordHashTime == 0 || cfg.App.PasswordHashMemory == 0 || cfg.App.PasswordHashThreads == 0 {
		errs = append(errs, fmt.Errorf("%w: password hash parameters must be positive", ErrInvalidAppConfigs))
	}

	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs))
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 ||
		cfg.Server.ShutdownTimeout <= 0 || cfg.Server.SessionTTL <= 0 || cfg.Server.MaxUploadSize <= 0 {
		errs = append(errs, ErrInvalidServerConfigs)
	}

	if cfg.Adapter.CaptionURL == "" || cfg.Adapter.TranslationURL == "" {
		errs = append(errs, fmt.Errorf("%w: provider URLs are required", ErrInvalidAdapterConfigs))
	}
	if cfg.Adapter.CaptionTimeout <= 0 || cfg.Adapter.TranslationTimeout <= 0 || cfg.Adapter.FetchTimeout <= 0 ||
		cfg.Adapter.RetryCount < 0 || cfg.Adapter.MaxImageBytes <= 0 || cfg.Adapter.MaxImagePixels <= 0 {
		errs = append(errs, fmt.Errorf("%w: timeouts and limits must be positive", ErrInvalidAdapterConfigs))
	}

	if cfg.Captions.Variants < 0 || cfg.Captions.Concurrency < 1 {
		errs = append(errs, ErrInvalidCaptionConfigs)
	}

	if cfg.Translation.BaseLanguage != AutoDetectLanguage {
		if _, err := language.Parse(cfg.Translation.BaseLanguage); err != nil {
			errs = append(errs, fmt.Errorf("%w: base language %q: %w", ErrInvalidTranslationConfigs, cfg.Translation.BaseLanguage, err))
		}
	}
	if len(cfg.Translation.Languages) == 0 || cfg.Translation.Concurrency < 1 {
		errs = append(errs, fmt.Errorf("%w: languages and concurrency are required", ErrInvalidTranslationConfigs))
	}

	return errors.Join(errs...)
}
