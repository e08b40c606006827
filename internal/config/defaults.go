package config

import "time"

// AutoDetectLanguage as the base language makes the translation fan-out
// detect the source language of every text it translates.
const AutoDetectLanguage = "auto"

// DefaultLanguages is the language selection offered when none is configured.
var DefaultLanguages = []string{"en", "ta", "hi", "es", "fr", "zh-cn", "ko", "de", "it", "ja"}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:         "go-captioner",
			TokenDuration:       12 * time.Hour,
			Version:             "dev",
			LogLevel:            "info",
			PasswordHashTime:    2,
			PasswordHashMemory:  19 * 1024,
			PasswordHashThreads: 1,
		},
		Storage: Storage{
			DB: DB{DSN: "login.db"},
		},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			RequestTimeout:  2 * time.Minute,
			ShutdownTimeout: 10 * time.Second,
			SessionTTL:      12 * time.Hour,
			MaxUploadSize:   10 << 20,
		},
		Adapter: Adapter{
			CaptionURL:         "http://localhost:8000",
			TranslationURL:     "http://localhost:5000",
			CaptionTimeout:     30 * time.Second,
			TranslationTimeout: 10 * time.Second,
			FetchTimeout:       15 * time.Second,
			RetryCount:         1,
			MaxImageBytes:      10 << 20,
			MaxImagePixels:     25_000_000,
		},
		Captions: Captions{
			Variants:    4,
			Concurrency: 4,
		},
		Translation: Translation{
			BaseLanguage: "en",
			Languages:    append([]string(nil), DefaultLanguages...),
			Concurrency:  4,
		},
	}
}
