package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors StructuredConfig for JSON and YAML files. Durations are
// written as strings such as "30s" or "1h".
type fileConfig struct {
	App struct {
		TokenSignKey        string   `json:"token_sign_key" yaml:"token_sign_key"`
		TokenIssuer         string   `json:"token_issuer" yaml:"token_issuer"`
		TokenDuration       Duration `json:"token_duration" yaml:"token_duration"`
		Version             string   `json:"version" yaml:"version"`
		LogLevel            string   `json:"log_level" yaml:"log_level"`
		PasswordHashTime    uint32   `json:"password_hash_time" yaml:"password_hash_time"`
		PasswordHashMemory  uint32   `json:"password_hash_memory" yaml:"password_hash_memory"`
		PasswordHashThreads uint8    `json:"password_hash_threads" yaml:"password_hash_threads"`
	} `json:"app" yaml:"app"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db" yaml:"db"`
	} `json:"storage" yaml:"storage"`

	Server struct {
		HTTPAddress     string   `json:"http_address" yaml:"http_address"`
		RequestTimeout  Duration `json:"request_timeout" yaml:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
		SessionTTL      Duration `json:"session_ttl" yaml:"session_ttl"`
		MaxUploadSize   int64    `json:"max_upload_size" yaml:"max_upload_size"`
	} `json:"server" yaml:"server"`

	Adapter struct {
		CaptionURL         string   `json:"caption_url" yaml:"caption_url"`
		TranslationURL     string   `json:"translation_url" yaml:"translation_url"`
		CaptionTimeout     Duration `json:"caption_timeout" yaml:"caption_timeout"`
		TranslationTimeout Duration `json:"translation_timeout" yaml:"translation_timeout"`
		FetchTimeout       Duration `json:"fetch_timeout" yaml:"fetch_timeout"`
		RetryCount         int      `json:"retry_count" yaml:"retry_count"`
		MaxImageBytes      int64    `json:"max_image_bytes" yaml:"max_image_bytes"`
		MaxImagePixels     int64    `json:"max_image_pixels" yaml:"max_image_pixels"`
	} `json:"adapter" yaml:"adapter"`

	Captions struct {
		Variants    int `json:"variants" yaml:"variants"`
		Concurrency int `json:"concurrency" yaml:"concurrency"`
	} `json:"captions" yaml:"captions"`

	Translation struct {
		BaseLanguage string   `json:"base_language" yaml:"base_language"`
		Languages    []string `json:"languages" yaml:"languages"`
		Concurrency  int      `json:"concurrency" yaml:"concurrency"`
	} `json:"translation" yaml:"translation"`
}

// parseFile reads a configuration file. Files ending in .yaml or .yml are
// decoded as YAML, everything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return fc.toStructured(), nil
}

func (fc *fileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:        fc.App.TokenSignKey,
			TokenIssuer:         fc.App.TokenIssuer,
			TokenDuration:       time.Duration(fc.App.TokenDuration),
			Version:             fc.App.Version,
			LogLevel:            fc.App.LogLevel,
			PasswordHashTime:    fc.App.PasswordHashTime,
			PasswordHashMemory:  fc.App.PasswordHashMemory,
			PasswordHashThreads: fc.App.PasswordHashThreads,
		},
		Storage: Storage{
			DB: DB{DSN: fc.Storage.DB.DSN},
		},
		Server: Server{
			HTTPAddress:     fc.Server.HTTPAddress,
			RequestTimeout:  time.Duration(fc.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(fc.Server.ShutdownTimeout),
			SessionTTL:      time.Duration(fc.Server.SessionTTL),
			MaxUploadSize:   fc.Server.MaxUploadSize,
		},
		Adapter: Adapter{
			CaptionURL:         fc.Adapter.CaptionURL,
			TranslationURL:     fc.Adapter.TranslationURL,
			CaptionTimeout:     time.Duration(fc.Adapter.CaptionTimeout),
			TranslationTimeout: time.Duration(fc.Adapter.TranslationTimeout),
			FetchTimeout:       time.Duration(fc.Adapter.FetchTimeout),
			RetryCount:         fc.Adapter.RetryCount,
			MaxImageBytes:      fc.Adapter.MaxImageBytes,
			MaxImagePixels:     fc.Adapter.MaxImagePixels,
		},
		Captions: Captions{
			Variants:    fc.Captions.Variants,
			Concurrency: fc.Captions.Concurrency,
		},
		Translation: Translation{
			BaseLanguage: fc.Translation.BaseLanguage,
			Languages:    fc.Translation.Languages,
			Concurrency:  fc.Translation.Concurrency,
		},
	}
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" in both JSON and YAML. Plain numbers are nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!int" {
		var n int64
		if err := node.Decode(&n); err != nil {
			return err
		}
		*d = Duration(time.Duration(n))
		return nil
	}

	tmp, err := time.ParseDuration(node.Value)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
