package adapter

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-captioner/internal/config"
	"github.com/MKhiriev/go-captioner/internal/logger"
	"github.com/MKhiriev/go-captioner/internal/utils"
)

type httpImageFetcher struct {
	client   *utils.HTTPClient
	maxBytes int64
	logger   *logger.Logger
}

// NewHTTPImageFetcher constructs an [ImageFetcher] that downloads images over
// HTTP(S). Each download is bounded by cfg.FetchTimeout and by
// cfg.MaxImageBytes; a body above the limit fails with [ErrImageTooLarge].
func NewHTTPImageFetcher(cfg config.Adapter, logger *logger.Logger) ImageFetcher {
	client := utils.NewHTTPClient()
	client.
		SetTimeout(cfg.FetchTimeout).
		SetRetryCount(cfg.RetryCount)

	return &httpImageFetcher{client: client, maxBytes: cfg.MaxImageBytes, logger: logger}
}

// Fetch implements [ImageFetcher].
func (f *httpImageFetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	u, err := validateImageURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}

	resp, err := f.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(u.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	body := resp.RawBody()
	defer body.Close()

	if err := statusError(resp.StatusCode(), nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	if f.maxBytes > 0 && resp.RawResponse.ContentLength > f.maxBytes {
		return nil, fmt.Errorf("%w: %w: %d bytes", ErrFetch, ErrImageTooLarge, resp.RawResponse.ContentLength)
	}

	reader := io.Reader(body)
	if f.maxBytes > 0 {
		reader = io.LimitReader(body, f.maxBytes+1)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %w", ErrFetch, err)
	}
	if f.maxBytes > 0 && int64(len(data)) > f.maxBytes {
		return nil, fmt.Errorf("%w: %w: more than %d bytes", ErrFetch, ErrImageTooLarge, f.maxBytes)
	}

	f.logger.Debug().
		Str("func", "httpImageFetcher.Fetch").
		Str("host", u.Host).
		Int("bytes", len(data)).
		Msg("image fetched")

	return data, nil
}
