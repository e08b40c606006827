package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent client with its own connection pool.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// NewProviderClient creates a client for an outbound provider: requests go
// to baseURL, each attempt is bounded by timeout, and transport errors are
// retried retries times with a short backoff. A context deadline always
// takes precedence over retries.
func NewProviderClient(baseURL string, timeout time.Duration, retries int) *HTTPClient {
	client := NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(retries).
		SetRetryWaitTime(100 * time.Millisecond).
		SetRetryMaxWaitTime(time.Second)
	return client
}
