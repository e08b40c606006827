package adapter

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-captioner/internal/config"
	"github.com/MKhiriev/go-captioner/internal/logger"
	"github.com/MKhiriev/go-captioner/internal/utils"
)

const (
	captionPath        = "/caption"
	captionFormField   = "image"
	captionUploadName  = "image.jpg"
	captionJPEGQuality = 90
)

type captionResponse struct {
	Caption string `json:"caption"`
}

type httpCaptionProvider struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPCaptionProvider constructs a [CaptionProvider] that talks to a
// caption model server at cfg.CaptionURL.
//
// Each call is bounded by cfg.CaptionTimeout and retried cfg.RetryCount times
// on transport errors. Returns an error if the URL is empty or invalid.
func NewHTTPCaptionProvider(cfg config.Adapter, logger *logger.Logger) (CaptionProvider, error) {
	baseURL, err := normalizeBaseURL(cfg.CaptionURL)
	if err != nil {
		return nil, fmt.Errorf("invalid caption provider url: %w", err)
	}

	return &httpCaptionProvider{
		client: utils.NewProviderClient(baseURL, cfg.CaptionTimeout, cfg.RetryCount),
		logger: logger,
	}, nil
}

// Generate implements [CaptionProvider]. It POSTs the JPEG-encoded image as
// the multipart field "image" to POST /caption?noise=<bool> and returns the
// trimmed "caption" of the JSON reply. An empty caption is a failure.
func (p *httpCaptionProvider) Generate(ctx context.Context, img image.Image, noise bool) (string, error) {
	if img == nil {
		return "", fmt.Errorf("%w: nil image", ErrGeneration)
	}

	body, contentType, err := encodeCaptionRequest(img)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGeneration, err)
	}

	var result captionResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParam("noise", strconv.FormatBool(noise)).
		SetHeader("Content-Type", contentType).
		SetBody(body).
		SetResult(&result).
		Post(captionPath)
	if err != nil {
		return "", fmt.Errorf("%w: caption request: %w", ErrGeneration, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", fmt.Errorf("%w: %w", ErrGeneration, err)
	}

	text := strings.TrimSpace(result.Caption)
	if text == "" {
		return "", fmt.Errorf("%w: empty caption", ErrGeneration)
	}

	p.logger.Debug().
		Str("func", "httpCaptionProvider.Generate").
		Bool("noise", noise).
		Str("caption", text).
		Msg("caption received")

	return text, nil
}

// encodeCaptionRequest builds the multipart body. The body is a byte slice so
// resty can replay it on retry.
func encodeCaptionRequest(img image.Image) ([]byte, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(captionFormField, captionUploadName)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create form file: %w", err)
	}
	if err = jpeg.Encode(part, img, &jpeg.Options{Quality: captionJPEGQuality}); err != nil {
		return nil, "", fmt.Errorf("failed to encode image: %w", err)
	}
	if err = writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	return buf.Bytes(), writer.FormDataContentType(), nil
}
