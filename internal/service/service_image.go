package service

import (
	"context"
	"fmt"
	"image"
	"strings"
	"time"

	"github.com/MKhiriev/go-captioner/internal/adapter"
	"github.com/MKhiriev/go-captioner/internal/logger"
	"golang.org/x/sync/singleflight"
)

type imageService struct {
	fetcher      adapter.ImageFetcher
	fetchTimeout time.Duration
	maxPixels    int64

	// inflight collapses concurrent downloads of the same URL into one.
	// Nothing is kept after the download returns.
	inflight singleflight.Group

	logger *logger.Logger
}

// NewImageService constructs an ImageService. URL downloads are bounded by
// fetchTimeout and decoded images by maxPixels.
func NewImageService(fetcher adapter.ImageFetcher, fetchTimeout time.Duration, maxPixels int64, logger *logger.Logger) ImageService {
	return &imageService{fetcher: fetcher, fetchTimeout: fetchTimeout, maxPixels: maxPixels, logger: logger}
}

// FromURL downloads and decodes the image at rawURL.
//
// Download failures (bad URL, transport error, non-2xx, size limit, timeout)
// return ErrFetchFailed; undecodable data returns ErrDecodeFailed. A blank
// URL is ErrInvalidInput.
func (s *imageService) FromURL(ctx context.Context, rawURL string) (image.Image, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, ErrInvalidInput
	}

	ch := s.inflight.DoChan(rawURL, func() (any, error) {
		fetchCtx, cancel := withCallTimeout(context.WithoutCancel(ctx), s.fetchTimeout)
		defer cancel()
		return s.fetcher.Fetch(fetchCtx, rawURL)
	})

	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, ctx.Err())
	}
	if res.Err != nil {
		logger.FromContext(ctx).Warn().Err(res.Err).Msg("image download failed")
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, res.Err)
	}

	return s.decode(res.Val.([]byte))
}

// FromUpload decodes an uploaded image. Only jpg, jpeg and png file names
// are accepted.
func (s *imageService) FromUpload(ctx context.Context, filename string, data []byte) (image.Image, error) {
	if err := adapter.CheckUploadName(filename); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeFailed, err)
	}
	return s.decode(data)
}

func (s *imageService) decode(data []byte) (image.Image, error) {
	img, err := adapter.DecodeImage(data, s.maxPixels)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeFailed, err)
	}
	return img, nil
}
